package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventhub-backend/internal/models"
	"eventhub-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long issued credentials stay valid.
const tokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	users     service.UserStore
	jwtSecret string
}

func NewAuthHandler(users service.UserStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// --- POST /auth/register ---

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	existing, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error checking existing user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if existing != nil {
		writeServiceError(w, service.ErrEmailTaken)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	// The requested role is ignored; everyone registers as Employee.
	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleEmployee,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		log.Printf("Error creating user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("Error signing JWT: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// --- POST /auth/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if user == nil {
		writeServiceError(w, service.ErrInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeServiceError(w, service.ErrInvalidCredentials)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("Error signing JWT: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
}

// --- GET /auth/me ---

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if user == nil {
		writeServiceError(w, service.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"exp":     now.Add(tokenTTL).Unix(),
		"iat":     now.Unix(),
		"jti":     uuid.NewString(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}
