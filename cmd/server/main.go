package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"eventhub-backend/internal/config"
	"eventhub-backend/internal/database"
	"eventhub-backend/internal/handlers"
	"eventhub-backend/internal/mailer"
	customMiddleware "eventhub-backend/internal/middleware"
	"eventhub-backend/internal/repository"
	"eventhub-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	eventRepo := repository.NewEventRepo()
	guestRepo := repository.NewGuestRepo()
	feedbackRepo := repository.NewFeedbackRepo()
	rsvpRepo := repository.NewRSVPRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create event indexes: %v", err)
	}
	if err := guestRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create guest indexes: %v", err)
	}
	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}
	if err := rsvpRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create rsvp indexes: %v", err)
	}

	// Invite mailer: real Resend client when configured, log-only mock otherwise
	var inviteMailer mailer.Mailer = mailer.NewMockMailer()
	if cfg.ResendAPIKey != "" {
		inviteMailer = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, guest invites are logged only")
	}

	// Initialize services
	eventService := service.NewEventService(eventRepo, userRepo, guestRepo, inviteMailer)
	feedbackService := service.NewFeedbackService(feedbackRepo, eventRepo, userRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	eventHandler := handlers.NewEventHandler(eventService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	rsvpHandler := handlers.NewRSVPHandler(rsvpService)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"eventhub-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/events", eventHandler.List)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(cfg.JWTSecret))

		r.Get("/auth/me", authHandler.Me)

		r.Post("/events/create", eventHandler.Create)
		r.Get("/events/search-users", eventHandler.SearchUsers)
		r.Get("/events/{eventID}", eventHandler.Get)
		r.Put("/events/edit/{eventID}", eventHandler.Edit)
		r.Post("/events/{eventID}/add-attendee", eventHandler.AddAttendee)
		r.Delete("/events/{eventID}/remove-attendee/{userID}", eventHandler.RemoveAttendee)
		r.Post("/events/register/{eventID}", eventHandler.SelfRegister)
		r.Post("/events/{eventID}/add-guest", eventHandler.AddGuest)
		r.Delete("/events/{eventID}/remove-guest/{guestID}", eventHandler.RemoveGuest)

		r.Post("/events/{eventID}/feedback", feedbackHandler.Submit)
		r.Get("/events/{eventID}/feedback", feedbackHandler.GetAll)
		r.Get("/events/{eventID}/my-feedback", feedbackHandler.GetMine)

		r.Post("/events/{eventID}/rsvp", rsvpHandler.Set)
		r.Get("/events/{eventID}/my-rsvp", rsvpHandler.GetMine)
	})

	// Start server
	log.Printf("🚀 Eventhub backend starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
