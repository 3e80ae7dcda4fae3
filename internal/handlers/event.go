package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventhub-backend/internal/models"
	"eventhub-backend/internal/service"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type CreateEventRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Venue       string           `json:"venue"`
	Agenda      string           `json:"agenda"`
	Speakers    []models.Speaker `json:"speakers"`
	Capacity    int              `json:"capacity"`
}

// --- GET /events ---

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.events.List(r.Context())
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching events")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// --- POST /events/create ---

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.events.Create(r.Context(), userID, service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		Agenda:      req.Agenda,
		Speakers:    req.Speakers,
		Capacity:    req.Capacity,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Event created successfully",
		"event":   event,
	})
}

// --- GET /events/search-users ---

func (h *EventHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeMessage(w, http.StatusBadRequest, "Query parameter is required")
		return
	}
	users, err := h.events.SearchUsers(r.Context(), query)
	if err != nil {
		log.Printf("Error searching users: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error searching users")
		return
	}
	if users == nil {
		users = []models.UserRef{}
	}
	writeJSON(w, http.StatusOK, users)
}

// --- GET /events/{eventID} ---

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	view, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// --- PUT /events/edit/{eventID} ---

func (h *EventHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	event, err := h.events.Edit(r.Context(), userID, eventID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// --- POST /events/{eventID}/add-attendee ---

func (h *EventHandler) AddAttendee(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	attendee, err := h.events.AddAttendeeByEmail(r.Context(), userID, eventID, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Attendee added successfully",
		"user":    attendee,
	})
}

// --- DELETE /events/{eventID}/remove-attendee/{userID} ---

func (h *EventHandler) RemoveAttendee(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	attendeeID, ok := urlObjectID(w, r, "userID", "User not found")
	if !ok {
		return
	}
	if err := h.events.RemoveAttendee(r.Context(), requesterID, eventID, attendeeID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Attendee removed successfully")
}

// --- POST /events/register/{eventID} ---

func (h *EventHandler) SelfRegister(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	if err := h.events.SelfRegister(r.Context(), userID, eventID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Successfully registered for event")
}

// --- POST /events/{eventID}/add-guest ---

func (h *EventHandler) AddGuest(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	guest, err := h.events.AddGuest(r.Context(), userID, eventID, req.Name, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Guest added",
		"guest":   guest,
	})
}

// --- DELETE /events/{eventID}/remove-guest/{guestID} ---

func (h *EventHandler) RemoveGuest(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	guestID, ok := urlObjectID(w, r, "guestID", "Guest not found")
	if !ok {
		return
	}
	if err := h.events.RemoveGuest(r.Context(), eventID, guestID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Guest removed successfully")
}
