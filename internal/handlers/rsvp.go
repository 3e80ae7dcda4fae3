package handlers

import (
	"encoding/json"
	"net/http"

	"eventhub-backend/internal/service"
)

type RSVPHandler struct {
	rsvps *service.RSVPService
}

func NewRSVPHandler(rsvps *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvps: rsvps}
}

// --- POST /events/{eventID}/rsvp ---

func (h *RSVPHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rsvp, err := h.rsvps.Set(r.Context(), userID, eventID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "RSVP saved",
		"rsvp":    rsvp,
	})
}

// --- GET /events/{eventID}/my-rsvp ---

func (h *RSVPHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	rsvp, err := h.rsvps.GetMine(r.Context(), userID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsvp)
}
