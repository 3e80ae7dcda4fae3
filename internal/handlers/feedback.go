package handlers

import (
	"encoding/json"
	"net/http"

	"eventhub-backend/internal/service"
)

type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// --- POST /events/{eventID}/feedback ---

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, feedback, err := h.feedback.Submit(r.Context(), userID, eventID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if created {
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message":  "Feedback submitted successfully",
			"feedback": feedback,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Feedback updated successfully",
		"feedback": feedback,
	})
}

// --- GET /events/{eventID}/feedback ---

func (h *FeedbackHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	summary, err := h.feedback.GetAll(r.Context(), userID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// --- GET /events/{eventID}/my-feedback ---

func (h *FeedbackHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := urlObjectID(w, r, "eventID", "Event not found")
	if !ok {
		return
	}
	feedback, err := h.feedback.GetMine(r.Context(), userID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}
