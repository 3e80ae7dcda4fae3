package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// serviceStatus maps each service sentinel to its HTTP status and response
// message. Unknown errors are logged and surfaced as 500 "Server Error".
var serviceStatus = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrMissingFields, http.StatusBadRequest, "All required fields must be filled"},
	{service.ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
	{service.ErrInvalidRSVPStatus, http.StatusBadRequest, "RSVP status must be Going, Not Going, or Interested"},
	{service.ErrEmailTaken, http.StatusBadRequest, "User already exists."},
	{service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid email or password."},
	{service.ErrAlreadyAttendee, http.StatusBadRequest, "Attendee already added"},
	{service.ErrAlreadyRegistered, http.StatusBadRequest, "You are already registered for this event"},
	{service.ErrEventFull, http.StatusBadRequest, "Event is full"},
	{service.ErrEventNotEnded, http.StatusBadRequest, "Cannot submit feedback before event has ended"},
	{service.ErrNotEventCreator, http.StatusForbidden, "You can only manage your own events"},
	{service.ErrNotAttendee, http.StatusForbidden, "Only attendees can submit feedback"},
	{service.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrGuestNotFound, http.StatusNotFound, "Guest not found"},
	{service.ErrFeedbackNotFound, http.StatusNotFound, "No feedback found"},
	{service.ErrRSVPNotFound, http.StatusNotFound, "No RSVP found"},
}

func writeServiceError(w http.ResponseWriter, err error) {
	for _, m := range serviceStatus {
		if errors.Is(err, m.err) {
			writeMessage(w, m.status, m.message)
			return
		}
	}
	log.Printf("Unexpected error: %v", err)
	writeMessage(w, http.StatusInternalServerError, "Server Error")
}

// urlObjectID parses the named chi URL param as an ObjectID. Writes a 404
// with the given message and returns false when the value is not a valid ID,
// matching the behavior of looking up an entity that cannot exist.
func urlObjectID(w http.ResponseWriter, r *http.Request, name, notFound string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		writeMessage(w, http.StatusNotFound, notFound)
		return bson.ObjectID{}, false
	}
	return id, true
}

// callerID returns the authenticated user's ObjectID. Writes a 401 and
// returns false when the request carries no valid identity.
func callerID(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	hex := middleware.GetUserID(r.Context())
	if hex == "" {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
		return bson.ObjectID{}, false
	}
	return id, true
}
