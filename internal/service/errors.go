package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses; anything else is treated as a server error.
var (
	ErrMissingFields      = errors.New("all required fields must be filled")
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrGuestNotFound      = errors.New("guest not found")
	ErrFeedbackNotFound   = errors.New("no feedback found")
	ErrRSVPNotFound       = errors.New("no rsvp found")
	ErrNotEventCreator    = errors.New("only the event creator may do this")
	ErrAlreadyAttendee    = errors.New("attendee already added")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrEventFull          = errors.New("event is full")
	ErrEventNotEnded      = errors.New("cannot submit feedback before event has ended")
	ErrNotAttendee        = errors.New("only attendees can submit feedback")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidRSVPStatus  = errors.New("rsvp status must be Going, Not Going, or Interested")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
