package service

import (
	"context"

	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RSVPService keeps one declared-intent record per (event, user) pair,
// updated in place on change.
type RSVPService struct {
	rsvps  RSVPStore
	events EventStore
}

func NewRSVPService(rsvps RSVPStore, events EventStore) *RSVPService {
	return &RSVPService{rsvps: rsvps, events: events}
}

// Set records or updates the caller's RSVP for an event.
func (s *RSVPService) Set(ctx context.Context, userID, eventID bson.ObjectID, status string) (*models.RSVP, error) {
	if !models.ValidRSVPStatus(status) {
		return nil, ErrInvalidRSVPStatus
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	existing, err := s.rsvps.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.rsvps.UpdateStatus(ctx, existing.ID, status); err != nil {
			return nil, err
		}
		existing.Status = status
		return existing, nil
	}

	rsvp := &models.RSVP{
		User:   userID,
		Event:  eventID,
		Status: status,
	}
	if err := s.rsvps.Create(ctx, rsvp); err != nil {
		return nil, err
	}
	return rsvp, nil
}

// GetMine returns the caller's RSVP for an event.
func (s *RSVPService) GetMine(ctx context.Context, userID, eventID bson.ObjectID) (*models.RSVP, error) {
	rsvp, err := s.rsvps.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if rsvp == nil {
		return nil, ErrRSVPNotFound
	}
	return rsvp, nil
}
