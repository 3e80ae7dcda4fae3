package service

import (
	"context"

	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store interfaces consumed by the services. The mongo-backed repositories in
// internal/repository implement them; tests substitute in-memory fakes.
// Finders return (nil, nil) when no document matches.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.User, error)
	Search(ctx context.Context, query string, limit int) ([]models.UserRef, error)
}

type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	ListAll(ctx context.Context) ([]models.Event, error)
	SetFields(ctx context.Context, id bson.ObjectID, fields bson.M) error
	AddAttendee(ctx context.Context, eventID, userID bson.ObjectID) error
	RemoveAttendee(ctx context.Context, eventID, userID bson.ObjectID) error
	AddGuestRef(ctx context.Context, eventID, guestID bson.ObjectID) error
	RemoveGuestRef(ctx context.Context, eventID, guestID bson.ObjectID) error
}

type GuestStore interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Guest, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Guest, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByEventAndUser(ctx context.Context, eventID, userID bson.ObjectID) (*models.Feedback, error)
	ListByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.Feedback, error)
	UpdateRatingComment(ctx context.Context, id bson.ObjectID, rating int, comment string) error
}

type RSVPStore interface {
	Create(ctx context.Context, rsvp *models.RSVP) error
	FindByEventAndUser(ctx context.Context, eventID, userID bson.ObjectID) (*models.RSVP, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status string) error
}
