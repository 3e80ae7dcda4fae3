package repository

import (
	"context"
	"time"

	"eventhub-backend/internal/database"
	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type EventRepo struct {
	collection *mongo.Collection
}

func NewEventRepo() *EventRepo {
	return &EventRepo{
		collection: database.GetCollection("events"),
	}
}

func (r *EventRepo) Create(ctx context.Context, event *models.Event) error {
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	if event.Attendees == nil {
		event.Attendees = []bson.ObjectID{}
	}
	if event.Guests == nil {
		event.Guests = []bson.ObjectID{}
	}
	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	event.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *EventRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// ListAll returns every event, newest date first.
func (r *EventRepo) ListAll(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SetFields applies a partial $set to the event plus a fresh updated_at.
func (r *EventRepo) SetFields(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func (r *EventRepo) AddAttendee(ctx context.Context, eventID, userID bson.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{
		"$push": bson.M{"attendees": userID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *EventRepo) RemoveAttendee(ctx context.Context, eventID, userID bson.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{
		"$pull": bson.M{"attendees": userID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *EventRepo) AddGuestRef(ctx context.Context, eventID, guestID bson.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{
		"$push": bson.M{"guests": guestID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *EventRepo) RemoveGuestRef(ctx context.Context, eventID, guestID bson.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{
		"$pull": bson.M{"guests": guestID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

// EnsureIndexes creates necessary indexes for the events collection
func (r *EventRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "created_by", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
