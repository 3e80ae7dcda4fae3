package repository

import (
	"context"
	"time"

	"eventhub-backend/internal/database"
	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type RSVPRepo struct {
	collection *mongo.Collection
}

func NewRSVPRepo() *RSVPRepo {
	return &RSVPRepo{
		collection: database.GetCollection("rsvps"),
	}
}

func (r *RSVPRepo) Create(ctx context.Context, rsvp *models.RSVP) error {
	rsvp.CreatedAt = time.Now()
	rsvp.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, rsvp)
	if err != nil {
		return err
	}
	rsvp.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *RSVPRepo) FindByEventAndUser(ctx context.Context, eventID, userID bson.ObjectID) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := r.collection.FindOne(ctx, bson.M{"event": eventID, "user": userID}).Decode(&rsvp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rsvp, nil
}

func (r *RSVPRepo) UpdateStatus(ctx context.Context, id bson.ObjectID, status string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	})
	return err
}

// EnsureIndexes creates necessary indexes for the rsvps collection
func (r *RSVPRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event", Value: 1}, {Key: "user", Value: 1}},
	})
	return err
}
