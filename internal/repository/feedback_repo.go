package repository

import (
	"context"
	"time"

	"eventhub-backend/internal/database"
	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedbacks"),
	}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now()
	feedback.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *FeedbackRepo) FindByEventAndUser(ctx context.Context, eventID, userID bson.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.collection.FindOne(ctx, bson.M{"event": eventID, "user": userID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepo) ListByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"event": eventID})
	if err != nil {
		return nil, err
	}
	var feedback []models.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// UpdateRatingComment overwrites rating and comment on an existing record.
func (r *FeedbackRepo) UpdateRatingComment(ctx context.Context, id bson.ObjectID, rating int, comment string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"rating":     rating,
			"comment":    comment,
			"updated_at": time.Now(),
		},
	})
	return err
}

// EnsureIndexes creates necessary indexes for the feedbacks collection.
// The (event, user) pairing is deliberately not unique at the database level;
// uniqueness is a check-then-write rule in the feedback service.
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event", Value: 1}, {Key: "user", Value: 1}},
	})
	return err
}
