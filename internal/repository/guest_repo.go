package repository

import (
	"context"
	"time"

	"eventhub-backend/internal/database"
	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type GuestRepo struct {
	collection *mongo.Collection
}

func NewGuestRepo() *GuestRepo {
	return &GuestRepo{
		collection: database.GetCollection("guests"),
	}
}

func (r *GuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	guest.CreatedAt = time.Now()
	guest.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, guest)
	if err != nil {
		return err
	}
	guest.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *GuestRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Guest, error) {
	var guest models.Guest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&guest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepo) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Guest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var guests []models.Guest
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnsureIndexes creates necessary indexes for the guests collection
func (r *GuestRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event", Value: 1}},
	})
	return err
}
