package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewsStore persists news articles in the "news" collection.
type NewsStore struct {
	collection *mongo.Collection
}

func NewNewsStore(db *mongo.Database) *NewsStore {
	return &NewsStore{collection: db.Collection("news")}
}

// ListAll returns all articles, newest first.
func (s *NewsStore) ListAll(ctx context.Context) ([]models.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.News{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}
	return items, nil
}

// GetByID returns the article with the given id, or nil when none exists.
func (s *NewsStore) GetByID(ctx context.Context, id string) (*models.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("invalid news id")
	}

	var item models.News
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	return &item, nil
}

func (s *NewsStore) Insert(ctx context.Context, item *models.News) (*models.News, error) {
	if item.Date.IsZero() {
		item.Date = time.Now().UTC()
	}

	res, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}

// Update applies the supplied field changes and returns the updated article,
// or nil when the id does not exist.
func (s *NewsStore) Update(ctx context.Context, id string, changes map[string]interface{}) (*models.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("invalid news id")
	}

	var item models.News
	err = s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": changes},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	return &item, nil
}

// Delete removes the article and reports whether a document was removed.
func (s *NewsStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperr.Validation("invalid news id")
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}
	return res.DeletedCount > 0, nil
}
