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

// GameStore persists games in the "games" collection.
type GameStore struct {
	collection *mongo.Collection
}

func NewGameStore(db *mongo.Database) *GameStore {
	return &GameStore{collection: db.Collection("games")}
}

func (s *GameStore) ListAll(ctx context.Context) ([]models.Game, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer cursor.Close(ctx)

	games := []models.Game{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}
	return games, nil
}

// GetByID returns the game with the given id, or nil when none exists.
func (s *GameStore) GetByID(ctx context.Context, id string) (*models.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("invalid game id")
	}

	var game models.Game
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

func (s *GameStore) Insert(ctx context.Context, game *models.Game) (*models.Game, error) {
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now

	res, err := s.collection.InsertOne(ctx, game)
	if err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}

	game.ID = res.InsertedID.(primitive.ObjectID)
	return game, nil
}

// Update applies the supplied field changes and returns the updated game,
// or nil when the id does not exist.
func (s *GameStore) Update(ctx context.Context, id string, changes map[string]interface{}) (*models.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("invalid game id")
	}

	changes["updatedAt"] = time.Now().UTC()

	var game models.Game
	err = s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": changes},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return &game, nil
}

// Delete removes the game and reports whether a document was removed.
func (s *GameStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperr.Validation("invalid game id")
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}
	return res.DeletedCount > 0, nil
}
