package services

import (
	"context"
	"sort"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stands-ins for the Mongo-backed stores, mirroring their
// contracts: nil for absent documents, Duplicate on unique violations,
// Validation on unparseable ids.

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, apperr.Duplicate("email or username already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

type fakeGameStore struct {
	games map[string]*models.Game
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{games: map[string]*models.Game{}}
}

func (f *fakeGameStore) ListAll(_ context.Context) ([]models.Game, error) {
	out := []models.Game{}
	for _, g := range f.games {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGameStore) GetByID(_ context.Context, id string) (*models.Game, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.Validation("invalid game id")
	}
	game, ok := f.games[id]
	if !ok {
		return nil, nil
	}
	copied := *game
	return &copied, nil
}

func (f *fakeGameStore) Insert(_ context.Context, game *models.Game) (*models.Game, error) {
	game.ID = primitive.NewObjectID()
	f.games[game.ID.Hex()] = game
	return game, nil
}

func (f *fakeGameStore) Update(_ context.Context, id string, changes map[string]interface{}) (*models.Game, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.Validation("invalid game id")
	}
	game, ok := f.games[id]
	if !ok {
		return nil, nil
	}
	for field, value := range changes {
		switch field {
		case "title":
			game.Title = value.(string)
		case "description":
			game.Description = value.(string)
		case "genre":
			game.Genre = value.(string)
		case "image":
			game.Image = value.(string)
		case "video":
			game.Video = value.(string)
		case "rating":
			game.Rating = value.(float64)
		case "type":
			game.Type = value.(string)
		case "downloadLink":
			game.DownloadLink = value.(string)
		}
	}
	copied := *game
	return &copied, nil
}

func (f *fakeGameStore) Delete(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, apperr.Validation("invalid game id")
	}
	if _, ok := f.games[id]; !ok {
		return false, nil
	}
	delete(f.games, id)
	return true, nil
}

type fakeNewsStore struct {
	items map[string]*models.News
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{items: map[string]*models.News{}}
}

func (f *fakeNewsStore) ListAll(_ context.Context) ([]models.News, error) {
	out := []models.News{}
	for _, n := range f.items {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeNewsStore) GetByID(_ context.Context, id string) (*models.News, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.Validation("invalid news id")
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeNewsStore) Insert(_ context.Context, item *models.News) (*models.News, error) {
	item.ID = primitive.NewObjectID()
	f.items[item.ID.Hex()] = item
	return item, nil
}

func (f *fakeNewsStore) Update(_ context.Context, id string, changes map[string]interface{}) (*models.News, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.Validation("invalid news id")
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	for field, value := range changes {
		switch field {
		case "title":
			item.Title = value.(string)
		case "description":
			item.Description = value.(string)
		case "image":
			item.Image = value.(string)
		}
	}
	copied := *item
	return &copied, nil
}

func (f *fakeNewsStore) Delete(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, apperr.Validation("invalid news id")
	}
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}
