package services

import (
	"context"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/validation"

	"github.com/rs/zerolog"
)

// GameStore is the document collection the service reads and writes games in.
type GameStore interface {
	ListAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id string) (*models.Game, error)
	Insert(ctx context.Context, game *models.Game) (*models.Game, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (*models.Game, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type GameService struct {
	store  GameStore
	logger zerolog.Logger
}

func NewGameService(store GameStore, logger zerolog.Logger) *GameService {
	return &GameService{
		store:  store,
		logger: logger,
	}
}

func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	return s.store.ListAll(ctx)
}

func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, apperr.NotFound("game not found")
	}
	return game, nil
}

func (s *GameService) Create(ctx context.Context, req *models.CreateGameRequest) (*models.Game, error) {
	if fields := validation.MissingFields(req); len(fields) > 0 {
		return nil, apperr.Validation("all required fields must be provided", fields...)
	}

	game := &models.Game{
		Title:        req.Title,
		Description:  req.Description,
		Genre:        req.Genre,
		Image:        req.Image,
		Video:        req.Video,
		Rating:       req.Rating,
		Type:         req.Type,
		DownloadLink: req.DownloadLink,
	}

	created, err := s.store.Insert(ctx, game)
	if err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("Error creating game")
		return nil, err
	}

	s.logger.Info().Str("game_id", created.ID.Hex()).Str("title", created.Title).Msg("Game created")
	return created, nil
}

// Update applies a partial update: only supplied fields change.
func (s *GameService) Update(ctx context.Context, id string, req *models.UpdateGameRequest) (*models.Game, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	game, err := s.store.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, apperr.NotFound("game not found")
	}

	s.logger.Info().Str("game_id", id).Msg("Game updated")
	return game, nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("game not found")
	}

	s.logger.Info().Str("game_id", id).Msg("Game deleted")
	return nil
}
