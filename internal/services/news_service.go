package services

import (
	"context"
	"time"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/validation"

	"github.com/rs/zerolog"
)

// NewsStore is the document collection the service reads and writes news
// articles in. ListAll returns articles newest first.
type NewsStore interface {
	ListAll(ctx context.Context) ([]models.News, error)
	GetByID(ctx context.Context, id string) (*models.News, error)
	Insert(ctx context.Context, item *models.News) (*models.News, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (*models.News, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type NewsService struct {
	store  NewsStore
	logger zerolog.Logger
}

func NewNewsService(store NewsStore, logger zerolog.Logger) *NewsService {
	return &NewsService{
		store:  store,
		logger: logger,
	}
}

func (s *NewsService) List(ctx context.Context) ([]models.News, error) {
	return s.store.ListAll(ctx)
}

func (s *NewsService) Get(ctx context.Context, id string) (*models.News, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("news not found")
	}
	return item, nil
}

func (s *NewsService) Create(ctx context.Context, req *models.CreateNewsRequest) (*models.News, error) {
	if fields := validation.MissingFields(req); len(fields) > 0 {
		return nil, apperr.Validation("title and description are required", fields...)
	}

	item := &models.News{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Date:        time.Now().UTC(),
	}

	created, err := s.store.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("Error creating news")
		return nil, err
	}

	s.logger.Info().Str("news_id", created.ID.Hex()).Str("title", created.Title).Msg("News created")
	return created, nil
}

// Update applies a partial update: only supplied fields change.
func (s *NewsService) Update(ctx context.Context, id string, req *models.UpdateNewsRequest) (*models.News, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	item, err := s.store.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("news not found")
	}

	s.logger.Info().Str("news_id", id).Msg("News updated")
	return item, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("news not found")
	}

	s.logger.Info().Str("news_id", id).Msg("News deleted")
	return nil
}
