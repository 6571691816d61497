package services

import (
	"context"
	"fmt"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/logger"
)

type GenreService interface {
	GetGenre(ctx context.Context, id string) (*domain.GenreDetail, error)
}

type genreService struct {
	store *graph.Store
	log   *logger.Logger
}

func NewGenreService(store *graph.Store, log *logger.Logger) GenreService {
	return &genreService{
		store: store,
		log:   log.With("service", "GenreService"),
	}
}

func (s *genreService) GetGenre(ctx context.Context, id string) (*domain.GenreDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("genre id required: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.store.GetGenreByID(ctx, id)
}
