package services

import (
	"context"
	"fmt"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/logger"
)

type AuthorService interface {
	GetAuthor(ctx context.Context, id string) (*domain.AuthorDetail, error)
}

type authorService struct {
	store *graph.Store
	log   *logger.Logger
}

func NewAuthorService(store *graph.Store, log *logger.Logger) AuthorService {
	return &authorService{
		store: store,
		log:   log.With("service", "AuthorService"),
	}
}

func (s *authorService) GetAuthor(ctx context.Context, id string) (*domain.AuthorDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("author id required: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.store.GetAuthorByID(ctx, id)
}
