package services

import (
	"context"
	"fmt"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/logger"
)

// BookService is the book page and shelf-state surface.
type BookService interface {
	GetBook(ctx context.Context, id, viewerID string) (*domain.BookDetail, error)
	GetStatus(ctx context.Context, userID, bookID string) (*domain.BookStatus, error)
	SetStatus(ctx context.Context, userID, bookID, status string) error
	Rate(ctx context.Context, userID, bookID string, rating int64) error
}

type bookService struct {
	store *graph.Store
	log   *logger.Logger
}

func NewBookService(store *graph.Store, log *logger.Logger) BookService {
	return &bookService{
		store: store,
		log:   log.With("service", "BookService"),
	}
}

func (s *bookService) GetBook(ctx context.Context, id, viewerID string) (*domain.BookDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("book id required: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.store.GetBookByID(ctx, id, viewerID)
}

func (s *bookService) GetStatus(ctx context.Context, userID, bookID string) (*domain.BookStatus, error) {
	if userID == "" || bookID == "" {
		return nil, fmt.Errorf("user and book ids required: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.store.GetBookStatus(ctx, userID, bookID)
}

func (s *bookService) SetStatus(ctx context.Context, userID, bookID, status string) error {
	if userID == "" || bookID == "" {
		return fmt.Errorf("user and book ids required: %w", pkgerrors.ErrInvalidArgument)
	}
	if !graph.ValidStatus(status) {
		return fmt.Errorf("status %q: %w", status, pkgerrors.ErrInvalidArgument)
	}
	if err := s.store.SetBookStatus(ctx, userID, bookID, status); err != nil {
		return err
	}
	s.log.Info("book status updated", "user_id", userID, "book_id", bookID, "status", status)
	return nil
}

func (s *bookService) Rate(ctx context.Context, userID, bookID string, rating int64) error {
	if userID == "" || bookID == "" {
		return fmt.Errorf("user and book ids required: %w", pkgerrors.ErrInvalidArgument)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %d out of range [1,5]: %w", rating, pkgerrors.ErrInvalidArgument)
	}
	if _, err := s.store.RateBook(ctx, userID, bookID, rating); err != nil {
		return err
	}
	return nil
}
