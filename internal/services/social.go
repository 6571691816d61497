package services

import (
	"context"
	"fmt"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/logger"
)

const (
	friendMatchLimit = 5
	eventLimit       = 3
)

// SocialService covers friend matching and local event discovery.
type SocialService interface {
	FriendMatches(ctx context.Context, userID string) ([]domain.FriendMatch, error)
	UpcomingEvents(ctx context.Context, userID string) ([]domain.Event, error)
}

type socialService struct {
	store *graph.Store
	log   *logger.Logger
}

func NewSocialService(store *graph.Store, log *logger.Logger) SocialService {
	return &socialService{
		store: store,
		log:   log.With("service", "SocialService"),
	}
}

func (s *socialService) FriendMatches(ctx context.Context, userID string) ([]domain.FriendMatch, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.store.RecommendFriends(ctx, userID, friendMatchLimit)
}

func (s *socialService) UpcomingEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.store.UpcomingEvents(ctx, userID, eventLimit)
}
