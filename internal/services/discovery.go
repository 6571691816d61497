package services

import (
	"context"
	"fmt"
	"time"

	redisclient "github.com/booklovers/backend/internal/clients/redis"
	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	"github.com/booklovers/backend/internal/platform/logger"
)

const (
	recommendationLimit = 5
	trendingLimit       = 5
	currentRecentYears  = 2
	recentBooksLimit    = 6
	adaptationsLimit    = 4
	topGenresLimit      = 3

	trendingCacheTTL       = 10 * time.Minute
	recommendationCacheTTL = 5 * time.Minute
)

// defaultRecommendations is served when scoring yields no candidates, for
// instance a user with no prior ratings. An empty result is not an error.
var defaultRecommendations = []domain.RecommendedBook{
	{Book: domain.Book{ID: "BOOK-DEFAULT-1", Title: "Thinking Fast and Slow"}, Author: "Daniel Kahneman", MatchPercent: 92},
	{Book: domain.Book{ID: "BOOK-DEFAULT-2", Title: "Project Hail Mary"}, Author: "Andy Weir", MatchPercent: 87},
	{Book: domain.Book{ID: "BOOK-DEFAULT-3", Title: "Educated"}, Author: "Tara Westover", MatchPercent: 84},
	{Book: domain.Book{ID: "BOOK-DEFAULT-4", Title: "Atomic Habits"}, Author: "James Clear", MatchPercent: 81},
}

// DiscoveryService backs the home feed: recommendations, trending,
// currently-reading, recent additions and adaptations.
type DiscoveryService interface {
	Recommendations(ctx context.Context, userID string) ([]domain.RecommendedBook, error)
	Trending(ctx context.Context) ([]domain.TrendingBook, error)
	CurrentlyReading(ctx context.Context, userID string) ([]domain.ReadingBook, error)
	RecentBooks(ctx context.Context) ([]domain.RecentBook, error)
	Adaptations(ctx context.Context, userID string) ([]domain.Adaptation, error)
	TopGenres(ctx context.Context, userID string) ([]domain.GenreStat, error)
}

type discoveryService struct {
	store     *graph.Store
	cache     *redisclient.Cache
	log       *logger.Logger
	minRaters int
}

func NewDiscoveryService(store *graph.Store, cache *redisclient.Cache, minRaters int, log *logger.Logger) DiscoveryService {
	if minRaters <= 0 {
		minRaters = 5
	}
	return &discoveryService{
		store:     store,
		cache:     cache,
		log:       log.With("service", "DiscoveryService"),
		minRaters: minRaters,
	}
}

func (s *discoveryService) Recommendations(ctx context.Context, userID string) ([]domain.RecommendedBook, error) {
	key := fmt.Sprintf("recs:v1:%s:%d", userID, recommendationLimit)
	var cached []domain.RecommendedBook
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	books, err := s.store.RecommendBooks(ctx, userID, recommendationLimit)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return defaultRecommendations, nil
	}
	s.cache.Set(ctx, key, books, recommendationCacheTTL)
	return books, nil
}

func (s *discoveryService) Trending(ctx context.Context) ([]domain.TrendingBook, error) {
	key := fmt.Sprintf("trending:v1:%d:%d", s.minRaters, trendingLimit)
	var cached []domain.TrendingBook
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	books, err := s.store.TrendingBooks(ctx, trendingLimit, s.minRaters)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, books, trendingCacheTTL)
	return books, nil
}

func (s *discoveryService) CurrentlyReading(ctx context.Context, userID string) ([]domain.ReadingBook, error) {
	return s.store.CurrentlyReading(ctx, userID)
}

func (s *discoveryService) RecentBooks(ctx context.Context) ([]domain.RecentBook, error) {
	sinceYear := time.Now().Year() - currentRecentYears
	return s.store.RecentlyAddedBooks(ctx, sinceYear, recentBooksLimit)
}

func (s *discoveryService) Adaptations(ctx context.Context, userID string) ([]domain.Adaptation, error) {
	return s.store.BookAdaptations(ctx, userID, adaptationsLimit)
}

func (s *discoveryService) TopGenres(ctx context.Context, userID string) ([]domain.GenreStat, error) {
	return s.store.TopGenres(ctx, userID, topGenresLimit)
}
