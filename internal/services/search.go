package services

import (
	"context"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	"github.com/booklovers/backend/internal/platform/logger"
)

const (
	defaultSearchLimit  = 10
	defaultSuggestLimit = 5
)

// SearchService is the typeahead and full search surface. Lookups degrade
// to empty results on store failure rather than surfacing an error.
type SearchService interface {
	Search(ctx context.Context, query string, limit int) *domain.SearchResults
	Suggest(ctx context.Context, query string, limit int) []domain.Suggestion
}

type searchService struct {
	store *graph.Store
	log   *logger.Logger
}

func NewSearchService(store *graph.Store, log *logger.Logger) SearchService {
	return &searchService{
		store: store,
		log:   log.With("service", "SearchService"),
	}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) *domain.SearchResults {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	results, err := s.store.Search(ctx, query, limit)
	if err != nil {
		s.log.Warn("search failed", "error", err)
		return &domain.SearchResults{
			Books:   []domain.SearchBook{},
			Authors: []domain.Author{},
			Genres:  []domain.Genre{},
		}
	}
	return results
}

func (s *searchService) Suggest(ctx context.Context, query string, limit int) []domain.Suggestion {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	suggestions, err := s.store.Suggest(ctx, query, limit)
	if err != nil {
		s.log.Warn("suggestions failed", "error", err)
		return []domain.Suggestion{}
	}
	return suggestions
}
