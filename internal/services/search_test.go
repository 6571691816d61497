package services

import (
	"context"
	"errors"
	"testing"
)

func TestSearchDegradesToEmptyOnStoreFailure(t *testing.T) {
	gw := &scriptedGateway{err: errors.New("store down")}
	svc := NewSearchService(newTestGraphStore(t, gw), newTestLogger(t))

	results := svc.Search(context.Background(), "dune", 10)
	if results == nil {
		t.Fatalf("Search returned nil")
	}
	if len(results.Books) != 0 || len(results.Authors) != 0 || len(results.Genres) != 0 {
		t.Fatalf("results = %+v, want empty", results)
	}
}

func TestSuggestDegradesToEmptyOnStoreFailure(t *testing.T) {
	gw := &scriptedGateway{err: errors.New("store down")}
	svc := NewSearchService(newTestGraphStore(t, gw), newTestLogger(t))

	suggestions := svc.Suggest(context.Background(), "dune", 5)
	if suggestions == nil || len(suggestions) != 0 {
		t.Fatalf("suggestions = %v, want empty non-nil", suggestions)
	}
}

func TestSearchDefaultsLimit(t *testing.T) {
	gw := &scriptedGateway{}
	svc := NewSearchService(newTestGraphStore(t, gw), newTestLogger(t))

	svc.Search(context.Background(), "dune", 0)
	if got := gw.params[0]["limit"]; got != int64(defaultSearchLimit) {
		t.Fatalf("limit = %v, want %d", got, defaultSearchLimit)
	}
}
