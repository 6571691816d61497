package services

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func TestRecommendationsFallBackToDefaults(t *testing.T) {
	gw := &scriptedGateway{}
	svc := NewDiscoveryService(newTestGraphStore(t, gw), nil, 5, newTestLogger(t))

	books, err := svc.Recommendations(context.Background(), "USER-1")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(books) != 4 {
		t.Fatalf("default list length = %d, want 4", len(books))
	}
	for _, b := range books {
		if b.MatchPercent < 0 || b.MatchPercent > 99 {
			t.Fatalf("default match percent out of range: %+v", b)
		}
	}
}

func TestRecommendationsPassThroughScoredResults(t *testing.T) {
	gw := &scriptedGateway{}
	gw.results = append(gw.results, []*db.Record{
		record(
			[]string{"rec", "authorName", "score"},
			[]any{dbtype.Node{Props: map[string]any{"id": "BOOK-3", "title": "Hyperion"}}, "Dan Simmons", 5.0},
		),
	})
	svc := NewDiscoveryService(newTestGraphStore(t, gw), nil, 5, newTestLogger(t))

	books, err := svc.Recommendations(context.Background(), "USER-1")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Hyperion" || books[0].MatchPercent != 50 {
		t.Fatalf("books = %+v", books)
	}
}

func TestRecommendationsPropagateStoreErrors(t *testing.T) {
	gw := &scriptedGateway{err: errors.New("store down")}
	svc := NewDiscoveryService(newTestGraphStore(t, gw), nil, 5, newTestLogger(t))

	if _, err := svc.Recommendations(context.Background(), "USER-1"); err == nil {
		t.Fatalf("store errors must propagate, fallback is only for empty results")
	}
}

func TestTrendingUsesConfiguredThreshold(t *testing.T) {
	gw := &scriptedGateway{}
	svc := NewDiscoveryService(newTestGraphStore(t, gw), nil, 2, newTestLogger(t))

	if _, err := svc.Trending(context.Background()); err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if got := gw.params[0]["minRaters"]; got != int64(2) {
		t.Fatalf("minRaters = %v, want 2", got)
	}
}

func TestTrendingDefaultsThreshold(t *testing.T) {
	gw := &scriptedGateway{}
	svc := NewDiscoveryService(newTestGraphStore(t, gw), nil, 0, newTestLogger(t))

	if _, err := svc.Trending(context.Background()); err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if got := gw.params[0]["minRaters"]; got != int64(5) {
		t.Fatalf("minRaters = %v, want default 5", got)
	}
}
