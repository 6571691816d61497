package graph

import (
	"context"
	"sync"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/booklovers/backend/internal/platform/logger"
)

// fakeGateway records every query it receives and replays canned results
// keyed by call order. The mutex matters for mappers that fan follow-up
// queries out concurrently. errFrom is the 1-based call index at which err
// starts firing; zero means err applies to every call.
type fakeGateway struct {
	mu      sync.Mutex
	queries []string
	params  []map[string]any
	results [][]*db.Record
	// resultFor replays by exact query text instead of call order, for
	// stores that issue follow-ups concurrently.
	resultFor map[string][]*db.Record
	err       error
	errFrom   int
}

func (f *fakeGateway) run(query string, params map[string]any) ([]*db.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	f.params = append(f.params, params)
	if f.err != nil && (f.errFrom == 0 || len(f.queries) >= f.errFrom) {
		return nil, f.err
	}
	if recs, ok := f.resultFor[query]; ok {
		return recs, nil
	}
	idx := len(f.queries) - 1
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return nil, nil
}

func (f *fakeGateway) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func (f *fakeGateway) Read(_ context.Context, query string, params map[string]any) ([]*db.Record, error) {
	return f.run(query, params)
}

func (f *fakeGateway) Write(_ context.Context, query string, params map[string]any) ([]*db.Record, error) {
	return f.run(query, params)
}

func makeRecord(keys []string, values []any) *db.Record {
	return &db.Record{Keys: keys, Values: values}
}

func bookNode(id, title string) dbtype.Node {
	return dbtype.Node{Props: map[string]any{"id": id, "title": title}}
}

func newTestStore(t *testing.T, gw Gateway) *Store {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewStore(gw, log)
}
