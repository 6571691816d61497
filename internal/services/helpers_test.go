package services

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/platform/logger"
)

// scriptedGateway replays canned results in call order and records every
// query it sees.
type scriptedGateway struct {
	queries []string
	params  []map[string]any
	results [][]*db.Record
	err     error
	// errFrom fails every call at or past the given 1-based index when err
	// is set; zero means fail from the first call.
	errFrom int
}

func (g *scriptedGateway) run(query string, params map[string]any) ([]*db.Record, error) {
	g.queries = append(g.queries, query)
	g.params = append(g.params, params)
	if g.err != nil && len(g.queries) >= g.errFrom {
		return nil, g.err
	}
	idx := len(g.queries) - 1
	if idx < len(g.results) {
		return g.results[idx], nil
	}
	return nil, nil
}

func (g *scriptedGateway) Read(_ context.Context, query string, params map[string]any) ([]*db.Record, error) {
	return g.run(query, params)
}

func (g *scriptedGateway) Write(_ context.Context, query string, params map[string]any) ([]*db.Record, error) {
	return g.run(query, params)
}

func record(keys []string, values []any) *db.Record {
	return &db.Record{Keys: keys, Values: values}
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newTestGraphStore(t *testing.T, gw graph.Gateway) *graph.Store {
	t.Helper()
	return graph.NewStore(gw, newTestLogger(t))
}
