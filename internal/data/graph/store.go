// Package graph owns all Cypher text and the reshaping of result rows into
// domain objects. Nothing here traverses or ranks in process; queries are
// assembled, parameterized and handed to the store.
package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/booklovers/backend/internal/platform/logger"
)

// Gateway executes one parameterized query per call and returns all result
// rows. Implemented by neo4jdb.Client; faked in tests.
type Gateway interface {
	Read(ctx context.Context, query string, params map[string]any) ([]*db.Record, error)
	Write(ctx context.Context, query string, params map[string]any) ([]*db.Record, error)
}

type Store struct {
	gw  Gateway
	log *logger.Logger
}

func NewStore(gw Gateway, log *logger.Logger) *Store {
	if log != nil {
		log = log.With("component", "GraphStore")
	}
	return &Store{gw: gw, log: log}
}
