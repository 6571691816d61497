package app

import (
	"fmt"

	redisclient "github.com/booklovers/backend/internal/clients/redis"
	"github.com/booklovers/backend/internal/platform/agent"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/platform/neo4jdb"
)

// Clients holds the process-wide external connections. Graph is required;
// Cache and Agent are optional and nil when unconfigured.
type Clients struct {
	Graph *neo4jdb.Client
	Cache *redisclient.Cache
	Agent agent.Client
}

func wireClients(cfg Config, log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	graph, err := neo4jdb.New(cfg.Neo4j, log)
	if err != nil {
		return Clients{}, fmt.Errorf("init neo4j: %w", err)
	}

	cache, err := redisclient.New(log, cfg.RedisAddr)
	if err != nil {
		log.Warn("redis cache unavailable, running uncached", "error", err)
		cache = nil
	}

	agentClient := agent.New(log, cfg.AgentURL, cfg.AgentTimeout)
	if agentClient == nil {
		log.Info("chat agent not configured, chat uses local routing")
	}

	return Clients{
		Graph: graph,
		Cache: cache,
		Agent: agentClient,
	}, nil
}
