package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/booklovers/backend/internal/platform/envutil"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/platform/neo4jdb"
)

// Config is the process configuration. Values come from the environment;
// CONFIG_FILE may point at a YAML file whose values are applied first so
// environment variables always win.
type Config struct {
	Port string

	Neo4j neo4jdb.Settings

	JWTSecretKey string
	TokenTTL     time.Duration

	AgentURL     string
	AgentTimeout time.Duration

	RedisAddr string

	TrendingMinRaters int
}

type fileConfig struct {
	Port              string `yaml:"port"`
	Neo4jURI          string `yaml:"neo4j_uri"`
	Neo4jUsername     string `yaml:"neo4j_username"`
	Neo4jPassword     string `yaml:"neo4j_password"`
	Neo4jDatabase     string `yaml:"neo4j_database"`
	AgentURL          string `yaml:"agent_url"`
	RedisAddr         string `yaml:"redis_addr"`
	TrendingMinRaters int    `yaml:"trending_min_raters"`
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port: "8080",
		Neo4j: neo4jdb.Settings{
			Username: "neo4j",
			PoolSize: 50,
			Timeout:  10 * time.Second,
		},
		TokenTTL:          24 * time.Hour,
		AgentTimeout:      30 * time.Second,
		TrendingMinRaters: 5,
	}

	if path := envutil.String("CONFIG_FILE", ""); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			log.Warn("config file skipped", "path", path, "error", err)
		}
	}

	cfg.Port = envutil.String("PORT", cfg.Port)

	cfg.Neo4j.URI = envutil.String("NEO4J_URI", cfg.Neo4j.URI)
	cfg.Neo4j.Username = envutil.String("NEO4J_USERNAME", cfg.Neo4j.Username)
	cfg.Neo4j.Password = envutil.String("NEO4J_PASSWORD", cfg.Neo4j.Password)
	cfg.Neo4j.Database = envutil.String("NEO4J_DATABASE", cfg.Neo4j.Database)
	cfg.Neo4j.PoolSize = envutil.Int("NEO4J_POOL_SIZE", cfg.Neo4j.PoolSize)
	cfg.Neo4j.Timeout = time.Duration(envutil.Int("NEO4J_TIMEOUT_SECONDS", int(cfg.Neo4j.Timeout/time.Second))) * time.Second

	cfg.JWTSecretKey = envutil.String("JWT_SECRET_KEY", "defaultsecret")
	cfg.TokenTTL = time.Duration(envutil.Int("ACCESS_TOKEN_TTL", int(cfg.TokenTTL/time.Second))) * time.Second

	cfg.AgentURL = envutil.String("AGENT_URL", cfg.AgentURL)
	cfg.AgentTimeout = time.Duration(envutil.Int("AGENT_TIMEOUT_SECONDS", int(cfg.AgentTimeout/time.Second))) * time.Second

	cfg.RedisAddr = envutil.String("REDIS_ADDR", cfg.RedisAddr)
	cfg.TrendingMinRaters = envutil.Int("TRENDING_MIN_RATERS", cfg.TrendingMinRaters)

	return cfg
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.Neo4jURI != "" {
		cfg.Neo4j.URI = fc.Neo4jURI
	}
	if fc.Neo4jUsername != "" {
		cfg.Neo4j.Username = fc.Neo4jUsername
	}
	if fc.Neo4jPassword != "" {
		cfg.Neo4j.Password = fc.Neo4jPassword
	}
	if fc.Neo4jDatabase != "" {
		cfg.Neo4j.Database = fc.Neo4jDatabase
	}
	if fc.AgentURL != "" {
		cfg.AgentURL = fc.AgentURL
	}
	if fc.RedisAddr != "" {
		cfg.RedisAddr = fc.RedisAddr
	}
	if fc.TrendingMinRaters > 0 {
		cfg.TrendingMinRaters = fc.TrendingMinRaters
	}
	return nil
}
