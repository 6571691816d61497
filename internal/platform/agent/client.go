// Package agent is the HTTP client for the external chat agent service.
// The agent turns free-form user messages into typed replies (book
// recommendations, author lookups, event listings) backed by its own
// view of the graph.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/booklovers/backend/internal/domain"
	"github.com/booklovers/backend/internal/platform/logger"
)

// Client sends chat messages to the agent service.
type Client interface {
	SendMessage(ctx context.Context, userID, message string) (*domain.ChatReply, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the agent at baseURL. Empty baseURL returns nil;
// callers treat a nil client as "agent not configured" and fall back to
// local query handling.
func New(log *logger.Logger, baseURL string, timeout time.Duration) Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		log:     log,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type messageRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (c *client) SendMessage(ctx context.Context, userID, message string) (*domain.ChatReply, error) {
	body, err := json.Marshal(messageRequest{Message: message, UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("agent: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("agent: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent: send message: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("agent: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("agent returned non-200", "status", resp.StatusCode)
		return nil, fmt.Errorf("agent: unexpected status %d", resp.StatusCode)
	}

	var reply domain.ChatReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("agent: decode response: %w", err)
	}
	if reply.Type == "" {
		reply.Type = "general"
	}
	return &reply, nil
}
