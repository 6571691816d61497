package services

import (
	"context"
	"errors"
	"testing"

	"github.com/booklovers/backend/internal/domain"
)

type fakeAgent struct {
	reply *domain.ChatReply
	err   error
	calls int
}

func (f *fakeAgent) SendMessage(_ context.Context, _, _ string) (*domain.ChatReply, error) {
	f.calls++
	return f.reply, f.err
}

func newChatService(t *testing.T, agentClient *fakeAgent, gw *scriptedGateway) ChatService {
	t.Helper()
	log := newTestLogger(t)
	store := newTestGraphStore(t, gw)
	discovery := NewDiscoveryService(store, nil, 5, log)
	social := NewSocialService(store, log)
	if agentClient == nil {
		return NewChatService(nil, store, discovery, social, log)
	}
	return NewChatService(agentClient, store, discovery, social, log)
}

func TestChatProxiesToAgent(t *testing.T) {
	agentClient := &fakeAgent{reply: &domain.ChatReply{Type: "general", Content: "hello"}}
	svc := newChatService(t, agentClient, &scriptedGateway{})

	reply, err := svc.SendMessage(context.Background(), "USER-1", "hi there")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if agentClient.calls != 1 {
		t.Fatalf("agent calls = %d, want 1", agentClient.calls)
	}
	if reply.Content != "hello" {
		t.Fatalf("reply = %+v", reply)
	}
}

func TestChatFallsBackWhenAgentFails(t *testing.T) {
	agentClient := &fakeAgent{err: errors.New("connection refused")}
	gw := &scriptedGateway{err: errors.New("store down")}
	svc := newChatService(t, agentClient, gw)

	reply, err := svc.SendMessage(context.Background(), "USER-1", "tell me something")
	if err != nil {
		t.Fatalf("SendMessage should never hard-fail: %v", err)
	}
	if reply.Type != "general" {
		t.Fatalf("fallback reply type = %q, want general", reply.Type)
	}
	if reply.Content == "" {
		t.Fatalf("fallback reply has no content")
	}
}

func TestChatRoutesRecommendationKeywords(t *testing.T) {
	// Unscripted gateway yields no candidates, so the discovery fallback
	// list is served.
	svc := newChatService(t, nil, &scriptedGateway{})

	reply, err := svc.SendMessage(context.Background(), "USER-1", "can you recommend a book")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Type != "recommendations" {
		t.Fatalf("reply type = %q, want recommendations", reply.Type)
	}
	books, ok := reply.Data.([]domain.RecommendedBook)
	if !ok || len(books) == 0 {
		t.Fatalf("reply data = %#v, want default recommendations", reply.Data)
	}
}

func TestChatEmptyMessagePrompts(t *testing.T) {
	svc := newChatService(t, nil, &scriptedGateway{})

	reply, err := svc.SendMessage(context.Background(), "USER-1", "   ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Type != "general" || reply.Content == "" {
		t.Fatalf("reply = %+v", reply)
	}
}

func TestExtractAuthorName(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"tell me about Frank Herbert author", "Frank Herbert"},
		{"what do you know about Jane Austen", "Jane Austen"},
		{"recommend a book", ""},
	}
	for _, tc := range cases {
		if got := extractAuthorName(tc.message); got != tc.want {
			t.Fatalf("extractAuthorName(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
