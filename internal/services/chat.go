package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	"github.com/booklovers/backend/internal/platform/agent"
	"github.com/booklovers/backend/internal/platform/logger"
)

// ChatService answers reader questions. It proxies to the external agent
// when one is configured and falls back to keyword routing over the graph
// when the agent is missing or fails; the end user never sees a hard
// failure from the agent path.
type ChatService interface {
	SendMessage(ctx context.Context, userID, message string) (*domain.ChatReply, error)
}

type chatService struct {
	agent     agent.Client
	store     *graph.Store
	discovery DiscoveryService
	social    SocialService
	log       *logger.Logger
}

func NewChatService(agentClient agent.Client, store *graph.Store, discovery DiscoveryService, social SocialService, log *logger.Logger) ChatService {
	return &chatService{
		agent:     agentClient,
		store:     store,
		discovery: discovery,
		social:    social,
		log:       log.With("service", "ChatService"),
	}
}

func (s *chatService) SendMessage(ctx context.Context, userID, message string) (*domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return &domain.ChatReply{
			Type:    "general",
			Content: "What would you like to know? I can recommend books, look up authors, or find reading events near you.",
		}, nil
	}

	if s.agent != nil {
		reply, err := s.agent.SendMessage(ctx, userID, message)
		if err == nil {
			return reply, nil
		}
		s.log.Warn("agent call failed, using local routing", "user_id", userID, "error", err)
	}

	return s.routeLocally(ctx, userID, message), nil
}

var authorNamePattern = regexp.MustCompile(`(?i)about (.+?)( wrote| author|$)`)

func (s *chatService) routeLocally(ctx context.Context, userID, message string) *domain.ChatReply {
	keywords := strings.Fields(strings.ToLower(message))

	if containsAny(keywords, "recommend", "suggestion", "similar", "like") {
		recs, err := s.discovery.Recommendations(ctx, userID)
		if err == nil && len(recs) > 0 {
			return &domain.ChatReply{
				Type:    "recommendations",
				Content: "Based on your reading history and preferences, I've found some books you might enjoy. These picks are personalized from your ratings, preferred genres, and what similar readers have enjoyed.",
				Data:    recs,
			}
		}
	}

	if containsAny(keywords, "author", "wrote", "writer") {
		if name := extractAuthorName(message); name != "" {
			author, err := s.store.FindAuthorByName(ctx, name)
			if err == nil {
				return &domain.ChatReply{
					Type:    "author",
					Content: describeAuthor(author),
				}
			}
		}
	}

	if containsAny(keywords, "genre", "type", "category") {
		genres, err := s.discovery.TopGenres(ctx, userID)
		if err == nil && len(genres) > 0 {
			var b strings.Builder
			b.WriteString("Looking at your reading history, your top genres are:\n")
			for i, g := range genres {
				fmt.Fprintf(&b, "\n%d. %s (%d%% of books)", i+1, g.Name, g.Percentage)
			}
			return &domain.ChatReply{Type: "genres", Content: b.String()}
		}
	}

	if containsAny(keywords, "friend", "similar", "people") {
		friends, err := s.social.FriendMatches(ctx, userID)
		if err == nil && len(friends) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, "I've found %d users with reading tastes very similar to yours:\n", len(friends))
			for _, f := range friends {
				fmt.Fprintf(&b, "\n- %s (%d%% match) - You share %d books in common", f.Name, f.MatchPercent, f.CommonBooks)
			}
			b.WriteString("\n\nWould you like me to suggest connecting with them?")
			return &domain.ChatReply{Type: "friends", Content: b.String(), Data: friends}
		}
	}

	if containsAny(keywords, "event", "festival", "club", "meetup") {
		events, err := s.social.UpcomingEvents(ctx, userID)
		if err == nil && len(events) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, "There are %d upcoming book events in your area:\n", len(events))
			for i, e := range events {
				fmt.Fprintf(&b, "\n%d. %s - %s", i+1, e.Name, e.Date.Format("January 2, 2006"))
				if e.FriendsAttending > 0 {
					fmt.Fprintf(&b, " (%d of your friends are attending)", e.FriendsAttending)
				}
			}
			b.WriteString("\n\nWould you like more details on any of these?")
			return &domain.ChatReply{Type: "events", Content: b.String(), Data: events}
		}
	}

	return &domain.ChatReply{
		Type:    "general",
		Content: "I've searched our knowledge graph for that information. To give you the most helpful answer, could you tell me more specifically what you're looking for? I can provide recommendations, author information, genre insights, or connect you with like-minded readers.",
	}
}

func describeAuthor(author *domain.AuthorDetail) string {
	span := fmt.Sprintf("%d-present", author.BirthYear)
	if author.DeathYear > 0 {
		span = fmt.Sprintf("%d-%d", author.BirthYear, author.DeathYear)
	}
	titles := make([]string, 0, 3)
	for i, b := range author.Books {
		if i == 3 {
			break
		}
		titles = append(titles, fmt.Sprintf("%q", b.Title))
	}
	known := "their published works"
	if len(titles) > 0 {
		known = strings.Join(titles, ", ")
	}
	return fmt.Sprintf("%s (%s) is known for works like %s. %s", author.Name, span, known, author.Bio)
}

func extractAuthorName(message string) string {
	m := authorNamePattern.FindStringSubmatch(message)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func containsAny(keywords []string, wanted ...string) bool {
	for _, k := range keywords {
		for _, w := range wanted {
			if k == w {
				return true
			}
		}
	}
	return false
}
