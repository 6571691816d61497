package app

import (
	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Book      services.BookService
	Author    services.AuthorService
	Genre     services.GenreService
	Search    services.SearchService
	Discovery services.DiscoveryService
	Social    services.SocialService
	Chat      services.ChatService
}

func wireServices(cfg Config, clients Clients, log *logger.Logger) Services {
	log.Info("Wiring services...")

	store := graph.NewStore(clients.Graph, log)

	discovery := services.NewDiscoveryService(store, clients.Cache, cfg.TrendingMinRaters, log)
	social := services.NewSocialService(store, log)

	return Services{
		Auth:      services.NewAuthService(store, cfg.JWTSecretKey, cfg.TokenTTL, log),
		Book:      services.NewBookService(store, log),
		Author:    services.NewAuthorService(store, log),
		Genre:     services.NewGenreService(store, log),
		Search:    services.NewSearchService(store, log),
		Discovery: discovery,
		Social:    social,
		Chat:      services.NewChatService(clients.Agent, store, discovery, social, log),
	}
}
