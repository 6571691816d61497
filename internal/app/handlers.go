package app

import (
	"github.com/booklovers/backend/internal/http/handlers"
	"github.com/booklovers/backend/internal/platform/logger"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Book   *handlers.BookHandler
	Author *handlers.AuthorHandler
	Genre  *handlers.GenreHandler
	Search *handlers.SearchHandler
	Feed   *handlers.FeedHandler
	Chat   *handlers.ChatHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: handlers.NewHealthHandler(),
		Auth:   handlers.NewAuthHandler(log, services.Auth),
		Book:   handlers.NewBookHandler(log, services.Book),
		Author: handlers.NewAuthorHandler(log, services.Author),
		Genre:  handlers.NewGenreHandler(log, services.Genre),
		Search: handlers.NewSearchHandler(log, services.Search),
		Feed:   handlers.NewFeedHandler(log, services.Discovery, services.Social),
		Chat:   handlers.NewChatHandler(log, services.Chat),
	}
}
