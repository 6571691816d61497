package app

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/booklovers/backend/internal/http/middleware"
	"github.com/booklovers/backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers, mw Middleware) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("booklovers"))
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(log))

	router.GET("/healthcheck", handlers.Health.Healthcheck)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signin", handlers.Auth.SignIn)
			auth.POST("/register", handlers.Auth.Register)
		}

		books := api.Group("/books")
		{
			books.GET("/:id", mw.Auth.OptionalAuth(), handlers.Book.GetBook)
			books.GET("/:id/status", mw.Auth.RequireAuth(), handlers.Book.GetStatus)
			books.POST("/:id/status", mw.Auth.RequireAuth(), handlers.Book.SetStatus)
			books.POST("/:id/rating", mw.Auth.RequireAuth(), handlers.Book.Rate)
		}

		api.GET("/authors/:id", handlers.Author.GetAuthor)
		api.GET("/genres/:id", handlers.Genre.GetGenre)

		api.GET("/search", handlers.Search.Search)
		api.GET("/search/suggestions", handlers.Search.Suggest)

		feed := api.Group("/feed")
		feed.Use(mw.Auth.RequireAuth())
		{
			feed.GET("/currently-reading", handlers.Feed.CurrentlyReading)
			feed.GET("/trending", handlers.Feed.Trending)
			feed.GET("/recommendations", handlers.Feed.Recommendations)
			feed.GET("/friends", handlers.Feed.FriendMatches)
			feed.GET("/events", handlers.Feed.Events)
			feed.GET("/recent", handlers.Feed.Recent)
			feed.GET("/adaptations", handlers.Feed.Adaptations)
		}

		api.POST("/chat/message", mw.Auth.RequireAuth(), handlers.Chat.SendMessage)
	}

	return router
}
