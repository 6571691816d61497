package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/ctxutil"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

// FeedHandler serves the home feed sections. Each section is an
// independent endpoint so the frontend can load them in parallel.
type FeedHandler struct {
	log       *logger.Logger
	discovery services.DiscoveryService
	social    services.SocialService
}

func NewFeedHandler(log *logger.Logger, discovery services.DiscoveryService, social services.SocialService) *FeedHandler {
	return &FeedHandler{
		log:       log.With("handler", "FeedHandler"),
		discovery: discovery,
		social:    social,
	}
}

// GET /api/feed/currently-reading
func (h *FeedHandler) CurrentlyReading(c *gin.Context) {
	userID := ctxutil.GetUserID(c.Request.Context())
	books, err := h.discovery.CurrentlyReading(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"books": books})
}

// GET /api/feed/trending
func (h *FeedHandler) Trending(c *gin.Context) {
	books, err := h.discovery.Trending(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"books": books})
}

// GET /api/feed/recommendations
func (h *FeedHandler) Recommendations(c *gin.Context) {
	userID := ctxutil.GetUserID(c.Request.Context())
	books, err := h.discovery.Recommendations(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"books": books})
}

// GET /api/feed/friends
func (h *FeedHandler) FriendMatches(c *gin.Context) {
	userID := ctxutil.GetUserID(c.Request.Context())
	friends, err := h.social.FriendMatches(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"friends": friends})
}

// GET /api/feed/events
func (h *FeedHandler) Events(c *gin.Context) {
	userID := ctxutil.GetUserID(c.Request.Context())
	events, err := h.social.UpcomingEvents(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": events})
}

// GET /api/feed/recent
func (h *FeedHandler) Recent(c *gin.Context) {
	books, err := h.discovery.RecentBooks(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"books": books})
}

// GET /api/feed/adaptations
func (h *FeedHandler) Adaptations(c *gin.Context) {
	userID := ctxutil.GetUserID(c.Request.Context())
	adaptations, err := h.discovery.Adaptations(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"adaptations": adaptations})
}
