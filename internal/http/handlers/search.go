package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type SearchHandler struct {
	log    *logger.Logger
	search services.SearchService
}

func NewSearchHandler(log *logger.Logger, search services.SearchService) *SearchHandler {
	return &SearchHandler{
		log:    log.With("handler", "SearchHandler"),
		search: search,
	}
}

// GET /api/search?q=...&limit=...
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit := parseLimit(c.Query("limit"))
	response.RespondOK(c, h.search.Search(c.Request.Context(), query, limit))
}

// GET /api/search/suggestions?q=...&limit=...
func (h *SearchHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	limit := parseLimit(c.Query("limit"))
	response.RespondOK(c, gin.H{
		"suggestions": h.search.Suggest(c.Request.Context(), query, limit),
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
