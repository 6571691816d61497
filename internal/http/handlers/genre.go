package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type GenreHandler struct {
	log    *logger.Logger
	genres services.GenreService
}

func NewGenreHandler(log *logger.Logger, genres services.GenreService) *GenreHandler {
	return &GenreHandler{
		log:    log.With("handler", "GenreHandler"),
		genres: genres,
	}
}

// GET /api/genres/:id
func (h *GenreHandler) GetGenre(c *gin.Context) {
	genre, err := h.genres.GetGenre(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, genre)
}
