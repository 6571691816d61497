package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type AuthorHandler struct {
	log     *logger.Logger
	authors services.AuthorService
}

func NewAuthorHandler(log *logger.Logger, authors services.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		log:     log.With("handler", "AuthorHandler"),
		authors: authors,
	}
}

// GET /api/authors/:id
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	author, err := h.authors.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, author)
}
