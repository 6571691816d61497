package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/ctxutil"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type BookHandler struct {
	log   *logger.Logger
	books services.BookService
}

func NewBookHandler(log *logger.Logger, books services.BookService) *BookHandler {
	return &BookHandler{
		log:   log.With("handler", "BookHandler"),
		books: books,
	}
}

// GET /api/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	viewerID := ctxutil.GetUserID(c.Request.Context())
	book, err := h.books.GetBook(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, book)
}

// GET /api/books/:id/status
func (h *BookHandler) GetStatus(c *gin.Context) {
	userID := ctxutil.GetUserID(c.Request.Context())
	status, err := h.books.GetStatus(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, status)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/books/:id/status
func (h *BookHandler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	userID := ctxutil.GetUserID(c.Request.Context())
	if err := h.books.SetStatus(c.Request.Context(), userID, c.Param("id"), req.Status); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": req.Status})
}

type rateRequest struct {
	Rating int64 `json:"rating" binding:"required"`
}

// POST /api/books/:id/rating
func (h *BookHandler) Rate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	userID := ctxutil.GetUserID(c.Request.Context())
	if err := h.books.Rate(c.Request.Context(), userID, c.Param("id"), req.Rating); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"rating": req.Rating})
}
