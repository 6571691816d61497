package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/ctxutil"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type ChatHandler struct {
	log  *logger.Logger
	chat services.ChatService
}

func NewChatHandler(log *logger.Logger, chat services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:  log.With("handler", "ChatHandler"),
		chat: chat,
	}
}

type chatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /api/chat/message
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	userID := ctxutil.GetUserID(c.Request.Context())
	reply, err := h.chat.SendMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, reply)
}
