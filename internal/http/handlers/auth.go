package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type AuthHandler struct {
	log  *logger.Logger
	auth services.AuthService
}

func NewAuthHandler(log *logger.Logger, auth services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:  log.With("handler", "AuthHandler"),
		auth: auth,
	}
}

type signInRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	result, err := h.auth.SignIn(c.Request.Context(), req.UserID)
	if err != nil {
		h.log.Warn("sign in failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("registration failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result)
}
