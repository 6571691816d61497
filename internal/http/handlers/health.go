package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GET /healthcheck
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "ok"})
}
