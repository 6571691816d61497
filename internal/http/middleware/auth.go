package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/booklovers/backend/internal/http/response"
	"github.com/booklovers/backend/internal/platform/apierr"
	"github.com/booklovers/backend/internal/platform/ctxutil"
	"github.com/booklovers/backend/internal/platform/logger"
	"github.com/booklovers/backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		log:         log.With("middleware", "AuthMiddleware"),
		authService: authService,
	}
}

// RequireAuth validates the bearer token and attaches the user id to the
// request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.RespondServiceError(c, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("missing bearer token")))
			c.Abort()
			return
		}
		userID, err := am.authService.VerifyToken(tokenString)
		if err != nil {
			am.log.Debug("token rejected", "error", err)
			response.RespondServiceError(c, err)
			c.Abort()
			return
		}
		attachUserID(c, userID)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid token is present but lets
// anonymous requests through. Public pages use it to personalize sections
// like friends-reading without requiring sign-in.
func (am *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			userID, err := am.authService.VerifyToken(tokenString)
			if err != nil {
				am.log.Debug("optional token rejected", "error", err)
			} else {
				attachUserID(c, userID)
			}
		}
		c.Next()
	}
}

func attachUserID(c *gin.Context, userID string) {
	c.Request = c.Request.WithContext(ctxutil.WithUserID(c.Request.Context(), userID))
	c.Set("user_id", userID)
}

func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}
