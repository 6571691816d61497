package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/apierr"
)

// RespondServiceError maps service-layer errors onto HTTP statuses. Graph
// connectivity problems surface as 502 so callers can tell store outages
// apart from their own bad requests.
func RespondServiceError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		RespondError(c, apiErr.Status, apiErr.Code, apiErr.Err)
		return
	}

	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.Is(err, pkgerrors.ErrAlreadyExists):
		RespondError(c, http.StatusConflict, "already_exists", err)
	case errors.Is(err, pkgerrors.ErrNotConfigured):
		RespondError(c, http.StatusBadGateway, "store_unavailable", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
