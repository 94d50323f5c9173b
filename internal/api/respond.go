package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/ai"
	"jusgestor-backend-go/internal/core"
)

// respondError maps a service error to one HTTP status. Every handler
// funnels its errors through here so the taxonomy cannot drift across
// endpoints.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidInput) || errors.Is(err, ai.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrEmailInUse) || errors.Is(err, core.ErrOfficeExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrUpstream) || errors.Is(err, ai.ErrGenerationFailed):
		logger.Error("upstream failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "An upstream dependency failed", Details: "see server logs"})
	default:
		logger.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred"})
	}
}

// callerUID extracts the authenticated user ID set by the auth
// middleware. A missing ID means the route was wired without the
// middleware, which is a server bug, not a client error.
func callerUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	return uid.(string), true
}
