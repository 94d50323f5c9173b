package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// OfficeHandler handles office settings.
type OfficeHandler struct {
	offices core.OfficeService
	logger  *zap.Logger
}

// NewOfficeHandler creates an OfficeHandler.
func NewOfficeHandler(offices core.OfficeService, logger *zap.Logger) *OfficeHandler {
	return &OfficeHandler{offices: offices, logger: logger}
}

// Get handles GET /office.
func (h *OfficeHandler) Get(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	office, err := h.offices.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, office)
}

// Update handles PUT /office.
func (h *OfficeHandler) Update(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	office, err := h.offices.Update(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, office)
}
