package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// FinancialHandler handles receivables/payables.
type FinancialHandler struct {
	finances core.FinancialService
	logger   *zap.Logger
}

// NewFinancialHandler creates a FinancialHandler.
func NewFinancialHandler(finances core.FinancialService, logger *zap.Logger) *FinancialHandler {
	return &FinancialHandler{finances: finances, logger: logger}
}

// Create handles POST /financial-tasks.
func (h *FinancialHandler) Create(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateFinancialTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	task, err := h.finances.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// List handles GET /financial-tasks.
func (h *FinancialHandler) List(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	tasks, err := h.finances.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Update handles PUT /financial-tasks/:taskId.
func (h *FinancialHandler) Update(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateFinancialTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	task, err := h.finances.Update(c.Request.Context(), uid, c.Param("taskId"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /financial-tasks/:taskId.
func (h *FinancialHandler) Delete(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.finances.Delete(c.Request.Context(), uid, c.Param("taskId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Financial task deleted"})
}

// ToggleStatus handles POST /financial-tasks/:taskId/toggle.
func (h *FinancialHandler) ToggleStatus(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	task, err := h.finances.ToggleStatus(c.Request.Context(), uid, c.Param("taskId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
