package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// TemplateHandler handles document templates.
type TemplateHandler struct {
	templates core.TemplateService
	logger    *zap.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(templates core.TemplateService, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{templates: templates, logger: logger}
}

// Create handles POST /templates.
func (h *TemplateHandler) Create(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	tpl, err := h.templates.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// Get handles GET /templates/:templateId.
func (h *TemplateHandler) Get(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	tpl, err := h.templates.Get(c.Request.Context(), uid, c.Param("templateId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// List handles GET /templates.
func (h *TemplateHandler) List(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	templates, err := h.templates.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// Update handles PUT /templates/:templateId.
func (h *TemplateHandler) Update(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	tpl, err := h.templates.Update(c.Request.Context(), uid, c.Param("templateId"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Delete handles DELETE /templates/:templateId.
func (h *TemplateHandler) Delete(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.templates.Delete(c.Request.Context(), uid, c.Param("templateId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Template deleted"})
}
