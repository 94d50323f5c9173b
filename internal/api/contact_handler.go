package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// ContactHandler handles the public contact form and its triage.
type ContactHandler struct {
	contacts core.ContactService
	logger   *zap.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts core.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// Submit handles POST /contact. This is the only unauthenticated write
// endpoint of the API.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	cr, err := h.contacts.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, cr)
}

// List handles GET /contact-requests.
func (h *ContactHandler) List(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	requests, err := h.contacts.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// MarkHandled handles POST /contact-requests/:requestId/handled.
func (h *ContactHandler) MarkHandled(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.contacts.MarkHandled(c.Request.Context(), uid, c.Param("requestId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Contact request marked as handled"})
}
