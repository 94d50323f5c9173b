package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// EventHandler handles the agenda.
type EventHandler struct {
	events core.EventService
	logger *zap.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events core.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{events: events, logger: logger}
}

// Create handles POST /events.
func (h *EventHandler) Create(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	event, err := h.events.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// List handles GET /events.
func (h *EventHandler) List(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	filter := core.EventFilter{
		LawyerID:  c.Query("lawyerId"),
		ProcessID: c.Query("processId"),
	}
	events, err := h.events.List(c.Request.Context(), uid, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Update handles PUT /events/:eventId.
func (h *EventHandler) Update(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	event, err := h.events.Update(c.Request.Context(), uid, c.Param("eventId"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:eventId.
func (h *EventHandler) Delete(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.events.Delete(c.Request.Context(), uid, c.Param("eventId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Event deleted"})
}

// Confirm handles POST /events/:eventId/confirm.
func (h *EventHandler) Confirm(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	event, err := h.events.Confirm(c.Request.Context(), uid, c.Param("eventId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
