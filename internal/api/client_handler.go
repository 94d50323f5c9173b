package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// ClientHandler handles client records.
type ClientHandler struct {
	clients core.ClientService
	logger  *zap.Logger
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(clients core.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, logger: logger}
}

// Create handles POST /clients.
func (h *ClientHandler) Create(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	client, err := h.clients.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Get handles GET /clients/:clientId.
func (h *ClientHandler) Get(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	client, err := h.clients.Get(c.Request.Context(), uid, c.Param("clientId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// List handles GET /clients.
func (h *ClientHandler) List(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	clients, err := h.clients.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Update handles PUT /clients/:clientId.
func (h *ClientHandler) Update(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	client, err := h.clients.Update(c.Request.Context(), uid, c.Param("clientId"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /clients/:clientId.
func (h *ClientHandler) Delete(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), uid, c.Param("clientId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Client deleted"})
}
