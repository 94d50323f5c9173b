package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// ProcessHandler handles legal cases, their ACL, movement log and
// subcollections.
type ProcessHandler struct {
	processes core.ProcessService
	logger    *zap.Logger
}

// NewProcessHandler creates a ProcessHandler.
func NewProcessHandler(processes core.ProcessService, logger *zap.Logger) *ProcessHandler {
	return &ProcessHandler{processes: processes, logger: logger}
}

// Create handles POST /processes.
func (h *ProcessHandler) Create(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	p, err := h.processes.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Get handles GET /processes/:processId.
func (h *ProcessHandler) Get(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	p, err := h.processes.Get(c.Request.Context(), uid, c.Param("processId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handles GET /processes.
func (h *ProcessHandler) List(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	processes, err := h.processes.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, processes)
}

// Update handles PUT /processes/:processId.
func (h *ProcessHandler) Update(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	p, err := h.processes.Update(c.Request.Context(), uid, c.Param("processId"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /processes/:processId.
func (h *ProcessHandler) Delete(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.processes.Delete(c.Request.Context(), uid, c.Param("processId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Process deleted"})
}

// AppendMovement handles POST /processes/:processId/movements.
func (h *ProcessHandler) AppendMovement(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.AppendMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.processes.AppendMovement(c.Request.Context(), uid, c.Param("processId"), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Movement appended"})
}

// AddCollaborator handles POST /processes/:processId/collaborators.
func (h *ProcessHandler) AddCollaborator(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.processes.AddCollaborator(c.Request.Context(), uid, c.Param("processId"), req.UserID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Collaborator added"})
}

// RemoveCollaborator handles DELETE /processes/:processId/collaborators/:userId.
func (h *ProcessHandler) RemoveCollaborator(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	if err := h.processes.RemoveCollaborator(c.Request.Context(), uid, c.Param("processId"), c.Param("userId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Collaborator removed"})
}

// PostChatMessage handles POST /processes/:processId/chat.
func (h *ProcessHandler) PostChatMessage(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	msg, err := h.processes.PostChatMessage(c.Request.Context(), uid, c.Param("processId"), req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListChatMessages handles GET /processes/:processId/chat.
func (h *ProcessHandler) ListChatMessages(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	msgs, err := h.processes.ListChatMessages(c.Request.Context(), uid, c.Param("processId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// UploadDocument handles POST /processes/:processId/documents with a
// multipart form file named "document".
func (h *ProcessHandler) UploadDocument(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A 'document' file field is required", Details: err.Error()})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read uploaded file", Details: err.Error()})
		return
	}
	defer f.Close()

	doc, err := h.processes.UploadDocument(
		c.Request.Context(), uid, c.Param("processId"),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, f,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListDocuments handles GET /processes/:processId/documents.
func (h *ProcessHandler) ListDocuments(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	docs, err := h.processes.ListDocuments(c.Request.Context(), uid, c.Param("processId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
