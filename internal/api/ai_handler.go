package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/ai"
	"jusgestor-backend-go/internal/core"
)

// AIHandler handles the generative-text endpoints.
type AIHandler struct {
	aiService core.AIService
	logger    *zap.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(aiService core.AIService, logger *zap.Logger) *AIHandler {
	return &AIHandler{aiService: aiService, logger: logger}
}

// DraftPetition handles POST /ai/petition.
func (h *AIHandler) DraftPetition(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var in ai.PetitionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	out, err := h.aiService.DraftPetition(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SimulateStatusUpdate handles POST /ai/processes/:processId/status.
// The generated movement is appended to the process before it is
// returned.
func (h *AIHandler) SimulateStatusUpdate(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	movement, err := h.aiService.SimulateStatusUpdate(c.Request.Context(), uid, c.Param("processId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

// SummarizeBrief handles POST /ai/summary.
func (h *AIHandler) SummarizeBrief(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var in ai.SummaryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	out, err := h.aiService.SummarizeBrief(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
