package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// TeamHandler handles member invitation and the office roster.
type TeamHandler struct {
	team   core.TeamService
	logger *zap.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(team core.TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{team: team, logger: logger}
}

// Invite handles POST /team/invite. The response is the only place the
// temporary password ever appears.
func (h *TeamHandler) Invite(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, tempPassword, err := h.team.Invite(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, InviteResponse{User: user, TemporaryPassword: tempPassword})
}

// ListMembers handles GET /team.
func (h *TeamHandler) ListMembers(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	members, err := h.team.ListMembers(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
