package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/models"
)

// AccountHandler handles signup and the caller's own profile.
type AccountHandler struct {
	accounts core.AccountService
	logger   *zap.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts core.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// Signup handles POST /auth/signup. Public: creates the office plus
// its master account, or fails if a master already exists.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetProfile handles GET /profile.
func (h *AccountHandler) GetProfile(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	user, err := h.accounts.GetProfile(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	user, err := h.accounts.UpdateProfile(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword handles POST /profile/password.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if err := h.accounts.ChangePassword(c.Request.Context(), uid, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Password updated"})
}

// UploadPhoto handles POST /profile/photo with a multipart form file
// named "photo".
func (h *AccountHandler) UploadPhoto(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A 'photo' file field is required", Details: err.Error()})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read uploaded file", Details: err.Error()})
		return
	}
	defer f.Close()

	url, err := h.accounts.UploadProfilePhoto(c.Request.Context(), uid, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Photo uploaded", Data: gin.H{"photoURL": url}})
}
