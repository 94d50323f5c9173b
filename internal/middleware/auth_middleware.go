package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse mirrors the api package's error shape. Defined locally
// to avoid an import cycle with internal/api.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware verifies Firebase ID tokens on protected routes.
type AuthMiddleware struct {
	authClient *auth.Client
	logger     *zap.Logger
}

// NewAuthMiddleware creates an AuthMiddleware. A nil auth client is a
// setup error the server cannot run with.
func NewAuthMiddleware(authClient *auth.Client, logger *zap.Logger) *AuthMiddleware {
	if authClient == nil {
		panic("AuthMiddleware requires an initialized Firebase Auth client")
	}
	return &AuthMiddleware{authClient: authClient, logger: logger}
}

// VerifyToken reads the bearer token, verifies it with Firebase and
// sets "userID" in the Gin context. Browsers cannot set headers on a
// WebSocket handshake, so a ?token= query parameter is accepted as a
// fallback for the /ws routes.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken := ""
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
				return
			}
			idToken = parts[1]
		} else {
			idToken = c.Query("token")
		}
		if idToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication token is required"})
			return
		}

		token, err := m.authClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			m.logger.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set("userID", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("userEmail", email)
		}
		c.Next()
	}
}
