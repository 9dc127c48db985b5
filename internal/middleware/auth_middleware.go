package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/pkg/session"
)

const (
	currentUserKey = "currentUser"

	// LoginPath is where anonymous visitors of guarded pages are sent
	LoginPath = "/login"
)

// AuthMiddleware guards pages that need a signed-in user
type AuthMiddleware struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// RequireAuth resolves the session user or redirects to the login page.
// A session pointing at a user that no longer resolves is cleared.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := session.UserID(c)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		user, err := m.authService.ResolveUser(c.Request.Context(), userID)
		if err != nil {
			m.logger.Warn().Err(err).Int64("userID", userID).Msg("Session user did not resolve, clearing session")
			if clearErr := session.Clear(c); clearErr != nil {
				m.logger.Error().Err(clearErr).Msg("Failed to clear session")
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
