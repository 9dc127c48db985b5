// Package session keeps the signed-in user and flash messages in a signed
// cookie session.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolportal/internal/pkg/logger"
)

const userIDKey = "user_id"

// Options configures the session cookie
type Options struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Middleware returns the gin middleware that loads the session for each request
func Middleware(opts Options) (gin.HandlerFunc, error) {
	if opts.Secret == "" {
		return nil, errors.New("session secret is required")
	}
	if opts.CookieName == "" {
		return nil, errors.New("session cookie name is required")
	}

	store := cookie.NewStore([]byte(opts.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sessions.Sessions(opts.CookieName, store), nil
}

// SetUserID marks the session as signed in for the user
func SetUserID(c *gin.Context, userID int64) error {
	s := sessions.Default(c)
	s.Set(userIDKey, userID)
	return s.Save()
}

// UserID returns the signed-in user id, if any
func UserID(c *gin.Context) (int64, bool) {
	id, ok := sessions.Default(c).Get(userIDKey).(int64)
	return id, ok
}

// Clear drops every value of the session, signing the user out
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// AddFlash queues a one-time message for the next rendered page
func AddFlash(c *gin.Context, message string) error {
	s := sessions.Default(c)
	s.AddFlash(message)
	return s.Save()
}

// Flashes pops the queued flash messages
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// popping flashes modifies the session
	if err := s.Save(); err != nil {
		logger.Warn().Err(err).Msg("Failed to save session after reading flashes")
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
