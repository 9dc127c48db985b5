package session

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schoolportal/internal/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw, err := Middleware(Options{Secret: "test-secret", CookieName: "test_session", MaxAge: time.Hour})
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/login/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		require.NoError(t, SetUserID(c, id))
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.String(http.StatusUnauthorized, "anonymous")
			return
		}
		c.String(http.StatusOK, strconv.FormatInt(id, 10))
	})
	r.GET("/logout", func(c *gin.Context) {
		require.NoError(t, Clear(c))
		c.Status(http.StatusNoContent)
	})
	r.GET("/flash", func(c *gin.Context) {
		require.NoError(t, AddFlash(c, "User already exists"))
		c.Status(http.StatusNoContent)
	})
	r.GET("/show", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Join(Flashes(c), "|"))
	})
	return r
}

// do issues a request carrying cookies and returns the recorder plus the updated cookies
func do(r *gin.Engine, path string, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if fresh := w.Result().Cookies(); len(fresh) > 0 {
		return w, fresh
	}
	return w, cookies
}

func TestSession_UserIDRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	w, jar := do(r, "/whoami", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, jar = do(r, "/login/42", jar)
	require.NotEmpty(t, jar)
	assert.Equal(t, "test_session", jar[0].Name)
	assert.True(t, jar[0].HttpOnly)

	w, jar = do(r, "/whoami", jar)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	_, jar = do(r, "/logout", jar)
	w, _ = do(r, "/whoami", jar)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_FlashesAreConsumedOnce(t *testing.T) {
	r := newTestRouter(t)

	_, jar := do(r, "/flash", nil)

	w, jar := do(r, "/show", jar)
	assert.Equal(t, "User already exists", w.Body.String())

	w, _ = do(r, "/show", jar)
	assert.Empty(t, w.Body.String())
}

func TestSession_TamperedCookieIsAnonymous(t *testing.T) {
	r := newTestRouter(t)

	_, jar := do(r, "/login/7", nil)
	require.NotEmpty(t, jar)
	jar[0].Value = "x" + jar[0].Value

	w, _ := do(r, "/whoami", jar)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_RequiresSecret(t *testing.T) {
	_, err := Middleware(Options{CookieName: "s"})
	assert.Error(t, err)

	_, err = Middleware(Options{Secret: "s"})
	assert.Error(t, err)
}

func TestFlashes_LogsFailedSave(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { logger.Configure(logger.Config{Level: "info", Pretty: true}) })

	gin.SetMode(gin.TestMode)
	mw, err := Middleware(Options{Secret: "test-secret", CookieName: "test_session", MaxAge: time.Hour})
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/oversized", func(c *gin.Context) {
		s := sessions.Default(c)
		// larger than the 4096 byte cookie limit, so saving fails
		s.Set("blob", strings.Repeat("x", 5000))
		s.AddFlash("No file part")
		c.String(http.StatusOK, strings.Join(Flashes(c), "|"))
	})

	w, _ := do(r, "/oversized", nil)
	assert.Equal(t, "No file part", w.Body.String())
	assert.Contains(t, buf.String(), "Failed to save session after reading flashes")
}
