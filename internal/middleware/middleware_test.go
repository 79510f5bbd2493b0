package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/auth"
	"github.com/upb-facilities/cleaning-records/internal/logging"
	"github.com/upb-facilities/cleaning-records/internal/models"
	"github.com/upb-facilities/cleaning-records/internal/ratelimit"
)

type stubUsers map[uint]*models.User

func (s stubUsers) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newRouter(tokens *auth.TokenManager, users stubUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("/", AuthMiddleware(tokens, users, logging.Discard()))
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c)})
	})
	authed.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	op := &models.User{ID: 1, Role: models.RoleOperator, Active: true}
	admin := &models.User{ID: 2, Role: models.RoleAdmin, Active: true}
	off := &models.User{ID: 3, Role: models.RoleAdmin, Active: false}
	r := newRouter(tokens, stubUsers{1: op, 2: admin, 3: off})

	issue := func(u *models.User) string {
		raw, err := tokens.Issue(u)
		require.NoError(t, err)
		return raw
	}

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", "garbage").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/me", issue(op)).Code)

	// Deactivated after the token was issued.
	w := do(r, http.MethodGet, "/me", issue(off))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user_inactive")

	// Deleted user.
	ghost := &models.User{ID: 9, Role: models.RoleOperator}
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", issue(ghost)).Code)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/admin", issue(op)).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/admin", issue(admin)).Code)
}

func TestRateLimit_Returns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rule := ratelimit.Rule{Name: "t", Limit: 1, Window: time.Minute, Message: "Demasiadas solicitudes"}
	r.GET("/x", RateLimit(ratelimit.NewMemoryLimiter(), rule, KeyByIP, logging.Discard()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/x", "").Code)

	w := do(r, http.MethodGet, "/x", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(logging.Discard()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/x", "")
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
}
