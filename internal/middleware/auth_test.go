package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"peer_edu_backend/internal/config"
	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/testutil"
	"peer_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/instructor", AuthMiddleware(cfg), RoleMiddleware(model.Instructor), func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserFromContext(c).Sid)
	})
	return r
}

func token(t *testing.T, secret string, role model.UserRole) string {
	t.Helper()
	return testutil.Token(t, util.Claims{Sid: "u1", Role: role, CourseName: "cs101"}, secret, time.Hour)
}

func TestAuthAndRoleMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "secret"}}
	r := newRouter(cfg)

	tests := []struct {
		name string
		auth string
		want int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"student forbidden", "Bearer " + token(t, "secret", model.Student), http.StatusForbidden},
		{"instructor allowed", "Bearer " + token(t, "secret", model.Instructor), http.StatusOK},
		{"admin allowed", "Bearer " + token(t, "secret", model.Admin), http.StatusOK},
		{"wrong secret", "Bearer " + token(t, "other", model.Instructor), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/instructor", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "secret"}}
	r := newRouter(cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instructor?token="+token(t, "secret", model.Instructor), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}
