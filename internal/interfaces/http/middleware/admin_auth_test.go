package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cenit-labs.backend/pkg/crypto"
)

func gatedRouter(passwordHash string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/team", AdminGate(passwordHash), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminGate_OpenWhenNoHashConfigured(t *testing.T) {
	r := gatedRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/team", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate_AcceptsCorrectPassword(t *testing.T) {
	hash, err := crypto.HashPassword("hunter2")
	require.NoError(t, err)
	r := gatedRouter(hash)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/team", nil)
	req.Header.Set(AdminPasswordHeader, "hunter2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate_RejectsWrongOrMissingPassword(t *testing.T) {
	hash, err := crypto.HashPassword("hunter2")
	require.NoError(t, err)
	r := gatedRouter(hash)

	for _, password := range []string{"", "wrong"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/team", nil)
		if password != "" {
			req.Header.Set(AdminPasswordHeader, password)
		}
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid admin credentials")
	}
}

func TestRequestIDMiddleware_GeneratesAndEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(RequestIDKey)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "req-123")
}
