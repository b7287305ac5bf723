package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(config CORSConfig) *gin.Engine {
	r := gin.New()
	r.Use(CORSWithConfig(config))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func corsGet(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_WildcardWithCredentialsEchoesOrigin(t *testing.T) {
	r := corsRouter(DefaultCORSConfig())

	w := corsGet(r, "https://console.example.com")

	// A credentialed response must never carry a literal "*" origin;
	// browsers drop it and the session cookie stops working
	assert.Equal(t, "https://console.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_AllowListEchoesMatchingOrigin(t *testing.T) {
	config := DefaultCORSConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "https://admin.justplay.app"}
	r := corsRouter(config)

	w := corsGet(r, "https://admin.justplay.app")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://admin.justplay.app", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_UnlistedOriginGetsNoCORSHeaders(t *testing.T) {
	config := DefaultCORSConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	r := corsRouter(config)

	w := corsGet(r, "https://evil.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_WildcardWithoutCredentials(t *testing.T) {
	config := DefaultCORSConfig()
	config.AllowCredentials = false
	r := corsRouter(config)

	w := corsGet(r, "https://console.example.com")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PreflightReturnsNoContent(t *testing.T) {
	config := DefaultCORSConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	r := corsRouter(config)

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}
