package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/repository"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// consoleBackend is a minimal booking backend double for handler tests
type consoleBackend struct {
	srv *httptest.Server

	mu            sync.Mutex
	loginStatus   int
	omitRefresh   bool
	validToken    string
	refreshStatus int
}

func newConsoleBackend() *consoleBackend {
	b := &consoleBackend{validToken: "A1"}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		status, omit := b.loginStatus, b.omitRefresh
		b.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]interface{}{"success": false, "message": "Invalid credentials"})
			return
		}
		data := map[string]interface{}{
			"accessToken": "A1",
			"user": map[string]string{
				"_id": "admin-1", "name": "Alice", "phone": "0812345678", "role": "admin",
			},
		}
		if !omit {
			data["refreshToken"] = "R1"
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": data})
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		status := b.refreshStatus
		b.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]interface{}{"success": false})
			return
		}
		b.mu.Lock()
		b.validToken = "A2"
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]string{"accessToken": "A2"},
		})
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	})
	mux.HandleFunc("/admin/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		valid := b.validToken
		b.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+valid {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]int{"totalBookings": 42},
		})
	})

	b.srv = httptest.NewServer(mux)
	return b
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// newConsoleRouter wires the real authority, codec and handlers against
// the backend double
func newConsoleRouter(t *testing.T, backend *consoleBackend) *gin.Engine {
	t.Helper()

	logger := zap.NewNop()
	client := upstream.New(upstream.Config{BaseURL: backend.srv.URL, Timeout: 5 * time.Second}, logger)
	repo := repository.NewMemorySessionRepository()
	authority := service.NewAuthority(client, repo, nil, logger)
	console := service.NewConsole(authority)
	codec := middleware.NewCookieCodec(middleware.CookieConfig{Secret: "test-secret", TTL: time.Hour})

	authHandler := NewAuthHandler(authority, client, codec, logger)
	dashboardHandler := NewDashboardHandler(console, codec)

	guard := middleware.SessionGuard(codec, func(c *gin.Context, sessionID string) (*domain.Session, error) {
		return authority.Resolve(c.Request.Context(), sessionID)
	})

	r := gin.New()
	r.POST("/api/v1/auth/login", authHandler.Login)
	r.POST("/api/v1/auth/logout", authHandler.Logout)
	r.GET("/api/v1/auth/session", guard, authHandler.Session)
	r.GET("/api/v1/admin/dashboard/stats", guard, dashboardHandler.Stats)
	return r
}

func doLogin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"name":"Alice","phone":"0812345678"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "login must set the session cookie")
	return cookies[0]
}

func TestLogin_SetsCookieAndHidesTokens(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"name":"Alice","phone":"0812345678"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"name":"Alice"`)
	assert.NotContains(t, body, "accessToken")
	assert.NotContains(t, body, "refreshToken")
	assert.NotContains(t, body, "R1")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	// The cookie is a signed JWT carrying the session id, not a bearer token
	assert.Len(t, strings.Split(cookies[0].Value, "."), 3)
}

func TestLogin_BadCredentials(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	backend.loginStatus = http.StatusUnauthorized
	r := newConsoleRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"name":"Alice","phone":"0812345678"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_IncompleteTokenPair(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	backend.omitRefresh = true
	r := newConsoleRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"name":"Alice","phone":"0812345678"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, w.Result().Cookies(), "no session may be established on a partial login")
}

func TestLogin_MissingFields(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSession_ReturnsIdentity(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)
	cookie := doLogin(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"name":"Alice"`)
	assert.NotContains(t, body, "accessToken")
}

func TestGuardedRequest_RefreshesSilently(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)
	cookie := doLogin(t, r)

	// Expire the access token server-side; the next console call must
	// refresh and retry without surfacing a 401
	backend.mu.Lock()
	backend.validToken = "A2"
	backend.mu.Unlock()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalBookings":42`)
}

func TestGuardedRequest_RefreshFailureForcesLogout(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)
	cookie := doLogin(t, r)

	backend.mu.Lock()
	backend.validToken = "A2"
	backend.refreshStatus = http.StatusBadRequest
	backend.mu.Unlock()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
	// The cookie is expired so the UI returns to login
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")

	// Subsequent guarded requests are rejected outright
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil)
	req2.AddCookie(cookie)
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}

func TestLogout_ClearsCookieEvenWithoutSession(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestGuardedRequest_WithoutCookie(t *testing.T) {
	backend := newConsoleBackend()
	defer backend.srv.Close()
	r := newConsoleRouter(t, backend)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
