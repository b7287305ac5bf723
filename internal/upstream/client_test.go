package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop()), srv
}

func TestDo_UnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"name":"Main Pitch"}}`))
	})

	var out struct {
		Name string `json:"name"`
	}
	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/admin/pitches/1"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Main Pitch", out.Name)
}

func TestDo_FallsBackToRawBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Main Pitch"}`))
	})

	var out struct {
		Name string `json:"name"`
	}
	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/admin/pitches/1"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Main Pitch", out.Name)
}

func TestDo_PropagatesHeadersAndQuery(t *testing.T) {
	var gotAuth, gotRequestID, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotQuery = r.URL.Query().Get("page")
		w.Write([]byte(`{"success":true,"data":{}}`))
	})

	q := url.Values{}
	q.Set("page", "3")
	err := client.Do(context.Background(), Request{
		Method:    http.MethodGet,
		Path:      "/admin/bookings",
		Query:     q,
		Token:     "A1",
		RequestID: "req-123",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer A1", gotAuth)
	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, "3", gotQuery)
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, domain.ErrForbidden},
		{"server error", http.StatusInternalServerError, domain.ErrServer},
		{"bad gateway", http.StatusBadGateway, domain.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDo_OtherClientErrorsCarryStatusAndMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Booking not found"}`))
	})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/admin/bookings/nope"}, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Equal(t, "Booking not found", statusErr.Message)
}

func TestDo_TimeoutMapsToNetworkTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zap.NewNop())
	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"}, nil)

	assert.ErrorIs(t, err, domain.ErrNetworkTimeout)
}

func TestDo_ConnectionRefusedMapsToUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(Config{BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop())
	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/gone"}, nil)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestHealthy(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"success":true,"data":{"status":"ok"}}`))
	})

	assert.NoError(t, client.Healthy(context.Background()))
}

func TestLoginResult_Identity(t *testing.T) {
	t.Run("nested user block", func(t *testing.T) {
		r := &LoginResult{User: LoginUser{ID: "u1", Name: "Alice", Phone: "081", Role: "admin"}}
		id := r.Identity()
		assert.Equal(t, "u1", id.ID)
		assert.Equal(t, domain.Role("admin"), id.Role)
	})

	t.Run("top level fields", func(t *testing.T) {
		r := &LoginResult{ID: "u2", Role: "superadmin"}
		id := r.Identity()
		assert.Equal(t, "u2", id.ID)
		assert.Equal(t, domain.Role("superadmin"), id.Role)
	})

	t.Run("role defaults to admin", func(t *testing.T) {
		r := &LoginResult{User: LoginUser{ID: "u3"}}
		assert.Equal(t, domain.RoleAdmin, r.Identity().Role)
	})
}
