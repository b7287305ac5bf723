package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/telemetry"
)

// Client talks to the remote booking backend over HTTPS/JSON.
// It is transport only: bearer tokens are attached per request by the
// caller, and authorization failures surface as domain errors for the
// session authority to interpret.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Config holds upstream client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New creates an upstream client with a tuned transport
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

// Request describes one outbound call
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      interface{}
	Token     string // bearer access token, empty = unsigned
	RequestID string // propagated as X-Request-ID
}

// envelope is the backend's standard response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// StatusError carries a non-2xx response that is not covered by the
// sentinel taxonomy (plain 4xx validation failures and the like)
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Do executes the request and decodes the enveloped payload into out.
// Status mapping: 401 -> domain.ErrUnauthorized, 403 -> domain.ErrForbidden,
// 5xx -> domain.ErrServer, timeouts -> domain.ErrNetworkTimeout.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	ctx, span := telemetry.StartSpan(ctx, "upstream.request")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.path", req.Path),
	)

	httpReq, err := c.build(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		if isTimeoutError(err) {
			span.SetStatus(codes.Error, "timeout")
			return fmt.Errorf("%s %s: %w", req.Method, req.Path, domain.ErrNetworkTimeout)
		}
		span.SetStatus(codes.Error, "unreachable")
		return fmt.Errorf("%s %s: %w: %v", req.Method, req.Path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%s %s: reading response: %w", req.Method, req.Path, err)
	}

	if err := c.mapStatus(resp.StatusCode, body); err != nil {
		if resp.StatusCode >= 500 {
			span.SetStatus(codes.Error, "server error")
		}
		return err
	}

	if out == nil {
		return nil
	}
	return decodeEnvelope(body, out)
}

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", req.RequestID)
	}

	return httpReq, nil
}

func (c *Client) mapStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status >= 500:
		return fmt.Errorf("%w (status %d)", domain.ErrServer, status)
	default:
		return &StatusError{Status: status, Message: errorMessage(body)}
	}
}

// decodeEnvelope unwraps {success, data} payloads, falling back to the
// raw body for backends that reply without the wrapper
func decodeEnvelope(body []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return "request rejected"
}

// isTimeoutError checks if error is a timeout
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "timeout")
}

// Healthy probes the backend health endpoint
func (c *Client) Healthy(ctx context.Context) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/health"}, nil)
}
