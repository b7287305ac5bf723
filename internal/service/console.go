package service

import (
	"context"
	"net/url"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
)

// Console exposes the typed admin resource surface of the booking
// backend. Every call rides Authority.Do, so bearer signing, the refresh
// protocol and forced logout apply uniformly.
type Console struct {
	auth *Authority
}

// NewConsole creates the admin resource client
func NewConsole(auth *Authority) *Console {
	return &Console{auth: auth}
}

func (c *Console) get(ctx context.Context, sid, path string, query url.Values, out interface{}) error {
	return c.auth.Do(ctx, sid, upstream.Request{
		Method:    "GET",
		Path:      path,
		Query:     query,
		RequestID: requestIDFrom(ctx),
	}, out)
}

func (c *Console) post(ctx context.Context, sid, path string, body, out interface{}) error {
	if body == nil {
		body = map[string]string{}
	}
	return c.auth.Do(ctx, sid, upstream.Request{
		Method:    "POST",
		Path:      path,
		Body:      body,
		RequestID: requestIDFrom(ctx),
	}, out)
}

func (c *Console) patch(ctx context.Context, sid, path string, body, out interface{}) error {
	return c.auth.Do(ctx, sid, upstream.Request{
		Method:    "PATCH",
		Path:      path,
		Body:      body,
		RequestID: requestIDFrom(ctx),
	}, out)
}

func (c *Console) delete(ctx context.Context, sid, path string) error {
	return c.auth.Do(ctx, sid, upstream.Request{
		Method:    "DELETE",
		Path:      path,
		RequestID: requestIDFrom(ctx),
	}, nil)
}

type requestIDKey struct{}

// WithRequestID binds the console request id so it propagates upstream
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
