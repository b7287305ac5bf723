package domain

import "errors"

var (
	// ErrMissingTokens means the login response omitted a token; no session is created
	ErrMissingTokens = errors.New("login response is missing tokens")
	// ErrNoSession means no session exists for the given id
	ErrNoSession = errors.New("no session")
	// ErrUnauthorized is a 401 from the backend that survived the refresh protocol
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is a 403 from the backend; the session is untouched
	ErrForbidden = errors.New("forbidden")
	// ErrServer is a 5xx from the backend; surfaced without retry
	ErrServer = errors.New("backend server error")
	// ErrRefreshFailed means the refresh protocol failed; the session is torn down
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrNetworkTimeout means an upstream call exceeded its time bound
	ErrNetworkTimeout = errors.New("network timeout")
	// ErrUpstream covers connection-level failures reaching the backend
	ErrUpstream = errors.New("backend unreachable")
)
