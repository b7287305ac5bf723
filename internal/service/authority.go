package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/repository"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
)

// AuthorityConfig holds Authority settings
type AuthorityConfig struct {
	// SessionTTL is the absolute session lifetime (default 30 days),
	// independent of token expiry
	SessionTTL time.Duration
}

// Authority owns the admin session lifecycle: login, signed requests,
// silent refresh-on-401 and forced logout. It is the only writer of
// session state; handlers and middleware read through it.
//
// Refresh is single-flight per session: concurrent 401s share one
// upstream refresh call and its outcome, so two parallel requests can
// never race to rotate the same refresh token.
type Authority struct {
	upstream *upstream.Client
	sessions repository.SessionRepository
	config   *AuthorityConfig
	logger   *zap.Logger

	refreshGroup singleflight.Group
	refreshing   sync.Map // session id -> struct{} while a refresh is in flight

	now func() time.Time
}

// NewAuthority creates a session authority
func NewAuthority(
	up *upstream.Client,
	sessions repository.SessionRepository,
	config *AuthorityConfig,
	logger *zap.Logger,
) *Authority {
	if config == nil {
		config = &AuthorityConfig{}
	}
	if config.SessionTTL == 0 {
		config.SessionTTL = 30 * 24 * time.Hour
	}
	return &Authority{
		upstream: up,
		sessions: sessions,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// Login exchanges credentials for a session. The login is atomic: when
// the backend response omits either token, no session is persisted and
// domain.ErrMissingTokens is returned.
func (a *Authority) Login(ctx context.Context, req *dto.LoginRequest) (*domain.Session, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, &upstream.StatusError{Status: 400, Message: msg}
	}

	result, err := a.upstream.Login(ctx, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}

	tokens := domain.TokenPair{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
	if !tokens.Valid() {
		return nil, domain.ErrMissingTokens
	}

	now := a.now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		Identity:  result.Identity(),
		Tokens:    tokens,
		CreatedAt: now,
		ExpiresAt: now.Add(a.config.SessionTTL),
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	a.logger.Info("admin logged in",
		zap.String("session_id", session.ID),
		zap.String("user_id", session.Identity.ID),
	)
	return session, nil
}

// Resolve returns the committed session for the given id.
// Used by the route guard; returns domain.ErrNoSession when absent.
func (a *Authority) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	return a.sessions.Get(ctx, sessionID)
}

// State reports the lifecycle state for a session id
func (a *Authority) State(ctx context.Context, sessionID string) domain.State {
	if _, ok := a.refreshing.Load(sessionID); ok {
		return domain.StateRefreshing
	}
	if _, err := a.sessions.Get(ctx, sessionID); err != nil {
		return domain.StateUnauthenticated
	}
	return domain.StateAuthenticated
}

// Logout invalidates the session. The backend call is best-effort; local
// state is cleared unconditionally. Without a session this is a no-op
// and the backend is not called.
func (a *Authority) Logout(ctx context.Context, sessionID string) error {
	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNoSession) {
		return nil
	}
	if err != nil {
		// Local invalidation is unconditional; a failed read must not
		// leave the session behind
		return a.sessions.Delete(ctx, sessionID)
	}

	if err := a.upstream.Logout(ctx, session.Tokens.AccessToken); err != nil {
		a.logger.Warn("backend logout failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	return a.sessions.Delete(ctx, sessionID)
}

// Do executes a signed request for the session. On a 401 it runs the
// refresh protocol and retries the original request exactly once; a
// second 401 tears the session down and reports domain.ErrRefreshFailed.
// 403 and 5xx pass through without touching the session.
func (a *Authority) Do(ctx context.Context, sessionID string, req upstream.Request, out interface{}) error {
	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, domain.ErrNoSession) {
		return err
	}

	// Without a session the request goes out unsigned; the backend
	// is expected to reject it
	if session != nil {
		req.Token = session.Tokens.AccessToken
	}

	err = a.upstream.Do(ctx, req, out)
	if !errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if session == nil {
		return err
	}

	token, err := a.refresh(ctx, session)
	if err != nil {
		return err
	}

	req.Token = token
	err = a.upstream.Do(ctx, req, out)
	if errors.Is(err, domain.ErrUnauthorized) {
		// Retried once already; the refreshed token was rejected too
		a.invalidate(ctx, session.ID, "access token rejected after refresh")
		return fmt.Errorf("%w: request unauthorized after refresh", domain.ErrRefreshFailed)
	}
	return err
}

// refresh runs the single-flight refresh protocol and returns the access
// token to retry with. On failure the session is invalidated and
// domain.ErrRefreshFailed is returned.
func (a *Authority) refresh(ctx context.Context, stale *domain.Session) (string, error) {
	v, err, _ := a.refreshGroup.Do(stale.ID, func() (interface{}, error) {
		a.refreshing.Store(stale.ID, struct{}{})
		defer a.refreshing.Delete(stale.ID)

		// The outcome is shared by every waiter, so the flight must not
		// die with the first caller's request context: a page navigating
		// away cancels its request, and that cancellation must never tear
		// down a session the backend still considers valid. The upstream
		// client's own timeout still bounds the call.
		ctx := context.WithoutCancel(ctx)

		current, err := a.sessions.Get(ctx, stale.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: session gone", domain.ErrRefreshFailed)
		}

		// A refresh that settled between our 401 and this call already
		// rotated the tokens; reuse its outcome
		if current.Tokens.AccessToken != stale.Tokens.AccessToken {
			return current.Tokens.AccessToken, nil
		}

		result, err := a.upstream.Refresh(ctx, current.Tokens.RefreshToken)
		if err != nil || result.AccessToken == "" {
			a.invalidate(ctx, current.ID, "refresh rejected")
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrRefreshFailed, err)
			}
			return nil, fmt.Errorf("%w: response missing access token", domain.ErrRefreshFailed)
		}

		tokens := domain.TokenPair{
			AccessToken:  result.AccessToken,
			RefreshToken: current.Tokens.RefreshToken,
		}
		// Rotation is optional; keep the previous refresh token unless
		// the backend returned a new one
		if result.RefreshToken != "" {
			tokens.RefreshToken = result.RefreshToken
		}

		if err := a.sessions.Save(ctx, current.WithTokens(tokens)); err != nil {
			return nil, fmt.Errorf("failed to persist refreshed session: %w", err)
		}

		a.logger.Debug("session refreshed", zap.String("session_id", current.ID))
		return tokens.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (a *Authority) invalidate(ctx context.Context, sessionID, reason string) {
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		a.logger.Error("failed to clear invalidated session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return
	}
	a.logger.Info("session invalidated",
		zap.String("session_id", sessionID),
		zap.String("reason", reason),
	)
}
