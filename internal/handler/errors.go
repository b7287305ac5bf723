package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// writeError maps domain errors onto the response envelope. A failed
// refresh clears the session cookie so the browser returns to login.
func writeError(c *gin.Context, codec *middleware.CookieCodec, err error) {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, domain.ErrRefreshFailed):
		if codec != nil {
			codec.Clear(c)
		}
		response.SessionExpired(c)
	case errors.Is(err, domain.ErrUnauthorized):
		response.Unauthorized(c, "Authentication required")
	case errors.Is(err, domain.ErrNoSession):
		response.Unauthorized(c, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		response.Forbidden(c, "You do not have permission to perform this action")
	case errors.Is(err, domain.ErrNetworkTimeout):
		response.GatewayTimeout(c, "Backend did not respond in time")
	case errors.Is(err, domain.ErrMissingTokens):
		response.BadGateway(c, "Backend login response was incomplete")
	case errors.Is(err, domain.ErrServer), errors.Is(err, domain.ErrUpstream):
		response.BadGateway(c, "Backend request failed")
	case errors.As(err, &statusErr):
		response.Error(c, statusErr.Status, "UPSTREAM_ERROR", statusErr.Message, "")
	default:
		response.InternalError(c, err)
	}
}

// reqCtx carries the request id into the upstream call chain
func reqCtx(c *gin.Context) context.Context {
	return service.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
}
