package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/handler"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/repository"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/config"
)

// Container holds all dependencies for the admin console
type Container struct {
	// Infrastructure
	Redis    *redis.Client // nil when the in-memory store is in use
	Upstream *upstream.Client

	// Repositories
	SessionRepo repository.SessionRepository

	// Services
	Authority *service.Authority
	Console   *service.Console

	// Middleware
	Cookies *middleware.CookieCodec

	// Handlers
	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	BookingHandler   *handler.BookingHandler
	UserHandler      *handler.UserHandler
	OwnerHandler     *handler.OwnerHandler
	PitchHandler     *handler.PitchHandler
	SettingsHandler  *handler.SettingsHandler
	EmergencyHandler *handler.EmergencyHandler
	HealthHandler    *handler.HealthHandler
}

// NewContainer creates a new dependency injection container. When Redis
// is unreachable the session store falls back to memory, which only
// suits single-instance deployments.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Container {
	c := &Container{}

	c.Upstream = upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, logger)

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory session store",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Error(err),
		)
		_ = rdb.Close()
		c.SessionRepo = repository.NewMemorySessionRepository()
	} else {
		c.Redis = rdb
		c.SessionRepo = repository.NewRedisSessionRepository(rdb)
	}

	c.Authority = service.NewAuthority(c.Upstream, c.SessionRepo, &service.AuthorityConfig{
		SessionTTL: cfg.Session.TTL,
	}, logger)
	c.Console = service.NewConsole(c.Authority)

	c.Cookies = middleware.NewCookieCodec(middleware.CookieConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
		Name:   cfg.Session.CookieName,
		Domain: cfg.Session.CookieDomain,
		Secure: cfg.Session.CookieSecure,
	})

	c.AuthHandler = handler.NewAuthHandler(c.Authority, c.Upstream, c.Cookies, logger)
	c.DashboardHandler = handler.NewDashboardHandler(c.Console, c.Cookies)
	c.BookingHandler = handler.NewBookingHandler(c.Console, c.Cookies)
	c.UserHandler = handler.NewUserHandler(c.Console, c.Cookies)
	c.OwnerHandler = handler.NewOwnerHandler(c.Console, c.Cookies)
	c.PitchHandler = handler.NewPitchHandler(c.Console, c.Cookies)
	c.SettingsHandler = handler.NewSettingsHandler(c.Console, c.Cookies)
	c.EmergencyHandler = handler.NewEmergencyHandler(c.Console, c.Cookies, logger)
	c.HealthHandler = handler.NewHealthHandler(c.Upstream, c.Redis, cfg.App.Version)

	return c
}

// Close releases container resources
func (c *Container) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
