package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
)

// HealthHandler reports process liveness and dependency readiness
type HealthHandler struct {
	upstream *upstream.Client
	redis    *redis.Client // nil when running on the in-memory store
	started  time.Time
	version  string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(up *upstream.Client, rdb *redis.Client, version string) *HealthHandler {
	return &HealthHandler{
		upstream: up,
		redis:    rdb,
		started:  time.Now(),
		version:  version,
	}
}

// Health handles GET /health - liveness only
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready handles GET /ready - checks the session store and the backend
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	} else {
		checks["redis"] = "memory"
	}

	if err := h.upstream.Healthy(c.Request.Context()); err != nil {
		checks["backend"] = "down"
		healthy = false
	} else {
		checks["backend"] = "up"
	}

	status := http.StatusOK
	state := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status": state,
		"checks": checks,
	})
}
