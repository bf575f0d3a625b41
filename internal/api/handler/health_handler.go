package handler

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe. Checks
// MongoDB, Redis, and the analytics fallback directory before declaring the
// service ready. A dead database alone does not fail readiness as long as the
// fallback directory is writable, since analytics keeps recording through it.
type ReadinessHandler struct {
	mongo       *mongo.Database
	redis       *redis.Client
	fallbackDir string
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client, fallbackDir string) *ReadinessHandler {
	return &ReadinessHandler{
		mongo:       db,
		redis:       rdb,
		fallbackDir: fallbackDir,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	storageUp := true
	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		storageUp = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	if err := h.checkFallbackDir(); err != nil {
		deps["analytics_fallback"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		if !storageUp {
			healthy = false
		}
	} else {
		deps["analytics_fallback"] = dependencyStatus{Status: "ok"}
	}

	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

// checkFallbackDir verifies the fallback directory can accept writes by
// creating and removing a probe file.
func (h *ReadinessHandler) checkFallbackDir() error {
	if err := os.MkdirAll(h.fallbackDir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(h.fallbackDir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
