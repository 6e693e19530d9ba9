package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves the liveness endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root is a plain marker so load balancers and humans can tell the API
// is up without hitting an authenticated route.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "API is running",
	})
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessHandler reports whether the backing stores are reachable.
type ReadinessHandler struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{db: db, rdb: rdb}
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"mongo": "ok", "redis": "ok"}
	healthy := true

	if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		checks["mongo"] = err.Error()
		healthy = false
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	status, state := http.StatusOK, "ready"
	if !healthy {
		status, state = http.StatusServiceUnavailable, "degraded"
	}
	return c.JSON(status, map[string]any{
		"status": state,
		"checks": checks,
	})
}
