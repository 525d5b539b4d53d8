package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shandysiswandi/storefront/docs"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
	"github.com/swaggo/swag/v2"
)

const (
	statusUp   = "up"
	statusDown = "down"
)

type rootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (a *App) root(*router.Request) (any, error) {
	return rootResponse{
		Name:    a.config.GetString("app.name"),
		Version: a.config.GetString("instrument.service_version"),
	}, nil
}

// HealthResponse reports each backing service; any "down" turns the status into 503.
type HealthResponse struct {
	Database string `json:"database" example:"up"`
	Redis    string `json:"redis" example:"up"`
}

func (h HealthResponse) StatusCode() int {
	if h.Database != statusUp || h.Redis != statusUp {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

type pinger func(ctx context.Context) error

func pingStatus(ctx context.Context, name string, ping pinger) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", "service", name, "error", err)
		return statusDown
	}
	return statusUp
}

func checkHealth(ctx context.Context, db, cache pinger) HealthResponse {
	return HealthResponse{
		Database: pingStatus(ctx, "database", db),
		Redis:    pingStatus(ctx, "redis", cache),
	}
}

// health reports whether the database and redis answer a ping.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} router.successResponse{data=HealthResponse} "Healthy"
// @Failure 503 {object} router.successResponse{data=HealthResponse} "A dependency is down"
// @Router /health [get]
func (a *App) health(r *router.Request) (any, error) {
	return checkHealth(r.Context(),
		a.dbConn.Ping,
		func(ctx context.Context) error { return a.cacheConn.Ping(ctx).Err() },
	), nil
}

func (a *App) swaggerDoc(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}
