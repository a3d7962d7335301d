package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/prostech/outbound-api/internal/database"
	"github.com/prostech/outbound-api/internal/deliveryview"
	"go.uber.org/zap"
)

// ViewHealthChecker reports the delivery view connection state
type ViewHealthChecker interface {
	HealthCheck(ctx context.Context) *deliveryview.HealthStatus
}

// HealthHandler serves the liveness and readiness probes
type HealthHandler struct {
	view     ViewHealthChecker
	database func(ctx context.Context) error
	logger   *zap.Logger
}

// NewHealthHandler creates a new HealthHandler. database may be nil when the
// notification log is disabled.
func NewHealthHandler(view ViewHealthChecker, database func(ctx context.Context) error, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{view: view, database: database, logger: logger}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// View godoc
// @Summary Delivery view health
// @Description Reports the delivery view connection with pool statistics.
// @Tags Health
// @Produce json
// @Success 200 {object} deliveryview.HealthStatus
// @Failure 503 {object} deliveryview.HealthStatus
// @Router /health/view [get]
func (h *HealthHandler) View(w http.ResponseWriter, r *http.Request) {
	status := h.view.HealthCheck(r.Context())
	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}

// Ready godoc
// @Summary Readiness probe
// @Description Checks every dependency. The delivery view is required; a disabled notification log database is reported as "disabled" and does not fail readiness.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]interface{})
	allHealthy := true

	view := h.view.HealthCheck(r.Context())
	checks["delivery_view"] = map[string]interface{}{"status": view.Status, "error": view.Error}
	if view.Status != "healthy" {
		allHealthy = false
	}

	dbCheck := map[string]interface{}{"status": "disabled"}
	if h.database != nil {
		switch err := h.database(r.Context()); {
		case errors.Is(err, database.ErrDisabled):
		case err != nil:
			h.logger.Error("Database health check failed", zap.Error(err))
			dbCheck = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
			allHealthy = false
		default:
			dbCheck = map[string]interface{}{"status": "healthy"}
		}
	}
	checks["database"] = dbCheck

	if allHealthy {
		respondJSON(w, http.StatusOK, map[string]interface{}{"status": "healthy", "checks": checks})
		return
	}
	respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"status": "unhealthy", "checks": checks})
}
