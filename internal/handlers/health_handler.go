package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports whether the ledger database is reachable
//
// Method: GET /health
//
// Success Response: 200 OK {status, time}
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return h.unavailable(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context, err error) error {
	slog.WarnContext(c.Request().Context(), "health check failed",
		"trace_id", getTraceID(c),
		"error", err)
	return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
}
