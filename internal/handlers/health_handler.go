package handlers

import (
	"net/http"
	"time"

	"payment-api/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health and status endpoints
type HealthCheckHandler struct {
	db      *gorm.DB
	service string
	version string
}

// NewHealthCheckHandler creates a new health check handler reporting the given service name and version
func NewHealthCheckHandler(db *gorm.DB, service, version string) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, service: service, version: version}
}

// HealthCheck reports database connectivity
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,service=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "UP",
		"service": h.service,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Status reports the service name and version
// @Summary Service status
// @Tags Health
// @Produce json
// @Success 200 {object} object{service=string,version=string,status=string,timestamp=string}
// @Router /api/v1/status [get]
func (h *HealthCheckHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service":   h.service,
		"version":   h.version,
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
