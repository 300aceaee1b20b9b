package handlers

import (
	"net/http"
	"testing"

	"payment-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Up(t *testing.T) {
	db := database.SetupTestDB(t)
	defer db.Close()

	handler := NewHealthCheckHandler(db.DB, "payment-api", "1.0.0")
	c, rec := newContext(echo.New(), http.MethodGet, "/health", "", nil)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(rec)
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "payment-api", body["service"])
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := database.SetupTestDB(t)
	require.NoError(t, db.Close())

	handler := NewHealthCheckHandler(db.DB, "payment-api", "1.0.0")
	c, rec := newContext(echo.New(), http.MethodGet, "/health", "", nil)
	c.Set(TraceIDContextKey, "trace-123")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SYSTEM_003", errorCode(rec))
	assert.Contains(t, rec.Body.String(), "trace-123")
}

func TestStatus(t *testing.T) {
	handler := NewHealthCheckHandler(nil, "payment-api", "2.3.4")
	c, rec := newContext(echo.New(), http.MethodGet, "/api/v1/status", "", nil)

	require.NoError(t, handler.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(rec)
	assert.Equal(t, "2.3.4", body["version"])
	assert.Equal(t, "running", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}
