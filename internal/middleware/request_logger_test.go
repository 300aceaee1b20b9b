package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_RecordsRouteMetricsAndLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	metrics := NewHTTPMetrics(prometheus.NewRegistry())

	e := echo.New()
	e.Use(RequestID(), RequestLogger(logger, metrics))
	e.GET("/api/v1/merchants/:merchantId/transactions", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, id := range []string{"MCH-00001", "MCH-00002"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/merchants/"+id+"/transactions", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	route := "/api/v1/merchants/:merchantId/transactions"
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, route, "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
	assert.Contains(t, logs.String(), `"route":"/api/v1/merchants/:merchantId/transactions"`)
	assert.Contains(t, logs.String(), `"trace_id"`)
}

func TestRequestLogger_HandlesErrorsBeforeRecording(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	metrics := NewHTTPMetrics(prometheus.NewRegistry())

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Use(RequestLogger(logger, metrics))
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("store unavailable")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/boom", "500")))
}
