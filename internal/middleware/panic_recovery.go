package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"payment-api/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. It runs inside the
// request logger so the recovered request is still logged and counted.
// http.ErrAbortHandler is re-raised for net/http to handle.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.ErrorContext(c.Request().Context(), "panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"route", c.Path(),
					"merchant_id", c.Param("merchantId"),
					"stack_trace", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID, errors.WithPath(c.Request().URL.Path))
				if jsonErr := c.JSON(resp.GetHTTPStatus(), resp); jsonErr != nil {
					err = jsonErr
				}
			}()

			return next(c)
		}
	}
}
