package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"payment-api/internal/errors"
	"payment-api/internal/repositories"
	"payment-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ERROR RESPONSE CONVENTIONS
//
// 1. SendError - client and lookup errors (4xx responses)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.TransactionNotFound)
//
// 2. SendSystemError - store and other internal failures (500 responses).
//    The cause is logged, never returned to the client.
//
// Handlers do not build echo.HTTPError values or write error JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	opts = append(opts, errors.WithPath(c.Request().URL.Path))
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, cause := errors.WrapSystemError(err, getTraceID(c))
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", errorResponse.Error.TraceID,
		"path", c.Request().URL.Path,
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendServiceError maps service and repository sentinels onto API error codes
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.ValidationInvalidDate, errors.WithMessage("startDate must not be after endDate"))
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	default:
		return SendSystemError(c, err)
	}
}

// sendSuccess wraps data in the success envelope
func sendSuccess(c echo.Context, data interface{}, meta interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta})
}
