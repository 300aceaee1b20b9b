package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"payment-api/internal/errors"
	"payment-api/internal/models"
	"payment-api/internal/services"

	"github.com/labstack/echo/v4"
)

// bindQuery binds path and query parameters into req. Echo's default Bind skips the
// query string on POST, so every handler binds explicitly.
func bindQuery(c echo.Context, req interface{}) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, req); err != nil {
		return err
	}
	return binder.BindQueryParams(c, req)
}

// sendBindError reports a parameter that could not be converted to its field type
func sendBindError(c echo.Context, err error) error {
	details := "Invalid request parameters"
	if httpErr, ok := err.(*echo.HTTPError); ok && httpErr.Code == http.StatusBadRequest {
		if msg, ok := httpErr.Message.(string); ok {
			details = msg
		}
	}
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(details))
}

// parseOptionalDate parses a YYYY-MM-DD value; blank yields nil
func parseOptionalDate(value string) (*models.Date, error) {
	if value == "" {
		return nil, nil
	}
	date, err := models.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// parseDateRange parses optional start and end dates and rejects a start after the end
func parseDateRange(startValue, endValue string) (start, end *models.Date, err error) {
	if start, err = parseOptionalDate(startValue); err != nil {
		return nil, nil, fmt.Errorf("startDate %q is not a YYYY-MM-DD date", startValue)
	}
	if end, err = parseOptionalDate(endValue); err != nil {
		return nil, nil, fmt.Errorf("endDate %q is not a YYYY-MM-DD date", endValue)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, services.ErrInvalidDateRange
	}
	return start, end, nil
}

// sendDateError reports a malformed or inverted date range
func sendDateError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrInvalidDateRange) {
		return sendServiceError(c, err)
	}
	return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
}
