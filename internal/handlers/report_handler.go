package handlers

import (
	"payment-api/internal/dto"
	"payment-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves transaction analytics reports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetTransactionReport builds the analytics report for a date window
// @Summary Transaction report
// @Description Volume, success rate, amount trend, peak time and card type analytics across all merchants.
// @Description A missing endDate defaults to today and a missing startDate to 30 days before the end.
// @Tags Reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=models.TransactionReport}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid date or start after end"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/reports [get]
func (h *ReportHandler) GetTransactionReport(c echo.Context) error {
	var req dto.TransactionReportRequest
	if err := bindQuery(c, &req); err != nil {
		return sendBindError(c, err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return sendDateError(c, err)
	}

	report, err := h.reportService.BuildReport(c.Request().Context(), start, end)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendSuccess(c, report, nil)
}
