package handlers

import (
	"payment-api/internal/dto"
	"payment-api/internal/errors"
	"payment-api/internal/models"
	"payment-api/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles merchant transaction HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListMerchantTransactions returns a page of a merchant's transactions with a summary
// @Summary List merchant transactions
// @Description Paginated transactions for a merchant, optionally bounded by date and status
// @Tags Transactions
// @Produce json
// @Param merchantId path string true "Merchant ID (MCH-NNNNN)"
// @Param page query int false "Zero-indexed page" default(0)
// @Param size query int false "Page size (max 100)" default(20)
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Transaction status"
// @Param sortBy query string false "Comma separated sort fields" default(txnDate)
// @Param sortDirection query string false "Comma separated ASC/DESC"
// @Success 200 {object} SuccessResponse{data=models.MerchantTransactionPage}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters or VALIDATION_007 - Invalid date"
// @Failure 404 {object} errors.ErrorResponse "MERCHANT_001 - Merchant not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/{merchantId}/transactions [get]
func (h *TransactionHandler) ListMerchantTransactions(c echo.Context) error {
	req := dto.MerchantTransactionsRequest{Size: services.DefaultPageSize}
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

	page := models.PageRequest{
		Page: req.Page,
		Size: req.Size,
		Sort: services.ParseTransactionSort(req.SortBy, req.SortDirection),
	}

	result, err := h.transactionService.GetMerchantTransactions(c.Request().Context(), models.TransactionQuery{
		MerchantID: req.MerchantID,
		StartDate:  start,
		EndDate:    end,
		Status:     req.Status,
		Page:       &page,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendSuccess(c, result, nil)
}

// SearchTransactions filters a merchant's transactions by field criteria
// @Summary Search merchant transactions
// @Description Applies every search filter (AND) to the merchant's transactions, then sorts and pages the matches
// @Tags Transactions
// @Accept json
// @Produce json
// @Param merchantId path string true "Merchant ID (MCH-NNNNN)"
// @Param request body dto.TransactionSearchRequest true "Search filters"
// @Param page query int false "Zero-indexed page" default(0)
// @Param size query int false "Page size (max 100)" default(20)
// @Param sortBy query string false "Comma separated sort fields" default(txnDate)
// @Param sortDirection query string false "Comma separated ASC/DESC"
// @Success 200 {object} SuccessResponse{data=models.TransactionSearchResult}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} errors.ErrorResponse "MERCHANT_001 - Merchant not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/{merchantId}/transactions/search [post]
func (h *TransactionHandler) SearchTransactions(c echo.Context) error {
	req := dto.TransactionSearchRequest{Size: services.DefaultPageSize}
	if err := bindQuery(c, &req); err != nil {
		return sendBindError(c, err)
	}
	if c.Request().ContentLength != 0 {
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return SendError(c, errors.TransactionInvalidFilter, errors.WithDetails("Request body must be {\"searchFilters\": [...]}"))
		}
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	page := models.PageRequest{
		Page: req.Page,
		Size: req.Size,
		Sort: services.ParseTransactionSort(req.SortBy, req.SortDirection),
	}

	result, err := h.transactionService.SearchTransactions(c.Request().Context(), req.MerchantID, req.SearchFilters, page)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendSuccess(c, result, map[string]int{"filtersApplied": len(req.SearchFilters)})
}

// GetTransaction returns one transaction of a merchant
// @Summary Get merchant transaction
// @Tags Transactions
// @Produce json
// @Param merchantId path string true "Merchant ID (MCH-NNNNN)"
// @Param txnId path int true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=models.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/{merchantId}/transactions/{txnId} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	var req dto.TransactionDetailRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	txn, err := h.transactionService.GetTransaction(c.Request().Context(), req.MerchantID, req.TxnID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendSuccess(c, models.NewTransactionResponse(*txn), nil)
}
