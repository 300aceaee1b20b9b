package handlers

import (
	"payment-api/internal/dto"
	"payment-api/internal/models"
	"payment-api/internal/services"

	"github.com/labstack/echo/v4"
)

// MerchantHandler handles merchant listing requests
type MerchantHandler struct {
	merchantService services.MerchantServiceInterface
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantService services.MerchantServiceInterface) *MerchantHandler {
	return &MerchantHandler{merchantService: merchantService}
}

// ListMerchants returns active merchants
// @Summary List merchants
// @Description Active merchants filtered by id or name, sorted by one or more fields
// @Tags Merchants
// @Produce json
// @Param merchantId query string false "Exact merchant ID"
// @Param merchantName query string false "Case-insensitive name fragment"
// @Param page query int false "Zero-indexed page" default(0)
// @Param size query int false "Page size (max 100)" default(20)
// @Param sortBy query string false "Comma separated sort fields" default(merchantId)
// @Param sortDirection query string false "Comma separated ASC/DESC"
// @Success 200 {object} SuccessResponse{data=[]models.Merchant,meta=models.Pagination}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants [get]
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	req := dto.ListMerchantsRequest{Size: services.DefaultPageSize}
	if err := bindQuery(c, &req); err != nil {
		return sendBindError(c, err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	filters := models.MerchantFilters{
		MerchantID:   req.MerchantID,
		MerchantName: req.MerchantName,
	}
	page := models.PageRequest{
		Page: req.Page,
		Size: req.Size,
		Sort: services.ParseMerchantSort(req.SortBy, req.SortDirection),
	}

	merchants, pagination, err := h.merchantService.ListMerchants(c.Request().Context(), filters, page)
	if err != nil {
		return SendSystemError(c, err)
	}

	return sendSuccess(c, merchants, pagination)
}
