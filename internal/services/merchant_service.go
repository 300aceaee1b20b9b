package services

import (
	"context"
	"fmt"
	"log/slog"

	"payment-api/internal/models"
	"payment-api/internal/repositories"
)

// merchantService lists active merchants
type merchantService struct {
	merchantRepo repositories.MerchantRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewMerchantService creates a new merchant service
func NewMerchantService(merchantRepo repositories.MerchantRepositoryInterface, metrics MetricsRecorderInterface, logger *slog.Logger) MerchantServiceInterface {
	return &merchantService{
		merchantRepo: merchantRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListMerchants returns a page of active merchants. Size is clamped to [1, MaxPageSize]
// and a page without sort keys is ordered by merchant id.
func (s *merchantService) ListMerchants(ctx context.Context, filters models.MerchantFilters, page models.PageRequest) ([]models.Merchant, models.Pagination, error) {
	if page.Size <= 0 {
		page.Size = DefaultPageSize
	}
	if page.Size > MaxPageSize {
		page.Size = MaxPageSize
	}
	if page.Page < 0 {
		page.Page = 0
	}
	if len(page.Sort) == 0 {
		page.Sort = ParseMerchantSort("", "")
	}

	merchants, total, err := s.merchantRepo.List(ctx, filters, page)
	if err != nil {
		s.metrics.IncrementCounter(MetricMerchantListRequest, map[string]string{"status": "error"})
		return nil, models.Pagination{}, fmt.Errorf("failed to list merchants: %w", err)
	}
	if merchants == nil {
		merchants = []models.Merchant{}
	}

	s.metrics.IncrementCounter(MetricMerchantListRequest, map[string]string{"status": "success"})
	s.logger.DebugContext(ctx, "merchants listed",
		"merchant_id", filters.MerchantID,
		"merchant_name", filters.MerchantName,
		"total", total,
	)

	return merchants, models.NewPagination(page, total), nil
}
