package repositories

import (
	"context"
	"fmt"
	"strings"

	"payment-api/internal/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// merchantRepository implements MerchantRepositoryInterface on gorm
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) MerchantRepositoryInterface {
	return &merchantRepository{
		db: db,
	}
}

// List returns a page of active merchants. An id filter wins over a name filter;
// the name filter is a case-insensitive literal substring match.
func (r *merchantRepository) List(ctx context.Context, filters models.MerchantFilters, page models.PageRequest) ([]models.Merchant, int64, error) {
	var merchants []models.Merchant
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Merchant{}).Where("is_active = ?", true)

	switch {
	case filters.MerchantID != "":
		query = query.Where("merchant_id = ?", filters.MerchantID)
	case filters.MerchantName != "":
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filters.MerchantName)) + "%"
		query = query.Where(`LOWER(merchant_name) LIKE ? ESCAPE '\'`, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count merchants: %w", err)
	}

	if err := query.
		Order(page.OrderClause("merchant_id")).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&merchants).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list merchants: %w", err)
	}

	return merchants, total, nil
}
