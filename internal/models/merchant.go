package models

import (
	"regexp"
	"time"
)

// Business types a merchant can register under
const (
	BusinessTypeRetail      = "retail"
	BusinessTypeRestaurant  = "restaurant"
	BusinessTypeEcommerce   = "ecommerce"
	BusinessTypeServices    = "services"
	BusinessTypeHospitality = "hospitality"
	BusinessTypeHealthcare  = "healthcare"
	BusinessTypeOther       = "other"
)

var merchantIDPattern = regexp.MustCompile(`^MCH-\d{5}$`)

// Merchant is a business that accepts card payments
type Merchant struct {
	MerchantID         string    `gorm:"column:merchant_id;type:varchar(20);primaryKey" json:"merchantId"`
	MerchantName       string    `gorm:"column:merchant_name;type:varchar(255);not null" json:"merchantName"`
	BusinessName       string    `gorm:"column:business_name;type:varchar(255);not null" json:"businessName"`
	Email              string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Phone              string    `gorm:"column:phone;type:varchar(50);not null" json:"phone"`
	BusinessType       string    `gorm:"column:business_type;type:varchar(50);not null" json:"businessType"`
	TaxID              *string   `gorm:"column:tax_id;type:varchar(50)" json:"taxId"`
	RegistrationNumber *string   `gorm:"column:registration_number;type:varchar(50)" json:"registrationNumber"`
	IsActive           bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt          time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName returns the table name for Merchant
func (Merchant) TableName() string {
	return "merchants"
}

// IsValidMerchantID checks the MCH-NNNNN format
func IsValidMerchantID(merchantID string) bool {
	return merchantIDPattern.MatchString(merchantID)
}

// IsValidBusinessType checks if the business type is one of the registered values
func IsValidBusinessType(businessType string) bool {
	switch businessType {
	case BusinessTypeRetail, BusinessTypeRestaurant, BusinessTypeEcommerce, BusinessTypeServices,
		BusinessTypeHospitality, BusinessTypeHealthcare, BusinessTypeOther:
		return true
	default:
		return false
	}
}

// MerchantFilters contains filter criteria for merchant listing.
// MerchantID takes precedence over MerchantName when both are set.
type MerchantFilters struct {
	MerchantID   string
	MerchantName string
}
