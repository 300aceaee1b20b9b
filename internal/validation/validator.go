package validation

import (
	"reflect"
	"strings"
	"sync"

	"payment-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("merchant_id", validateMerchantID)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("sort_direction", validateSortDirection)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// validateMerchantID checks the MCH-NNNNN format
func validateMerchantID(fl validator.FieldLevel) bool {
	return models.IsValidMerchantID(fl.Field().String())
}

// validateISODate accepts an empty value or a YYYY-MM-DD calendar date
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseDate(value)
	return err == nil
}

// validateSortDirection accepts a comma separated list of ASC/DESC in any case.
// Blank entries are allowed and default to ASC.
func validateSortDirection(fl validator.FieldLevel) bool {
	for _, dir := range strings.Split(fl.Field().String(), ",") {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if !strings.EqualFold(dir, string(models.SortAsc)) && !strings.EqualFold(dir, string(models.SortDesc)) {
			return false
		}
	}
	return true
}
