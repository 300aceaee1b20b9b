package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
	ValidationInvalidSort   ErrorCode = "VALIDATION_008"
)

// Merchant error codes (MERCHANT_*)
const (
	MerchantNotFound  ErrorCode = "MERCHANT_001"
	MerchantInvalidID ErrorCode = "MERCHANT_002"
	MerchantInactive  ErrorCode = "MERCHANT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidID     ErrorCode = "TRANSACTION_002"
	TransactionInvalidFilter ErrorCode = "TRANSACTION_003"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPeriod ErrorCode = "REPORT_001"
	ReportUnavailable   ErrorCode = "REPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format. Please use ISO format (YYYY-MM-DD)",
	ValidationInvalidSort:   "Invalid sort parameters",

	// Merchant errors
	MerchantNotFound:  "Merchant not found",
	MerchantInvalidID: "Merchant ID must be in format MCH-XXXXX",
	MerchantInactive:  "Merchant is inactive",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidID:     "Invalid transaction ID",
	TransactionInvalidFilter: "Invalid search filter",

	// Report errors
	ReportInvalidPeriod: "Report start date must not be after end date",
	ReportUnavailable:   "Report could not be generated",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
