package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInsufficientStock is used when owned plus consignment stock cannot cover a sale
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
	// ErrCodeInsufficientBatchStock is used when a specific batch lacks capacity
	ErrCodeInsufficientBatchStock = "ERR_INSUFFICIENT_BATCH_STOCK"
	// ErrCodeQuantityMismatch is used when an override total drifts from the original
	ErrCodeQuantityMismatch = "ERR_QUANTITY_MISMATCH"
	// ErrCodeAlreadyOverridden is used when an order's attribution was already corrected
	ErrCodeAlreadyOverridden = "ERR_ALREADY_OVERRIDDEN"
	// ErrCodeNoAttributions is used when an override targets an order with no attribution
	ErrCodeNoAttributions = "ERR_NO_ATTRIBUTIONS"
	// ErrCodeReasonRequired is used when an override is submitted without a reason
	ErrCodeReasonRequired = "ERR_REASON_REQUIRED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidQuantity is used for non-positive quantities
	ErrCodeInvalidQuantity = "ERR_INVALID_QUANTITY"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInsufficientStock:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientBatchStock: http.StatusUnprocessableEntity,
	ErrCodeQuantityMismatch:       http.StatusUnprocessableEntity,
	ErrCodeAlreadyOverridden:      http.StatusConflict,
	ErrCodeNoAttributions:         http.StatusNotFound,
	ErrCodeReasonRequired:         http.StatusBadRequest,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidQuantity: http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the API's standardized codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                ErrCodeNotFound,
	"INVALID_INPUT":            ErrCodeInvalidInput,
	"INVALID_QUANTITY":         ErrCodeInvalidQuantity,
	"CONCURRENCY_CONFLICT":     ErrCodeConcurrencyConflict,
	"NOT_AUTHENTICATED":        ErrCodeUnauthorized,
	"INSUFFICIENT_STOCK":       ErrCodeInsufficientStock,
	"INSUFFICIENT_BATCH_STOCK": ErrCodeInsufficientBatchStock,
	"QUANTITY_MISMATCH":        ErrCodeQuantityMismatch,
	"ALREADY_OVERRIDDEN":       ErrCodeAlreadyOverridden,
	"NO_ATTRIBUTIONS":          ErrCodeNoAttributions,
	"REASON_REQUIRED":          ErrCodeReasonRequired,
	"INTERNAL_ERROR":           ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format.
// If the code is already in the new format or unknown, returns it as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
