package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrNotAuthenticated    = NewDomainError("NOT_AUTHENTICATED", "Authentication required")
	ErrInvalidQuantity     = NewDomainError("INVALID_QUANTITY", "Quantity must be positive")

	// Attribution-specific errors. InsufficientStock blocks a sale before any
	// mutation; the other three block an override.
	ErrInsufficientStock      = NewDomainError("INSUFFICIENT_STOCK", "Requested quantity exceeds owned and consignment stock")
	ErrInsufficientBatchStock = NewDomainError("INSUFFICIENT_BATCH_STOCK", "Consignment batch lacks capacity for the requested quantity")
	ErrQuantityMismatch       = NewDomainError("QUANTITY_MISMATCH", "Override quantity total does not match the original attribution")
	ErrReasonRequired         = NewDomainError("REASON_REQUIRED", "Override reason is required")
	ErrAlreadyOverridden      = NewDomainError("ALREADY_OVERRIDDEN", "Order attribution has already been overridden")
	ErrNoAttributions         = NewDomainError("NO_ATTRIBUTIONS", "No attributions found for order")
)
