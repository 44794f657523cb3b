package consignment

import "context"

// ConfigStore provides access to the singleton attribution configuration held
// in a generic key-value configuration store. Implementations must return
// DefaultPriority when no value has been set.
type ConfigStore interface {
	// GetPriority returns the configured allocation priority
	GetPriority(ctx context.Context) (AllocationPriority, error)

	// SetPriority updates the configured allocation priority
	SetPriority(ctx context.Context, priority AllocationPriority) error
}
