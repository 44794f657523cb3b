package configstore

import (
	"context"
	"sync"

	"github.com/consignly/backend/internal/domain/consignment"
)

// InMemoryConfigStore implements consignment.ConfigStore with a mutex-guarded
// value. Suitable for tests and single-instance deployments without Redis.
type InMemoryConfigStore struct {
	mu       sync.RWMutex
	priority consignment.AllocationPriority
}

// NewInMemoryConfigStore creates a new in-memory config store
func NewInMemoryConfigStore() *InMemoryConfigStore {
	return &InMemoryConfigStore{}
}

// GetPriority returns the configured allocation priority
func (s *InMemoryConfigStore) GetPriority(_ context.Context) (consignment.AllocationPriority, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.priority.IsValid() {
		return consignment.DefaultPriority, nil
	}
	return s.priority, nil
}

// SetPriority stores the allocation priority
func (s *InMemoryConfigStore) SetPriority(_ context.Context, priority consignment.AllocationPriority) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.priority = priority
	return nil
}

var _ consignment.ConfigStore = (*InMemoryConfigStore)(nil)
