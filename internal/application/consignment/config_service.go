package consignment

import (
	"context"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ConfigService manages the attribution configuration.
type ConfigService struct {
	store  consignment.ConfigStore
	logger *zap.Logger
}

// NewConfigService creates a new ConfigService.
func NewConfigService(store consignment.ConfigStore, logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{store: store, logger: logger}
}

// GetPriority returns the configured allocation priority, falling back to the
// default when the store has no value.
func (s *ConfigService) GetPriority(ctx context.Context) (consignment.AllocationPriority, error) {
	priority, err := s.store.GetPriority(ctx)
	if err != nil {
		return "", err
	}
	if !priority.IsValid() {
		return consignment.DefaultPriority, nil
	}
	return priority, nil
}

// SetPriority updates the allocation priority. The change applies to
// attributions created after the write; it never rewrites history.
func (s *ConfigService) SetPriority(ctx context.Context, priority consignment.AllocationPriority) error {
	if !priority.IsValid() {
		return shared.ErrInvalidInput
	}
	if err := s.store.SetPriority(ctx, priority); err != nil {
		return err
	}
	s.logger.Info("allocation priority updated", zap.String("priority", priority.String()))
	return nil
}
