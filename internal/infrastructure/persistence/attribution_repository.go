package persistence

import (
	"context"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAttributionRepository implements consignment.AttributionRepository using
// GORM. Attribution rows are append-only; the repository exposes no update or
// delete path.
type GormAttributionRepository struct {
	db *gorm.DB
}

// NewGormAttributionRepository creates a new GormAttributionRepository
func NewGormAttributionRepository(db *gorm.DB) *GormAttributionRepository {
	return &GormAttributionRepository{db: db}
}

// Insert appends a new attribution row
func (r *GormAttributionRepository) Insert(ctx context.Context, attribution *consignment.Attribution) error {
	model := models.ConsignmentAttributionModelFromDomain(attribution)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByOrder returns all attributions for an order in creation order,
// originals and overrides alike.
func (r *GormAttributionRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*consignment.Attribution, error) {
	var attributionModels []models.ConsignmentAttributionModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&attributionModels).Error; err != nil {
		return nil, err
	}
	return toDomainAttributions(attributionModels), nil
}

// FindOriginalsByOrder returns the non-override attributions for an order
func (r *GormAttributionRepository) FindOriginalsByOrder(ctx context.Context, orderID uuid.UUID) ([]*consignment.Attribution, error) {
	var attributionModels []models.ConsignmentAttributionModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND is_override = ?", orderID, false).
		Order("created_at ASC, id ASC").
		Find(&attributionModels).Error; err != nil {
		return nil, err
	}
	return toDomainAttributions(attributionModels), nil
}

// HasOverride reports whether the order's attribution has already been overridden
func (r *GormAttributionRepository) HasOverride(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ConsignmentAttributionModel{}).
		Where("order_id = ? AND is_override = ?", orderID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainAttributions(attributionModels []models.ConsignmentAttributionModel) []*consignment.Attribution {
	attributions := make([]*consignment.Attribution, len(attributionModels))
	for i := range attributionModels {
		attributions[i] = attributionModels[i].ToDomain()
	}
	return attributions
}

var _ consignment.AttributionRepository = (*GormAttributionRepository)(nil)
