package persistence

import (
	"context"
	"errors"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/domain/shared"
	"github.com/consignly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBatchRepository implements consignment.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a consignment batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*consignment.Batch, error) {
	var model models.ConsignmentBatchModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindSellableByProduct finds all sellable batches for a product ordered by
// received date ascending. The (product_id, received_at) index serves this
// FIFO scan; creation time breaks ties between same-day deliveries.
func (r *GormBatchRepository) FindSellableByProduct(ctx context.Context, productID uuid.UUID) ([]*consignment.Batch, error) {
	var batchModels []models.ConsignmentBatchModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND status IN ?", productID,
			[]string{string(consignment.BatchStatusInStock), string(consignment.BatchStatusPartiallySold)}).
		Order("received_at ASC, created_at ASC").
		Find(&batchModels).Error; err != nil {
		return nil, err
	}

	batches := make([]*consignment.Batch, len(batchModels))
	for i := range batchModels {
		batches[i] = batchModels[i].ToDomain()
	}
	return batches, nil
}

// Save creates a consignment batch
func (r *GormBatchRepository) Save(ctx context.Context, batch *consignment.Batch) error {
	model := models.ConsignmentBatchModelFromDomain(batch)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists the quantities and status of an existing batch
func (r *GormBatchRepository) Update(ctx context.Context, batch *consignment.Batch) error {
	result := r.db.WithContext(ctx).
		Model(&models.ConsignmentBatchModel{}).
		Where("id = ?", batch.ID).
		Updates(map[string]interface{}{
			"quantity_sold":     batch.QuantitySold,
			"quantity_returned": batch.QuantityReturned,
			"status":            string(batch.Status),
			"updated_at":        batch.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ consignment.BatchRepository = (*GormBatchRepository)(nil)
