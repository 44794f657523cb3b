package persistence

import (
	"context"

	"github.com/consignly/backend/internal/domain/finance"
	"github.com/consignly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIncomeStatementRepository implements finance.EntryRepository using GORM.
// Entries are append-only.
type GormIncomeStatementRepository struct {
	db *gorm.DB
}

// NewGormIncomeStatementRepository creates a new GormIncomeStatementRepository
func NewGormIncomeStatementRepository(db *gorm.DB) *GormIncomeStatementRepository {
	return &GormIncomeStatementRepository{db: db}
}

// Insert appends a new income statement entry
func (r *GormIncomeStatementRepository) Insert(ctx context.Context, entry *finance.Entry) error {
	model := models.IncomeStatementEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByOrder returns all entries posted for an order in creation order
func (r *GormIncomeStatementRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*finance.Entry, error) {
	var entryModels []models.IncomeStatementEntryModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// FindByAttribution returns the entries posted for one attribution leg
func (r *GormIncomeStatementRepository) FindByAttribution(ctx context.Context, attributionID uuid.UUID) ([]*finance.Entry, error) {
	var entryModels []models.IncomeStatementEntryModel
	if err := r.db.WithContext(ctx).
		Where("attribution_id = ?", attributionID).
		Order("created_at ASC, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

func toDomainEntries(entryModels []models.IncomeStatementEntryModel) []*finance.Entry {
	entries := make([]*finance.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries
}

var _ finance.EntryRepository = (*GormIncomeStatementRepository)(nil)
