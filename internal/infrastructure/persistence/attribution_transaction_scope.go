package persistence

import (
	"context"

	appconsignment "github.com/consignly/backend/internal/application/consignment"
	"github.com/consignly/backend/internal/domain/catalog"
	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appconsignment.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// BatchRepo returns the consignment batch repository scoped to the current transaction.
func (r *gormTransactionalRepositories) BatchRepo() consignment.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// AttributionRepo returns the attribution repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AttributionRepo() consignment.AttributionRepository {
	return NewGormAttributionRepository(r.tx)
}

// LedgerRepo returns the income statement entry repository scoped to the current transaction.
func (r *gormTransactionalRepositories) LedgerRepo() finance.EntryRepository {
	return NewGormIncomeStatementRepository(r.tx)
}

var _ appconsignment.TransactionScope = (*GormTransactionScope)(nil)
var _ appconsignment.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
