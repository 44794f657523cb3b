package consignment

import (
	"context"

	"github.com/consignly/backend/internal/domain/catalog"
	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/domain/finance"
)

// TransactionScope provides transactional access to the repositories the
// attribution engine mutates. When a function is executed within a scope, all
// repository operations are part of the same database transaction and commit
// or roll back atomically. Partial attributions and partial overrides are
// never observable.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the transaction
	ProductRepo() catalog.ProductRepository
	// BatchRepo returns the consignment batch repository scoped to the transaction
	BatchRepo() consignment.BatchRepository
	// AttributionRepo returns the attribution repository scoped to the transaction
	AttributionRepo() consignment.AttributionRepository
	// LedgerRepo returns the income statement entry repository scoped to the transaction
	LedgerRepo() finance.EntryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests and single-repository wiring.
type NoOpTransactionScope struct {
	productRepo     catalog.ProductRepository
	batchRepo       consignment.BatchRepository
	attributionRepo consignment.AttributionRepository
	ledgerRepo      finance.EntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	batchRepo consignment.BatchRepository,
	attributionRepo consignment.AttributionRepository,
	ledgerRepo finance.EntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:     productRepo,
		batchRepo:       batchRepo,
		attributionRepo: attributionRepo,
		ledgerRepo:      ledgerRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// BatchRepo returns the consignment batch repository.
func (s *NoOpTransactionScope) BatchRepo() consignment.BatchRepository {
	return s.batchRepo
}

// AttributionRepo returns the attribution repository.
func (s *NoOpTransactionScope) AttributionRepo() consignment.AttributionRepository {
	return s.attributionRepo
}

// LedgerRepo returns the income statement entry repository.
func (s *NoOpTransactionScope) LedgerRepo() finance.EntryRepository {
	return s.ledgerRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
