package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	appconsignment "github.com/consignly/backend/internal/application/consignment"
	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupScopeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ProductModel{},
		&models.ConsignmentBatchModel{},
		&models.ConsignmentAttributionModel{},
		&models.IncomeStatementEntryModel{},
	)
	require.NoError(t, err)

	return db
}

func seedBatch(t *testing.T, db *gorm.DB, productID uuid.UUID, initial float64, receivedAt time.Time) *consignment.Batch {
	t.Helper()
	batch, err := consignment.NewBatch(productID, uuid.New(), receivedAt, decimal.NewFromFloat(initial), decimal.NewFromFloat(1.0))
	require.NoError(t, err)
	require.NoError(t, NewGormBatchRepository(db).Save(context.Background(), batch))
	return batch
}

func TestGormTransactionScopeCommit(t *testing.T) {
	db := setupScopeTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	productID := uuid.New()
	batch := seedBatch(t, db, productID, 5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	err := scope.Execute(ctx, func(repos appconsignment.TransactionalRepositories) error {
		found, err := repos.BatchRepo().FindByID(ctx, batch.ID)
		if err != nil {
			return err
		}
		if err := found.Deduct(decimal.NewFromInt(3)); err != nil {
			return err
		}
		if err := repos.BatchRepo().Update(ctx, found); err != nil {
			return err
		}

		leg, err := consignment.NewConsignmentAttribution(
			uuid.New(), nil, productID, found.ID,
			decimal.NewFromInt(3), found.UnitCost, decimal.NewFromFloat(3.0), uuid.New(),
		)
		if err != nil {
			return err
		}
		return repos.AttributionRepo().Insert(ctx, leg)
	})
	require.NoError(t, err)

	// Committed state is visible outside the scope.
	reloaded, err := NewGormBatchRepository(db).FindByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.QuantitySold.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, consignment.BatchStatusPartiallySold, reloaded.Status)
}

func TestGormTransactionScopeRollback(t *testing.T) {
	db := setupScopeTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	productID := uuid.New()
	batch := seedBatch(t, db, productID, 5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	orderID := uuid.New()

	boom := errors.New("boom")
	err := scope.Execute(ctx, func(repos appconsignment.TransactionalRepositories) error {
		found, err := repos.BatchRepo().FindByID(ctx, batch.ID)
		if err != nil {
			return err
		}
		if err := found.Deduct(decimal.NewFromInt(3)); err != nil {
			return err
		}
		if err := repos.BatchRepo().Update(ctx, found); err != nil {
			return err
		}

		leg, err := consignment.NewConsignmentAttribution(
			orderID, nil, productID, found.ID,
			decimal.NewFromInt(3), found.UnitCost, decimal.NewFromFloat(3.0), uuid.New(),
		)
		if err != nil {
			return err
		}
		if err := repos.AttributionRepo().Insert(ctx, leg); err != nil {
			return err
		}
		// Failing after both writes must undo them together.
		return boom
	})
	assert.ErrorIs(t, err, boom)

	reloaded, err := NewGormBatchRepository(db).FindByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.QuantitySold.IsZero())
	assert.Equal(t, consignment.BatchStatusInStock, reloaded.Status)

	attributions, err := NewGormAttributionRepository(db).FindByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Empty(t, attributions)
}

func TestGormBatchRepositoryFIFOOrdering(t *testing.T) {
	db := setupScopeTestDB(t)
	ctx := context.Background()
	repo := NewGormBatchRepository(db)

	productID := uuid.New()
	// Seeded newest first; the query must return them oldest first.
	b3 := seedBatch(t, db, productID, 5, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	b1 := seedBatch(t, db, productID, 5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b2 := seedBatch(t, db, productID, 5, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	// Fully sold batches are excluded from the sellable scan.
	sold := seedBatch(t, db, productID, 2, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, sold.Deduct(decimal.NewFromInt(2)))
	require.NoError(t, repo.Update(ctx, sold))

	batches, err := repo.FindSellableByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, b1.ID, batches[0].ID)
	assert.Equal(t, b2.ID, batches[1].ID)
	assert.Equal(t, b3.ID, batches[2].ID)
}

func TestGormAttributionRepositoryOverrideQueries(t *testing.T) {
	db := setupScopeTestDB(t)
	ctx := context.Background()
	repo := NewGormAttributionRepository(db)

	orderID := uuid.New()
	productID := uuid.New()

	original, err := consignment.NewOwnedAttribution(orderID, nil, productID, decimal.NewFromInt(4), decimal.NewFromFloat(2.0), uuid.New())
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, original))

	hasOverride, err := repo.HasOverride(ctx, orderID)
	require.NoError(t, err)
	assert.False(t, hasOverride)

	override, err := consignment.NewOwnedAttribution(orderID, nil, productID, decimal.NewFromInt(4), decimal.NewFromFloat(2.0), uuid.New())
	require.NoError(t, err)
	require.NoError(t, override.MarkOverride("manual correction", original.ID))
	require.NoError(t, repo.Insert(ctx, override))

	hasOverride, err = repo.HasOverride(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, hasOverride)

	originals, err := repo.FindOriginalsByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, originals, 1)
	assert.Equal(t, original.ID, originals[0].ID)

	all, err := repo.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
