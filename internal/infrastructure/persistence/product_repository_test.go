package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/consignly/backend/internal/domain/catalog"
	"github.com/consignly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func productRows(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "sku", "name", "selling_price",
		"stock_quantity", "consignment_stock_quantity", "status",
	}).AddRow(id, now, now, "SKU-1", "Widget", decimal.NewFromFloat(3.0),
		decimal.NewFromInt(10), decimal.NewFromInt(4), "active")
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(productRows(productID))

		product, err := repo.FindByID(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "SKU-1", product.Sku)
		assert.True(t, product.StockQuantity.Equal(decimal.NewFromInt(10)))
		assert.True(t, product.OwnedAvailable().Equal(decimal.NewFromInt(6)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "products"`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), productID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock, mockDB := newMockProductRepository(t)
	defer mockDB.Close()

	productID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 .* FOR UPDATE`).
		WithArgs(productID, 1).
		WillReturnRows(productRows(productID))

	product, err := repo.FindByIDForUpdate(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_UpdateStock(t *testing.T) {
	t.Run("updates only the stock counters", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		product := catalog.NewProduct("SKU-1", "Widget", decimal.NewFromFloat(3.0))
		product.StockQuantity = decimal.NewFromInt(6)
		product.ConsignmentStockQuantity = decimal.NewFromInt(2)

		mock.ExpectExec(`UPDATE "products" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStock(context.Background(), product)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no row matched", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		product := catalog.NewProduct("SKU-1", "Widget", decimal.NewFromFloat(3.0))

		mock.ExpectExec(`UPDATE "products" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStock(context.Background(), product)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
