package purchases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
)

func setupPurchasesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  sku TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT,
  category_id TEXT,
  price_cents INTEGER NOT NULL,
  compare_at_price_cents INTEGER,
  tags TEXT NOT NULL DEFAULT '{}',
  images TEXT NOT NULL DEFAULT '{}',
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	purchases := `
CREATE TABLE IF NOT EXISTS customer_purchases (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price_cents INTEGER NOT NULL,
  total_price_cents INTEGER NOT NULL,
  discount_applied INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'completed',
  created_at DATETIME
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(purchases).Error)
	return db
}

func newProduct(t *testing.T, db *gorm.DB, title string, priceCents int64) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:         uuid.New(),
		SKU:        "SKU-" + uuid.NewString()[:8],
		Title:      title,
		PriceCents: priceCents,
		IsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func newPurchase(t *testing.T, db *gorm.DB, customerID uuid.UUID, product *models.Product, qty int, created time.Time) *models.CustomerPurchase {
	t.Helper()

	purchase := &models.CustomerPurchase{
		ID:              uuid.New(),
		CustomerID:      customerID,
		ProductID:       product.ID,
		Quantity:        qty,
		UnitPriceCents:  product.PriceCents,
		TotalPriceCents: product.PriceCents * int64(qty),
		Status:          enums.PurchaseStatusCompleted,
		CreatedAt:       created,
	}
	require.NoError(t, db.Create(purchase).Error)
	return purchase
}

func TestRepositoryListByCustomer_pagination(t *testing.T) {
	db := setupPurchasesTestDB(t)
	repo := NewRepository(db)

	customerID := uuid.New()
	keyboard := newProduct(t, db, "Mechanical Keyboard", 12900)
	headset := newProduct(t, db, "Wireless Headset", 8900)

	now := time.Now().UTC()
	newPurchase(t, db, customerID, keyboard, 1, now.Add(-time.Hour))
	newPurchase(t, db, customerID, headset, 2, now)
	newPurchase(t, db, uuid.New(), keyboard, 1, now)

	list, err := repo.ListByCustomer(context.Background(), customerID, pagination.Params{Limit: 1})
	require.NoError(t, err)
	require.Len(t, list.Purchases, 1)
	require.NotNil(t, list.NextCursor)
	assert.Equal(t, headset.ID, list.Purchases[0].ProductID)
	require.NotNil(t, list.Purchases[0].Product)
	assert.Equal(t, "Wireless Headset", list.Purchases[0].Product.Title)

	second, err := repo.ListByCustomer(context.Background(), customerID, pagination.Params{Limit: 1, Cursor: *list.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Purchases, 1)
	assert.Equal(t, keyboard.ID, second.Purchases[0].ProductID)
	assert.Nil(t, second.NextCursor)
}

func TestRepositoryFindProduct(t *testing.T) {
	db := setupPurchasesTestDB(t)
	repo := NewRepository(db)

	product := newProduct(t, db, "USB-C Dock", 15900)

	found, err := repo.FindProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.SKU, found.SKU)

	_, err = repo.FindProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
