package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/products"
	"github.com/supplyline-io/supplyline-backend/internal/warehouses"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	productsTable := `
CREATE TABLE IF NOT EXISTS products (
  product_id TEXT PRIMARY KEY,
  product_name TEXT NOT NULL,
  description TEXT,
  category TEXT,
  unit_price NUMERIC NOT NULL
);`
	warehousesTable := `
CREATE TABLE IF NOT EXISTS warehouses (
  warehouse_id INTEGER PRIMARY KEY AUTOINCREMENT,
  warehouse_name TEXT NOT NULL,
  address TEXT,
  capacity INTEGER NOT NULL DEFAULT 0,
  manager_id TEXT
);`
	inventoryTable := `
CREATE TABLE IF NOT EXISTS inventory (
  warehouse_id INTEGER NOT NULL,
  product_id TEXT NOT NULL,
  quantity_on_hand INTEGER NOT NULL DEFAULT 0,
  last_stock_update DATETIME,
  PRIMARY KEY (warehouse_id, product_id)
);`
	require.NoError(t, conn.Exec(productsTable).Error)
	require.NoError(t, conn.Exec(warehousesTable).Error)
	require.NoError(t, conn.Exec(inventoryTable).Error)
	return conn
}

func newInventoryService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(NewRepository(conn), products.NewRepository(conn), warehouses.NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func seedStockProduct(t *testing.T, conn *gorm.DB, id, name string) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Product{
		ProductID:   id,
		ProductName: name,
		UnitPrice:   decimal.RequireFromString("1.00"),
	}).Error)
}

func seedWarehouse(t *testing.T, conn *gorm.DB, name string) int {
	t.Helper()
	warehouse := &models.Warehouse{WarehouseName: name, Capacity: 1000}
	require.NoError(t, conn.Create(warehouse).Error)
	return warehouse.WarehouseID
}

func TestServiceUpsertItem_insertThenUpdate(t *testing.T) {
	conn := setupInventoryTestDB(t)
	svc := newInventoryService(t, conn)
	seedStockProduct(t, conn, "SKU-1", "Ratchet Strap")
	warehouseID := seedWarehouse(t, conn, "North Depot")

	item, err := svc.UpsertItem(context.Background(), UpsertItemInput{
		WarehouseID:    warehouseID,
		ProductID:      "SKU-1",
		QuantityOnHand: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, item.QuantityOnHand)
	require.NotNil(t, item.LastStockUpdate)

	// Writing the same pair again overwrites instead of duplicating.
	item, err = svc.UpsertItem(context.Background(), UpsertItemInput{
		WarehouseID:    warehouseID,
		ProductID:      "SKU-1",
		QuantityOnHand: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, item.QuantityOnHand)

	var count int64
	require.NoError(t, conn.Model(&models.InventoryItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestServiceUpsertItem_rejectsUnknownReferences(t *testing.T) {
	conn := setupInventoryTestDB(t)
	svc := newInventoryService(t, conn)
	seedStockProduct(t, conn, "SKU-2", "Pallet Jack")
	warehouseID := seedWarehouse(t, conn, "South Depot")

	_, err := svc.UpsertItem(context.Background(), UpsertItemInput{
		WarehouseID:    warehouseID,
		ProductID:      "SKU-MISSING",
		QuantityOnHand: 5,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown product, got %v", err)
	}

	_, err = svc.UpsertItem(context.Background(), UpsertItemInput{
		WarehouseID:    warehouseID + 100,
		ProductID:      "SKU-2",
		QuantityOnHand: 5,
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown warehouse, got %v", err)
	}

	_, err = svc.UpsertItem(context.Background(), UpsertItemInput{
		WarehouseID:    warehouseID,
		ProductID:      "SKU-2",
		QuantityOnHand: -1,
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative quantity, got %v", err)
	}
}

func TestServiceDeleteItem_removesOnlyTargetPair(t *testing.T) {
	conn := setupInventoryTestDB(t)
	svc := newInventoryService(t, conn)
	seedStockProduct(t, conn, "SKU-3", "Hand Truck")
	seedStockProduct(t, conn, "SKU-4", "Dock Plate")
	warehouseID := seedWarehouse(t, conn, "East Depot")

	for _, sku := range []string{"SKU-3", "SKU-4"} {
		_, err := svc.UpsertItem(context.Background(), UpsertItemInput{
			WarehouseID:    warehouseID,
			ProductID:      sku,
			QuantityOnHand: 10,
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteItem(context.Background(), warehouseID, "SKU-3"))

	var remaining []models.InventoryItem
	require.NoError(t, conn.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "SKU-4", remaining[0].ProductID)

	err := svc.DeleteItem(context.Background(), warehouseID, "SKU-3")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestRepositoryListStock_joinsNames(t *testing.T) {
	conn := setupInventoryTestDB(t)
	repo := NewRepository(conn)
	seedStockProduct(t, conn, "SKU-5", "Conveyor Belt")
	warehouseID := seedWarehouse(t, conn, "West Depot")

	require.NoError(t, conn.Create(&models.InventoryItem{
		WarehouseID:    warehouseID,
		ProductID:      "SKU-5",
		QuantityOnHand: 7,
	}).Error)

	rows, err := repo.ListStock(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "West Depot", rows[0].WarehouseName)
	assert.Equal(t, "Conveyor Belt", rows[0].ProductName)
	assert.Equal(t, 7, rows[0].QuantityOnHand)
}

func TestRepositoryStockByWarehouse_sumsQuantities(t *testing.T) {
	conn := setupInventoryTestDB(t)
	repo := NewRepository(conn)
	seedStockProduct(t, conn, "SKU-6", "Forklift Battery")
	seedStockProduct(t, conn, "SKU-7", "Charging Dock")
	warehouseID := seedWarehouse(t, conn, "Central Depot")

	require.NoError(t, conn.Create(&models.InventoryItem{WarehouseID: warehouseID, ProductID: "SKU-6", QuantityOnHand: 12}).Error)
	require.NoError(t, conn.Create(&models.InventoryItem{WarehouseID: warehouseID, ProductID: "SKU-7", QuantityOnHand: 8}).Error)

	totals, err := repo.StockByWarehouse(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "Central Depot", totals[0].WarehouseName)
	assert.Equal(t, 20, totals[0].TotalOnHand)
}
