package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/inventory"
	"github.com/supplyline-io/supplyline-backend/internal/orders"
	"github.com/supplyline-io/supplyline-backend/internal/products"
	"github.com/supplyline-io/supplyline-backend/internal/suppliers"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	"github.com/supplyline-io/supplyline-backend/pkg/enums"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

func setupDashboardTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
  product_id TEXT PRIMARY KEY,
  product_name TEXT NOT NULL,
  description TEXT,
  category TEXT,
  unit_price NUMERIC NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS suppliers (
  supplier_id INTEGER PRIMARY KEY AUTOINCREMENT,
  supplier_name TEXT NOT NULL,
  phone TEXT,
  email TEXT,
  address TEXT,
  payment_term TEXT
);`,
		`CREATE TABLE IF NOT EXISTS warehouses (
  warehouse_id INTEGER PRIMARY KEY AUTOINCREMENT,
  warehouse_name TEXT NOT NULL,
  address TEXT,
  capacity INTEGER NOT NULL DEFAULT 0,
  manager_id TEXT
);`,
		`CREATE TABLE IF NOT EXISTS inventory (
  warehouse_id INTEGER NOT NULL,
  product_id TEXT NOT NULL,
  quantity_on_hand INTEGER NOT NULL DEFAULT 0,
  last_stock_update DATETIME,
  PRIMARY KEY (warehouse_id, product_id)
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  order_id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'Pending',
  order_date DATETIME,
  required_date DATETIME,
  shifted_date DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS employees (
  employee_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  job_title TEXT NOT NULL DEFAULT '',
  salary NUMERIC,
  join_date DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS returns (
  return_id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  reason TEXT,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
  po_id INTEGER PRIMARY KEY AUTOINCREMENT,
  supplier_id INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'Pending',
  order_date DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newDashboardService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(
		NewRepository(conn),
		products.NewRepository(conn),
		suppliers.NewRepository(conn),
		orders.NewRepository(conn),
		inventory.NewRepository(conn),
	)
	require.NoError(t, err)
	return svc
}

func seedOrder(t *testing.T, conn *gorm.DB, customerID uuid.UUID, status enums.OrderStatus) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Order{
		OrderID:       uuid.New(),
		CustomerID:    customerID,
		PaymentMethod: enums.PaymentMethodCard,
		Status:        status,
	}).Error)
}

func seedEmployee(t *testing.T, conn *gorm.DB, name, jobTitle string) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Employee{
		EmployeeID: uuid.New(),
		Name:       name,
		Email:      name + "@example.com",
		JobTitle:   jobTitle,
	}).Error)
}

func TestServiceCustomerSummary_scopedCounts(t *testing.T) {
	conn := setupDashboardTestDB(t)
	svc := newDashboardService(t, conn)

	require.NoError(t, conn.Create(&models.Product{ProductID: "SKU-1", ProductName: "Crate", UnitPrice: decimal.RequireFromString("3.00")}).Error)
	require.NoError(t, conn.Create(&models.Product{ProductID: "SKU-2", ProductName: "Drum", UnitPrice: decimal.RequireFromString("9.00")}).Error)
	require.NoError(t, conn.Create(&models.Supplier{SupplierName: "Freight Co"}).Error)

	me := uuid.New()
	other := uuid.New()
	seedOrder(t, conn, me, enums.OrderStatusPending)
	seedOrder(t, conn, me, enums.OrderStatusDelivered)
	seedOrder(t, conn, other, enums.OrderStatusPending)

	summary, err := svc.CustomerSummary(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.ProductCount)
	assert.Equal(t, int64(1), summary.SupplierCount)
	assert.Equal(t, int64(2), summary.OrderCount)

	_, err = svc.CustomerSummary(context.Background(), uuid.Nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for missing identity, got %v", err)
	}
}

func TestServiceEmployeeSummary_aggregates(t *testing.T) {
	conn := setupDashboardTestDB(t)
	svc := newDashboardService(t, conn)

	customer := uuid.New()
	seedOrder(t, conn, customer, enums.OrderStatusPending)
	seedOrder(t, conn, customer, enums.OrderStatusPending)
	seedOrder(t, conn, customer, enums.OrderStatusDelivered)

	require.NoError(t, conn.Create(&models.Product{ProductID: "SKU-3", ProductName: "Bin", UnitPrice: decimal.RequireFromString("2.00")}).Error)
	warehouse := &models.Warehouse{WarehouseName: "Main Depot"}
	require.NoError(t, conn.Create(warehouse).Error)
	require.NoError(t, conn.Create(&models.InventoryItem{WarehouseID: warehouse.WarehouseID, ProductID: "SKU-3", QuantityOnHand: 25}).Error)

	summary, err := svc.EmployeeSummary(context.Background())
	require.NoError(t, err)

	byStatus := map[string]int64{}
	for _, row := range summary.OrderStatus {
		byStatus[row.Status] = row.Count
	}
	assert.Equal(t, int64(2), byStatus["Pending"])
	assert.Equal(t, int64(1), byStatus["Delivered"])

	require.Len(t, summary.WarehouseStock, 1)
	assert.Equal(t, "Main Depot", summary.WarehouseStock[0].WarehouseName)
	assert.Equal(t, 25, summary.WarehouseStock[0].TotalOnHand)
}

func TestServiceManagerSummary_bucketsEmptyJobTitles(t *testing.T) {
	conn := setupDashboardTestDB(t)
	svc := newDashboardService(t, conn)

	seedEmployee(t, conn, "alice", "Driver")
	seedEmployee(t, conn, "bob", "Driver")
	seedEmployee(t, conn, "carol", "Supervisor")
	seedEmployee(t, conn, "dave", "")

	customer := uuid.New()
	seedOrder(t, conn, customer, enums.OrderStatusPending)

	require.NoError(t, conn.Create(&models.Return{ReturnID: uuid.New(), OrderID: uuid.New()}).Error)
	require.NoError(t, conn.Create(&models.PurchaseOrder{SupplierID: 1, Status: enums.PurchaseOrderStatusReceived}).Error)
	require.NoError(t, conn.Create(&models.PurchaseOrder{SupplierID: 1, Status: enums.PurchaseOrderStatusPending}).Error)

	summary, err := svc.ManagerSummary(context.Background())
	require.NoError(t, err)

	byTitle := map[string]int64{}
	for _, row := range summary.JobTitles {
		byTitle[row.JobTitle] = row.Count
	}
	assert.Equal(t, int64(2), byTitle["Driver"])
	assert.Equal(t, int64(1), byTitle["Supervisor"])
	assert.Equal(t, int64(1), byTitle["Unknown"])

	assert.Equal(t, int64(1), summary.OrderCount)
	assert.Equal(t, int64(1), summary.ReturnCount)

	byPOStatus := map[string]int64{}
	for _, row := range summary.PurchaseOrderStatus {
		byPOStatus[row.Status] = row.Count
	}
	assert.Equal(t, int64(1), byPOStatus["Received"])
	assert.Equal(t, int64(1), byPOStatus["Pending"])
}

func TestServiceFixedStats(t *testing.T) {
	conn := setupDashboardTestDB(t)
	svc := newDashboardService(t, conn)

	jobStats := svc.JobStatusStats()
	require.Len(t, jobStats, 3)
	assert.Equal(t, JobStatusStat{JobTitle: "Warehouse Worker", Count: 12}, jobStats[0])

	orderReturns := svc.OrderReturnStats()
	require.Len(t, orderReturns, 2)
	assert.Equal(t, OrderReturnStat{Type: "Orders", Value: 120}, orderReturns[0])
	assert.Equal(t, OrderReturnStat{Type: "Returns", Value: 15}, orderReturns[1])

	poStats := svc.POStatusStats()
	require.Len(t, poStats, 3)
	assert.Equal(t, POStatusStat{Status: "Received", Value: 80}, poStats[0])
}
