package warehouses

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

func setupWarehousesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	table := `
CREATE TABLE IF NOT EXISTS warehouses (
  warehouse_id INTEGER PRIMARY KEY AUTOINCREMENT,
  warehouse_name TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  capacity INTEGER NOT NULL DEFAULT 0,
  manager_id TEXT
);`
	require.NoError(t, conn.Exec(table).Error)
	return conn
}

func newWarehouseService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestServiceCreateWarehouse_roundTrip(t *testing.T) {
	conn := setupWarehousesTestDB(t)
	svc := newWarehouseService(t, conn)

	managerID := uuid.New()
	created, err := svc.CreateWarehouse(context.Background(), CreateWarehouseInput{
		WarehouseName: " North Depot ",
		Address:       " 12 Dock Road ",
		Capacity:      500,
		ManagerID:     &managerID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.WarehouseID)
	assert.Equal(t, "North Depot", created.WarehouseName)
	assert.Equal(t, "12 Dock Road", created.Address)
	assert.Equal(t, 500, created.Capacity)
	require.NotNil(t, created.ManagerID)
	assert.Equal(t, managerID, *created.ManagerID)

	loaded, err := svc.GetWarehouse(context.Background(), created.WarehouseID)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestServiceCreateWarehouse_rejectsBadInput(t *testing.T) {
	conn := setupWarehousesTestDB(t)
	svc := newWarehouseService(t, conn)

	cases := []struct {
		name  string
		input CreateWarehouseInput
	}{
		{"missing name", CreateWarehouseInput{Capacity: 10}},
		{"negative capacity", CreateWarehouseInput{WarehouseName: "X", Capacity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateWarehouse(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceUpdateWarehouse_partialMutation(t *testing.T) {
	conn := setupWarehousesTestDB(t)
	svc := newWarehouseService(t, conn)

	created, err := svc.CreateWarehouse(context.Background(), CreateWarehouseInput{
		WarehouseName: "South Depot",
		Address:       "1 Quay Street",
		Capacity:      200,
	})
	require.NoError(t, err)

	newAddress := " 9 Harbour Lane "
	updated, err := svc.UpdateWarehouse(context.Background(), created.WarehouseID, UpdateWarehouseInput{
		Address: &newAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, "9 Harbour Lane", updated.Address)
	assert.Equal(t, "South Depot", updated.WarehouseName, "untouched fields must survive")
	assert.Equal(t, 200, updated.Capacity)

	empty := " "
	_, err = svc.UpdateWarehouse(context.Background(), created.WarehouseID, UpdateWarehouseInput{WarehouseName: &empty})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestServiceDeleteWarehouse(t *testing.T) {
	conn := setupWarehousesTestDB(t)
	svc := newWarehouseService(t, conn)

	created, err := svc.CreateWarehouse(context.Background(), CreateWarehouseInput{
		WarehouseName: "Overflow",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWarehouse(context.Background(), created.WarehouseID))

	err = svc.DeleteWarehouse(context.Background(), created.WarehouseID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	rows, err := svc.ListWarehouses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
