package inventory

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// StockRow is one inventory row joined with its product and warehouse names.
type StockRow struct {
	WarehouseID     int        `json:"warehouse_id"`
	WarehouseName   string     `json:"warehouse_name"`
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name"`
	QuantityOnHand  int        `json:"quantity_on_hand"`
	LastStockUpdate *time.Time `json:"last_stock_update,omitempty"`
}

// WarehouseStock aggregates on-hand quantity per warehouse.
type WarehouseStock struct {
	WarehouseID   int    `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	TotalOnHand   int    `json:"total_on_hand"`
}

// Repository persists inventory rows keyed by (warehouse_id, product_id).
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: r.Rebind(tx)}
}

// ListStock returns every inventory row with product and warehouse names attached.
func (r *Repository) ListStock(ctx context.Context) ([]StockRow, error) {
	var rows []StockRow
	err := r.DB(ctx).
		Table("inventory").
		Select(`inventory.warehouse_id,
			warehouses.warehouse_name,
			inventory.product_id,
			products.product_name,
			inventory.quantity_on_hand,
			inventory.last_stock_update`).
		Joins("JOIN warehouses ON warehouses.warehouse_id = inventory.warehouse_id").
		Joins("JOIN products ON products.product_id = inventory.product_id").
		Order("inventory.warehouse_id ASC, inventory.product_id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindItem loads the inventory row for the exact composite key.
func (r *Repository) FindItem(ctx context.Context, warehouseID int, productID string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.DB(ctx).
		First(&item, "warehouse_id = ? AND product_id = ?", warehouseID, productID).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertItem inserts or updates the row identified by (warehouse_id, product_id).
func (r *Repository) UpsertItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	err := r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity_on_hand", "last_stock_update"}),
		}).
		Create(item).
		Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes exactly the (warehouse_id, product_id) pair.
func (r *Repository) DeleteItem(ctx context.Context, warehouseID int, productID string) (int64, error) {
	res := r.DB(ctx).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		Delete(&models.InventoryItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// StockByWarehouse sums quantity_on_hand per warehouse.
func (r *Repository) StockByWarehouse(ctx context.Context) ([]WarehouseStock, error) {
	var rows []WarehouseStock
	err := r.DB(ctx).
		Table("inventory").
		Select(`inventory.warehouse_id,
			warehouses.warehouse_name,
			SUM(inventory.quantity_on_hand) AS total_on_hand`).
		Joins("JOIN warehouses ON warehouses.warehouse_id = inventory.warehouse_id").
		Group("inventory.warehouse_id, warehouses.warehouse_name").
		Order("inventory.warehouse_id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
