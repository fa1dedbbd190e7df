package models

import "time"

// InventoryItem tracks stock on hand per (warehouse, product) pair.
type InventoryItem struct {
	WarehouseID     int        `gorm:"column:warehouse_id;primaryKey"`
	ProductID       string     `gorm:"column:product_id;primaryKey"`
	QuantityOnHand  int        `gorm:"column:quantity_on_hand;not null;default:0"`
	LastStockUpdate *time.Time `gorm:"column:last_stock_update;type:date"`
}

// TableName keeps the historical singular table name.
func (InventoryItem) TableName() string {
	return "inventory"
}
