package models

import "github.com/google/uuid"

// Warehouse is a storage location managed by an employee.
type Warehouse struct {
	WarehouseID   int        `gorm:"column:warehouse_id;primaryKey;autoIncrement"`
	WarehouseName string     `gorm:"column:warehouse_name;not null"`
	Address       string     `gorm:"column:address;not null;default:''"`
	Capacity      int        `gorm:"column:capacity;not null;default:0"`
	ManagerID     *uuid.UUID `gorm:"column:manager_id;type:uuid"`
}
