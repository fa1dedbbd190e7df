package warehouses

import (
	"github.com/google/uuid"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// WarehouseDTO represents the warehouse payload returned to clients.
type WarehouseDTO struct {
	WarehouseID   int        `json:"warehouse_id"`
	WarehouseName string     `json:"warehouse_name"`
	Address       string     `json:"address"`
	Capacity      int        `json:"capacity"`
	ManagerID     *uuid.UUID `json:"manager_id,omitempty"`
}

// CreateWarehouseInput holds the validated payload to create a warehouse.
type CreateWarehouseInput struct {
	WarehouseName string
	Address       string
	Capacity      int
	ManagerID     *uuid.UUID
}

// UpdateWarehouseInput holds optional mutation values for a warehouse.
type UpdateWarehouseInput struct {
	WarehouseName *string
	Address       *string
	Capacity      *int
	ManagerID     *uuid.UUID
}

// NewWarehouseDTO builds a DTO from the persisted model.
func NewWarehouseDTO(warehouse *models.Warehouse) *WarehouseDTO {
	return &WarehouseDTO{
		WarehouseID:   warehouse.WarehouseID,
		WarehouseName: warehouse.WarehouseName,
		Address:       warehouse.Address,
		Capacity:      warehouse.Capacity,
		ManagerID:     warehouse.ManagerID,
	}
}

// NewWarehouseDTOs maps a slice of models into DTOs preserving order.
func NewWarehouseDTOs(rows []models.Warehouse) []WarehouseDTO {
	out := make([]WarehouseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewWarehouseDTO(&rows[i]))
	}
	return out
}
