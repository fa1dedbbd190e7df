package inventory

import (
	"time"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// ItemDTO represents one inventory row returned to clients.
type ItemDTO struct {
	WarehouseID     int        `json:"warehouse_id"`
	ProductID       string     `json:"product_id"`
	QuantityOnHand  int        `json:"quantity_on_hand"`
	LastStockUpdate *time.Time `json:"last_stock_update,omitempty"`
}

// NewItemDTO builds a DTO from the persisted model.
func NewItemDTO(item *models.InventoryItem) *ItemDTO {
	return &ItemDTO{
		WarehouseID:     item.WarehouseID,
		ProductID:       item.ProductID,
		QuantityOnHand:  item.QuantityOnHand,
		LastStockUpdate: item.LastStockUpdate,
	}
}
