package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetail is a line item referencing its parent order and a product.
// The line total (quantity x unit price) is computed, never stored.
type OrderDetail struct {
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;primaryKey"`
	ProductID string          `gorm:"column:product_id;primaryKey"`
	Quantity  int             `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ProductID"`
}
