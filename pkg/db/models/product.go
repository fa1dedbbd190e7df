package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. ProductID is an operator-assigned code rather
// than a generated key.
type Product struct {
	ProductID   string          `gorm:"column:product_id;primaryKey"`
	ProductName string          `gorm:"column:product_name;not null"`
	Description *string         `gorm:"column:description"`
	Category    *string         `gorm:"column:category"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
}
