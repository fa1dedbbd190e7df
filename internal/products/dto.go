package products

import (
	"github.com/shopspring/decimal"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// ProductDTO represents the catalog product payload returned to clients.
type ProductDTO struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	UnitPrice   string  `json:"unit_price"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	ProductID   string
	ProductName string
	Description *string
	Category    *string
	UnitPrice   decimal.Decimal
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	ProductName *string
	Description *string
	Category    *string
	UnitPrice   *decimal.Decimal
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ProductID:   product.ProductID,
		ProductName: product.ProductName,
		Description: product.Description,
		Category:    product.Category,
		UnitPrice:   product.UnitPrice.StringFixed(2),
	}
}

// NewProductDTOs maps a slice of models into DTOs preserving order.
func NewProductDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductDTO(&rows[i]))
	}
	return out
}
