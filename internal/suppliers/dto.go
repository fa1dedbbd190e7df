package suppliers

import (
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// SupplierDTO represents the supplier payload returned to clients.
type SupplierDTO struct {
	SupplierID   int     `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	PaymentTerm  *string `json:"payment_term,omitempty"`
}

// CreateSupplierInput holds the validated payload to create a supplier.
type CreateSupplierInput struct {
	SupplierName string
	Phone        *string
	Email        *string
	Address      *string
	PaymentTerm  *string
}

// UpdateSupplierInput holds optional mutation values for a supplier.
type UpdateSupplierInput struct {
	SupplierName *string
	Phone        *string
	Email        *string
	Address      *string
	PaymentTerm  *string
}

// NewSupplierDTO builds a DTO from the persisted model.
func NewSupplierDTO(supplier *models.Supplier) *SupplierDTO {
	return &SupplierDTO{
		SupplierID:   supplier.SupplierID,
		SupplierName: supplier.SupplierName,
		Phone:        supplier.Phone,
		Email:        supplier.Email,
		Address:      supplier.Address,
		PaymentTerm:  supplier.PaymentTerm,
	}
}

// NewSupplierDTOs maps a slice of models into DTOs preserving order.
func NewSupplierDTOs(rows []models.Supplier) []SupplierDTO {
	out := make([]SupplierDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewSupplierDTO(&rows[i]))
	}
	return out
}
