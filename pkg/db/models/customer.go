package models

import "github.com/google/uuid"

// Customer is the profile row created alongside a customer account. The
// primary key is the auth user id.
type Customer struct {
	CustomerID   uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey"`
	CustomerName string    `gorm:"column:customer_name;not null"`
	Email        string    `gorm:"column:email;not null"`
	Phone        *string   `gorm:"column:phone"`
	Address      *string   `gorm:"column:address"`
	PaymentTerms *string   `gorm:"column:payment_terms"`
}
