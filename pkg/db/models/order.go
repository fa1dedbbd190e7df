package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/supplyline-io/supplyline-backend/pkg/enums"
)

// Order is the parent row of a customer purchase. Line items live in
// order_details and cascade with the order.
type Order struct {
	OrderID       uuid.UUID           `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID    uuid.UUID           `gorm:"column:customer_id;type:uuid;not null"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;type:text;not null"`
	Status        enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'Pending'"`
	OrderDate     time.Time           `gorm:"column:order_date;autoCreateTime"`
	RequiredDate  *time.Time          `gorm:"column:required_date;type:date"`
	ShiftedDate   *time.Time          `gorm:"column:shifted_date;type:date"`
	Details       []OrderDetail       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
