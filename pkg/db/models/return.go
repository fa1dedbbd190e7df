package models

import (
	"time"

	"github.com/google/uuid"
)

// Return records a customer sending an order back. The manager dashboard
// only counts these rows.
type Return struct {
	ReturnID  uuid.UUID `gorm:"column:return_id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null"`
	Reason    *string   `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
