package models

import (
	"time"

	"github.com/supplyline-io/supplyline-backend/pkg/enums"
)

// PurchaseOrder is an inbound replenishment order placed with a supplier.
// The manager dashboard groups these by status.
type PurchaseOrder struct {
	POID       int                       `gorm:"column:po_id;primaryKey;autoIncrement"`
	SupplierID int                       `gorm:"column:supplier_id;not null"`
	Status     enums.PurchaseOrderStatus `gorm:"column:status;type:text;not null;default:'Pending'"`
	OrderDate  time.Time                 `gorm:"column:order_date;autoCreateTime"`
}
