package models

// Supplier is an upstream vendor the managers maintain by hand.
type Supplier struct {
	SupplierID   int     `gorm:"column:supplier_id;primaryKey;autoIncrement"`
	SupplierName string  `gorm:"column:supplier_name;not null"`
	Phone        *string `gorm:"column:phone"`
	Email        *string `gorm:"column:email"`
	Address      *string `gorm:"column:address"`
	PaymentTerm  *string `gorm:"column:payment_term"`
}
