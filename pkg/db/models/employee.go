package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is the profile row created alongside an employee account. The
// primary key is the auth user id.
type Employee struct {
	EmployeeID uuid.UUID        `gorm:"column:employee_id;type:uuid;primaryKey"`
	Name       string           `gorm:"column:name;not null"`
	Email      string           `gorm:"column:email;not null"`
	Phone      string           `gorm:"column:phone;not null;default:''"`
	JobTitle   string           `gorm:"column:job_title;not null;default:''"`
	Salary     *decimal.Decimal `gorm:"column:salary;type:numeric(12,2)"`
	JoinDate   *time.Time       `gorm:"column:join_date;type:date"`
}
