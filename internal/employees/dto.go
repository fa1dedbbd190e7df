package employees

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// EmployeeDTO represents the employee payload returned to clients.
type EmployeeDTO struct {
	EmployeeID uuid.UUID  `json:"employee_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	JobTitle   string     `json:"job_title"`
	Salary     *string    `json:"salary,omitempty"`
	JoinDate   *time.Time `json:"join_date,omitempty"`
}

// CreateEmployeeInput holds the validated payload to create an employee profile.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Phone    string
	JobTitle string
	Salary   *decimal.Decimal
	JoinDate *time.Time
}

// UpdateEmployeeInput holds optional mutation values for an employee profile.
type UpdateEmployeeInput struct {
	Name     *string
	Email    *string
	Phone    *string
	JobTitle *string
	Salary   *decimal.Decimal
	JoinDate *time.Time
}

// NewEmployeeDTO builds a DTO from the persisted model.
func NewEmployeeDTO(employee *models.Employee) *EmployeeDTO {
	dto := &EmployeeDTO{
		EmployeeID: employee.EmployeeID,
		Name:       employee.Name,
		Email:      employee.Email,
		Phone:      employee.Phone,
		JobTitle:   employee.JobTitle,
		JoinDate:   employee.JoinDate,
	}
	if employee.Salary != nil {
		salary := employee.Salary.StringFixed(2)
		dto.Salary = &salary
	}
	return dto
}

// NewEmployeeDTOs maps a slice of models into DTOs preserving order.
func NewEmployeeDTOs(rows []models.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewEmployeeDTO(&rows[i]))
	}
	return out
}
