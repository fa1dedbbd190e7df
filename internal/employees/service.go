package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

// Service exposes the manager's employee roster operations.
type Service interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*EmployeeDTO, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeDTO, error)
	ListEmployees(ctx context.Context) ([]EmployeeDTO, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

// service implements the employee service.
type service struct {
	repo *Repository
}

// NewService constructs an employee service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("employee repository required")
	}
	return &service{repo: repo}, nil
}

// CreateEmployee adds a roster-only profile. Accounts able to log in are
// created through registration instead.
func (s *service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*EmployeeDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if input.Salary != nil && input.Salary.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "salary cannot be negative")
	}

	employee := &models.Employee{
		EmployeeID: uuid.New(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:      strings.TrimSpace(input.Phone),
		JobTitle:   strings.TrimSpace(input.JobTitle),
		Salary:     input.Salary,
		JoinDate:   input.JoinDate,
	}
	created, err := s.repo.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert employee")
	}
	return NewEmployeeDTO(created), nil
}

// GetEmployee loads a single roster entry.
func (s *service) GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeDTO, error) {
	employee, err := s.loadEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewEmployeeDTO(employee), nil
}

// ListEmployees returns the full roster.
func (s *service) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	rows, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list employees")
	}
	return NewEmployeeDTOs(rows), nil
}

// UpdateEmployee applies the provided partial mutation.
func (s *service) UpdateEmployee(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*EmployeeDTO, error) {
	employee, err := s.loadEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		employee.Name = name
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "email cannot be empty")
		}
		employee.Email = email
	}
	if input.Phone != nil {
		employee.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.JobTitle != nil {
		employee.JobTitle = strings.TrimSpace(*input.JobTitle)
	}
	if input.Salary != nil {
		if input.Salary.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "salary cannot be negative")
		}
		employee.Salary = input.Salary
	}
	if input.JoinDate != nil {
		employee.JoinDate = input.JoinDate
	}

	updated, err := s.repo.UpdateEmployee(ctx, employee)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update employee")
	}
	return NewEmployeeDTO(updated), nil
}

// DeleteEmployee removes a roster entry.
func (s *service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadEmployee(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete employee")
	}
	return nil
}

func (s *service) loadEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "employee_id is required")
	}
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load employee")
	}
	return employee, nil
}
