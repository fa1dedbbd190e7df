package employees

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// Repository persists employee profiles.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: r.Rebind(tx)}
}

// CreateEmployee inserts an employee profile row.
func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := r.DB(ctx).Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

// FindByID loads an employee profile by its user ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.DB(ctx).First(&employee, "employee_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListEmployees returns every employee profile ordered by name.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var rows []models.Employee
	if err := r.DB(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateEmployee saves the full employee row.
func (r *Repository) UpdateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := r.DB(ctx).Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes an employee profile by its user ID.
func (r *Repository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Where("employee_id = ?", id).Delete(&models.Employee{}).Error
}

// CountEmployees returns the number of employee profiles.
func (r *Repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
