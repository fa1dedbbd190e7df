package customers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// Repository persists customer profiles.
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

// CreateCustomer inserts a customer profile row.
func (r *Repository) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// FindByID loads a customer profile by its user ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB(ctx).First(&customer, "customer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomers returns every customer profile ordered by name.
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	if err := r.DB(ctx).Order("customer_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateCustomer saves the full customer row.
func (r *Repository) UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// CountCustomers returns the number of customer profiles.
func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
