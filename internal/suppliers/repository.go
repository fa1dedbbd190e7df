package suppliers

import (
	"context"

	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// Repository persists supplier records.
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

// CreateSupplier inserts a supplier row.
func (r *Repository) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.DB(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// FindByID loads a supplier by primary key.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.DB(ctx).First(&supplier, "supplier_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ListSuppliers returns every supplier ordered by name.
func (r *Repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	if err := r.DB(ctx).Order("supplier_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateSupplier saves the full supplier row.
func (r *Repository) UpdateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.DB(ctx).Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier by primary key.
func (r *Repository) DeleteSupplier(ctx context.Context, id int) error {
	return r.DB(ctx).Where("supplier_id = ?", id).Delete(&models.Supplier{}).Error
}

// CountSuppliers returns the number of suppliers.
func (r *Repository) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Supplier{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
