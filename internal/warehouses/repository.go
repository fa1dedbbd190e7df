package warehouses

import (
	"context"

	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// Repository persists warehouse records.
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

// CreateWarehouse inserts a warehouse row.
func (r *Repository) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if err := r.DB(ctx).Create(warehouse).Error; err != nil {
		return nil, err
	}
	return warehouse, nil
}

// FindByID loads a warehouse by primary key.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	if err := r.DB(ctx).First(&warehouse, "warehouse_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// ListWarehouses returns every warehouse ordered by primary key.
func (r *Repository) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	var rows []models.Warehouse
	if err := r.DB(ctx).Order("warehouse_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateWarehouse saves the full warehouse row.
func (r *Repository) UpdateWarehouse(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if err := r.DB(ctx).Save(warehouse).Error; err != nil {
		return nil, err
	}
	return warehouse, nil
}

// DeleteWarehouse removes a warehouse by primary key.
func (r *Repository) DeleteWarehouse(ctx context.Context, id int) error {
	return r.DB(ctx).Where("warehouse_id = ?", id).Delete(&models.Warehouse{}).Error
}

// CountWarehouses returns the number of warehouses.
func (r *Repository) CountWarehouses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Warehouse{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
