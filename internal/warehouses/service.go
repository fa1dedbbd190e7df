package warehouses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

// Service exposes the manager's warehouse operations.
type Service interface {
	CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*WarehouseDTO, error)
	GetWarehouse(ctx context.Context, id int) (*WarehouseDTO, error)
	ListWarehouses(ctx context.Context) ([]WarehouseDTO, error)
	UpdateWarehouse(ctx context.Context, id int, input UpdateWarehouseInput) (*WarehouseDTO, error)
	DeleteWarehouse(ctx context.Context, id int) error
}

// service implements the warehouse service.
type service struct {
	repo *Repository
}

// NewService constructs a warehouse service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{repo: repo}, nil
}

// CreateWarehouse inserts a warehouse after validating name and capacity.
func (s *service) CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*WarehouseDTO, error) {
	if strings.TrimSpace(input.WarehouseName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "warehouse_name is required")
	}
	if input.Capacity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "capacity cannot be negative")
	}

	warehouse := &models.Warehouse{
		WarehouseName: strings.TrimSpace(input.WarehouseName),
		Address:       strings.TrimSpace(input.Address),
		Capacity:      input.Capacity,
		ManagerID:     input.ManagerID,
	}
	created, err := s.repo.CreateWarehouse(ctx, warehouse)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert warehouse")
	}
	return NewWarehouseDTO(created), nil
}

// GetWarehouse loads a single warehouse.
func (s *service) GetWarehouse(ctx context.Context, id int) (*WarehouseDTO, error) {
	warehouse, err := s.loadWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewWarehouseDTO(warehouse), nil
}

// ListWarehouses returns every warehouse.
func (s *service) ListWarehouses(ctx context.Context) ([]WarehouseDTO, error) {
	rows, err := s.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list warehouses")
	}
	return NewWarehouseDTOs(rows), nil
}

// UpdateWarehouse applies the provided partial mutation.
func (s *service) UpdateWarehouse(ctx context.Context, id int, input UpdateWarehouseInput) (*WarehouseDTO, error) {
	warehouse, err := s.loadWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.WarehouseName != nil {
		name := strings.TrimSpace(*input.WarehouseName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "warehouse_name cannot be empty")
		}
		warehouse.WarehouseName = name
	}
	if input.Address != nil {
		warehouse.Address = strings.TrimSpace(*input.Address)
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "capacity cannot be negative")
		}
		warehouse.Capacity = *input.Capacity
	}
	if input.ManagerID != nil {
		warehouse.ManagerID = input.ManagerID
	}

	updated, err := s.repo.UpdateWarehouse(ctx, warehouse)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update warehouse")
	}
	return NewWarehouseDTO(updated), nil
}

// DeleteWarehouse removes a warehouse.
func (s *service) DeleteWarehouse(ctx context.Context, id int) error {
	if _, err := s.loadWarehouse(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteWarehouse(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete warehouse")
	}
	return nil
}

func (s *service) loadWarehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "warehouse_id must be positive")
	}
	warehouse, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "warehouse not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load warehouse")
	}
	return warehouse, nil
}
