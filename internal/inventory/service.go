package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

// UpsertItemInput identifies and values one inventory row.
type UpsertItemInput struct {
	WarehouseID    int
	ProductID      string
	QuantityOnHand int
}

// Service exposes inventory management operations.
type Service interface {
	ListStock(ctx context.Context) ([]StockRow, error)
	UpsertItem(ctx context.Context, input UpsertItemInput) (*ItemDTO, error)
	DeleteItem(ctx context.Context, warehouseID int, productID string) error
}

type productChecker interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

type warehouseChecker interface {
	FindByID(ctx context.Context, id int) (*models.Warehouse, error)
}

// service implements the inventory service.
type service struct {
	repo          *Repository
	productRepo   productChecker
	warehouseRepo warehouseChecker
}

// NewService constructs an inventory service instance.
func NewService(repo *Repository, productRepo productChecker, warehouseRepo warehouseChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if warehouseRepo == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{repo: repo, productRepo: productRepo, warehouseRepo: warehouseRepo}, nil
}

// ListStock returns every inventory row joined with names.
func (s *service) ListStock(ctx context.Context) ([]StockRow, error) {
	rows, err := s.repo.ListStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list inventory")
	}
	return rows, nil
}

// UpsertItem writes the inventory row for (warehouse_id, product_id), stamping
// last_stock_update with the current date.
func (s *service) UpsertItem(ctx context.Context, input UpsertItemInput) (*ItemDTO, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	if input.WarehouseID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "warehouse_id must be positive")
	}
	if input.QuantityOnHand < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity_on_hand cannot be negative")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if _, err := s.warehouseRepo.FindByID(ctx, input.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown warehouse")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load warehouse")
	}

	now := time.Now().UTC()
	item := &models.InventoryItem{
		WarehouseID:     input.WarehouseID,
		ProductID:       productID,
		QuantityOnHand:  input.QuantityOnHand,
		LastStockUpdate: &now,
	}
	saved, err := s.repo.UpsertItem(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert inventory")
	}
	return NewItemDTO(saved), nil
}

// DeleteItem removes exactly the (warehouse_id, product_id) pair.
func (s *service) DeleteItem(ctx context.Context, warehouseID int, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	if warehouseID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "warehouse_id must be positive")
	}

	affected, err := s.repo.DeleteItem(ctx, warehouseID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete inventory")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
	}
	return nil
}
