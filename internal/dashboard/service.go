package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/supplyline-io/supplyline-backend/internal/inventory"
	"github.com/supplyline-io/supplyline-backend/internal/orders"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

// Service exposes the aggregate views behind the three role homepages.
type Service interface {
	CustomerSummary(ctx context.Context, customerID uuid.UUID) (*CustomerSummaryDTO, error)
	EmployeeSummary(ctx context.Context) (*EmployeeSummaryDTO, error)
	ManagerSummary(ctx context.Context) (*ManagerSummaryDTO, error)
	JobStatusStats() []JobStatusStat
	OrderReturnStats() []OrderReturnStat
	POStatusStats() []POStatusStat
}

type productCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

type supplierCounter interface {
	CountSuppliers(ctx context.Context) (int64, error)
}

type orderAggregator interface {
	CountOrders(ctx context.Context, customerID *uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context) ([]orders.StatusCount, error)
}

type stockAggregator interface {
	StockByWarehouse(ctx context.Context) ([]inventory.WarehouseStock, error)
}

// service implements the dashboard service.
type service struct {
	repo          *Repository
	productRepo   productCounter
	supplierRepo  supplierCounter
	orderRepo     orderAggregator
	inventoryRepo stockAggregator
}

// NewService constructs a dashboard service instance.
func NewService(
	repo *Repository,
	productRepo productCounter,
	supplierRepo supplierCounter,
	orderRepo orderAggregator,
	inventoryRepo stockAggregator,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if supplierRepo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	if orderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if inventoryRepo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{
		repo:          repo,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
	}, nil
}

// CustomerSummary returns count-only slices scoped to the caller's orders.
func (s *service) CustomerSummary(ctx context.Context, customerID uuid.UUID) (*CustomerSummaryDTO, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing customer identity")
	}

	products, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count products")
	}
	suppliers, err := s.supplierRepo.CountSuppliers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count suppliers")
	}
	myOrders, err := s.orderRepo.CountOrders(ctx, &customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}

	return &CustomerSummaryDTO{
		ProductCount:  products,
		SupplierCount: suppliers,
		OrderCount:    myOrders,
	}, nil
}

// EmployeeSummary returns order-status slices and per-warehouse stock totals.
func (s *service) EmployeeSummary(ctx context.Context) (*EmployeeSummaryDTO, error) {
	statuses, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders by status")
	}
	stock, err := s.inventoryRepo.StockByWarehouse(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum warehouse stock")
	}
	return &EmployeeSummaryDTO{OrderStatus: statuses, WarehouseStock: stock}, nil
}

// ManagerSummary returns job-title, order, return, and purchase-order counts.
func (s *service) ManagerSummary(ctx context.Context) (*ManagerSummaryDTO, error) {
	jobTitles, err := s.repo.CountByJobTitle(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count job titles")
	}
	orderCount, err := s.orderRepo.CountOrders(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}
	returnCount, err := s.repo.CountReturns(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count returns")
	}
	poStatus, err := s.repo.CountPurchaseOrdersByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count purchase orders")
	}
	return &ManagerSummaryDTO{
		JobTitles:           jobTitles,
		OrderCount:          orderCount,
		ReturnCount:         returnCount,
		PurchaseOrderStatus: poStatus,
	}, nil
}

// JobStatusStats returns the fixed chart rows the manager homepage plots.
func (s *service) JobStatusStats() []JobStatusStat {
	return []JobStatusStat{
		{JobTitle: "Warehouse Worker", Count: 12},
		{JobTitle: "Supervisor", Count: 5},
		{JobTitle: "Driver", Count: 8},
	}
}

// OrderReturnStats returns the fixed orders-vs-returns chart rows.
func (s *service) OrderReturnStats() []OrderReturnStat {
	return []OrderReturnStat{
		{Type: "Orders", Value: 120},
		{Type: "Returns", Value: 15},
	}
}

// POStatusStats returns the fixed purchase-order status chart rows.
func (s *service) POStatusStats() []POStatusStat {
	return []POStatusStat{
		{Status: "Received", Value: 80},
		{Status: "In Transit", Value: 25},
		{Status: "Pending", Value: 10},
	}
}
