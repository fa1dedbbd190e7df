package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/pkg/db"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	"github.com/supplyline-io/supplyline-backend/pkg/enums"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

// PlaceOrderInput holds the validated payload to place a customer order.
type PlaceOrderInput struct {
	ProductID     string
	Quantity      int
	UnitPrice     decimal.Decimal
	PaymentMethod string
	RequiredDate  *time.Time
}

// UpdateOrderInput holds optional mutation values applied by employees.
type UpdateOrderInput struct {
	Status       *string
	RequiredDate *time.Time
	ShiftedDate  *time.Time
}

// Service exposes order placement and fulfilment operations.
type Service interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*OrderDTO, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]OrderHistoryDTO, error)
	ListAllOrders(ctx context.Context) ([]OrderDTO, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, input UpdateOrderInput) (*OrderDTO, error)
}

type productReader interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// service implements the order service.
type service struct {
	repo        *Repository
	dbClient    *db.Client
	productRepo productReader
}

// NewService constructs an order service instance.
func NewService(repo *Repository, dbClient *db.Client, productRepo productReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, dbClient: dbClient, productRepo: productRepo}, nil
}

// PlaceOrder validates the payload and writes the order and its detail line in
// one transaction. A failure on either insert leaves no orphan order behind.
func (s *service) PlaceOrder(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*OrderDTO, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing customer identity")
	}

	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if !input.UnitPrice.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit_price must be positive")
	}
	method := enums.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	var orderID uuid.UUID
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		order := &models.Order{
			CustomerID:    customerID,
			PaymentMethod: method,
			Status:        enums.OrderStatusPending,
			RequiredDate:  input.RequiredDate,
		}
		created, err := txRepo.CreateOrder(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
		}
		orderID = created.OrderID

		detail := &models.OrderDetail{
			OrderID:   created.OrderID,
			ProductID: productID,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
		}
		if _, err := txRepo.CreateOrderDetail(ctx, detail); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order detail")
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "place order")
	}

	placed, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load placed order")
	}
	return NewOrderDTO(placed), nil
}

// ListCustomerOrders returns the flat read-back rows for one customer.
func (s *service) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]OrderHistoryDTO, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing customer identity")
	}
	rows, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list customer orders")
	}
	return NewOrderHistoryDTOs(rows), nil
}

// ListAllOrders returns every order with lines, for the fulfilment view.
func (s *service) ListAllOrders(ctx context.Context) ([]OrderDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}
	return NewOrderDTOs(rows), nil
}

// GetOrder loads a single order with lines.
func (s *service) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return NewOrderDTO(order), nil
}

// UpdateOrder applies fulfilment mutations: status, required and shifted dates.
func (s *service) UpdateOrder(ctx context.Context, orderID uuid.UUID, input UpdateOrderInput) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		status := enums.OrderStatus(*input.Status)
		if !status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
		}
		order.Status = status
	}
	if input.RequiredDate != nil {
		order.RequiredDate = input.RequiredDate
	}
	if input.ShiftedDate != nil {
		order.ShiftedDate = input.ShiftedDate
	}

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update order")
	}
	return NewOrderDTO(updated), nil
}

func (s *service) loadOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_id is required")
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}
	return order, nil
}
