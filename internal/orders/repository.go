package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// CustomerOrderRow is one read-back row for the customer order history:
// order_details joined with orders and products.
type CustomerOrderRow struct {
	OrderID     uuid.UUID       `json:"order_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"-"`
	OrderDate   time.Time       `json:"order_date"`
	Status      string          `json:"status"`
}

// StatusCount aggregates orders per status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Repository persists orders and their detail lines.
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

// CreateOrder inserts the parent order row, assigning the ID client-side so
// detail lines can reference it inside the same transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.OrderID == uuid.Nil {
		order.OrderID = uuid.New()
	}
	if err := r.DB(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrderDetail inserts one detail line for an existing order.
func (r *Repository) CreateOrderDetail(ctx context.Context, detail *models.OrderDetail) (*models.OrderDetail, error) {
	if err := r.DB(ctx).Create(detail).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

// FindByID loads an order with its detail lines.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Details").
		Preload("Details.Product").
		First(&order, "order_id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByCustomer returns the flat read-back rows for one customer, newest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]CustomerOrderRow, error) {
	var rows []CustomerOrderRow
	err := r.DB(ctx).
		Table("order_details").
		Select(`orders.order_id,
			products.product_name,
			order_details.quantity,
			order_details.unit_price,
			orders.order_date,
			orders.status`).
		Joins("JOIN orders ON orders.order_id = order_details.order_id").
		Joins("JOIN products ON products.product_id = order_details.product_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.order_date DESC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every order with its detail lines, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Order, error) {
	var rows []models.Order
	err := r.DB(ctx).
		Preload("Details").
		Preload("Details.Product").
		Order("order_date DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateOrder saves the full order row.
func (r *Repository) UpdateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB(ctx).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// CountOrders returns the total number of orders, optionally scoped to a customer.
func (r *Repository) CountOrders(ctx context.Context, customerID *uuid.UUID) (int64, error) {
	query := r.DB(ctx).Model(&models.Order{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus groups orders per status.
func (r *Repository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
