package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// OrderLineDTO is one detail line of an order.
type OrderLineDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

// OrderDTO represents an order returned to clients.
type OrderDTO struct {
	OrderID       uuid.UUID      `json:"order_id"`
	CustomerID    uuid.UUID      `json:"customer_id"`
	PaymentMethod string         `json:"payment_method"`
	Status        string         `json:"status"`
	OrderDate     time.Time      `json:"order_date"`
	RequiredDate  *time.Time     `json:"required_date,omitempty"`
	ShiftedDate   *time.Time     `json:"shifted_date,omitempty"`
	Lines         []OrderLineDTO `json:"lines"`
}

// OrderHistoryDTO is one flat read-back row for the customer history view.
type OrderHistoryDTO struct {
	OrderID     uuid.UUID `json:"order_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	TotalPrice  string    `json:"total_price"`
	OrderDate   time.Time `json:"order_date"`
	Status      string    `json:"status"`
}

// NewOrderDTO builds a DTO from the persisted order and its preloaded lines.
func NewOrderDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		OrderID:       order.OrderID,
		CustomerID:    order.CustomerID,
		PaymentMethod: string(order.PaymentMethod),
		Status:        string(order.Status),
		OrderDate:     order.OrderDate,
		RequiredDate:  order.RequiredDate,
		ShiftedDate:   order.ShiftedDate,
		Lines:         make([]OrderLineDTO, 0, len(order.Details)),
	}
	for i := range order.Details {
		detail := &order.Details[i]
		line := OrderLineDTO{
			ProductID:  detail.ProductID,
			Quantity:   detail.Quantity,
			UnitPrice:  detail.UnitPrice.StringFixed(2),
			TotalPrice: lineTotal(detail.Quantity, detail.UnitPrice).StringFixed(2),
		}
		if detail.Product != nil {
			line.ProductName = detail.Product.ProductName
		}
		dto.Lines = append(dto.Lines, line)
	}
	return dto
}

// NewOrderDTOs maps a slice of orders preserving order.
func NewOrderDTOs(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewOrderDTO(&rows[i]))
	}
	return out
}

// NewOrderHistoryDTOs maps the flat join rows, computing each line total.
func NewOrderHistoryDTOs(rows []CustomerOrderRow) []OrderHistoryDTO {
	out := make([]OrderHistoryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, OrderHistoryDTO{
			OrderID:     row.OrderID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			TotalPrice:  lineTotal(row.Quantity, row.UnitPrice).StringFixed(2),
			OrderDate:   row.OrderDate,
			Status:      row.Status,
		})
	}
	return out
}

func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
