package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/supplyline-io/supplyline-backend/api/middleware"
	"github.com/supplyline-io/supplyline-backend/api/responses"
	"github.com/supplyline-io/supplyline-backend/api/validators"
	ordersvc "github.com/supplyline-io/supplyline-backend/internal/orders"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
)

type placeOrderRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Quantity      int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	RequiredDate  *string         `json:"required_date,omitempty"`
}

type updateOrderRequest struct {
	Status       *string `json:"status,omitempty"`
	RequiredDate *string `json:"required_date,omitempty"`
	ShiftedDate  *string `json:"shifted_date,omitempty"`
}

// CustomerPlaceOrder places an order for the authenticated customer.
func CustomerPlaceOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requiredDate, err := parseOptionalDate(payload.RequiredDate, "required_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), middleware.UserIDFromContext(r.Context()), ordersvc.PlaceOrderInput{
			ProductID:     payload.ProductID,
			Quantity:      payload.Quantity,
			UnitPrice:     payload.UnitPrice,
			PaymentMethod: payload.PaymentMethod,
			RequiredDate:  requiredDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// CustomerListOrders returns the authenticated customer's order history.
func CustomerListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListCustomerOrders(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// EmployeeListOrders returns every order for the fulfilment view.
func EmployeeListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListAllOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// EmployeeGetOrder returns one order with its lines.
func EmployeeGetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.ParseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// EmployeeUpdateOrder mutates status and fulfilment dates.
func EmployeeUpdateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.ParseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requiredDate, err := parseOptionalDate(payload.RequiredDate, "required_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shiftedDate, err := parseOptionalDate(payload.ShiftedDate, "shifted_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateOrder(r.Context(), orderID, ordersvc.UpdateOrderInput{
			Status:       payload.Status,
			RequiredDate: requiredDate,
			ShiftedDate:  shiftedDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
