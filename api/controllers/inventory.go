package controllers

import (
	"net/http"

	"github.com/supplyline-io/supplyline-backend/api/responses"
	"github.com/supplyline-io/supplyline-backend/api/validators"
	inventorysvc "github.com/supplyline-io/supplyline-backend/internal/inventory"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
)

type upsertInventoryRequest struct {
	WarehouseID    int    `json:"warehouse_id" validate:"required,gt=0"`
	ProductID      string `json:"product_id" validate:"required"`
	QuantityOnHand int    `json:"quantity_on_hand" validate:"min=0"`
}

type deleteInventoryRequest struct {
	WarehouseID int    `json:"warehouse_id" validate:"required,gt=0"`
	ProductID   string `json:"product_id" validate:"required"`
}

// ListInventory returns every stock row joined with names.
func ListInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListStock(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// UpsertInventory writes the row for (warehouse_id, product_id).
func UpsertInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload upsertInventoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpsertItem(r.Context(), inventorysvc.UpsertItemInput{
			WarehouseID:    payload.WarehouseID,
			ProductID:      payload.ProductID,
			QuantityOnHand: payload.QuantityOnHand,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// DeleteInventory removes exactly the (warehouse_id, product_id) pair.
func DeleteInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload deleteInventoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteItem(r.Context(), payload.WarehouseID, payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
