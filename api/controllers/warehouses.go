package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/supplyline-io/supplyline-backend/api/responses"
	"github.com/supplyline-io/supplyline-backend/api/validators"
	warehousesvc "github.com/supplyline-io/supplyline-backend/internal/warehouses"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
)

type createWarehouseRequest struct {
	WarehouseName string     `json:"warehouse_name" validate:"required"`
	Address       string     `json:"address,omitempty"`
	Capacity      int        `json:"capacity" validate:"min=0"`
	ManagerID     *uuid.UUID `json:"manager_id,omitempty"`
}

type updateWarehouseRequest struct {
	WarehouseName *string    `json:"warehouse_name,omitempty"`
	Address       *string    `json:"address,omitempty"`
	Capacity      *int       `json:"capacity,omitempty" validate:"omitempty,min=0"`
	ManagerID     *uuid.UUID `json:"manager_id,omitempty"`
}

// ListWarehouses returns every warehouse.
func ListWarehouses(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListWarehouses(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// GetWarehouse returns a single warehouse.
func GetWarehouse(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIntParam(r, "warehouseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		warehouse, err := svc.GetWarehouse(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, warehouse)
	}
}

// CreateWarehouse adds a warehouse.
func CreateWarehouse(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createWarehouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		warehouse, err := svc.CreateWarehouse(r.Context(), warehousesvc.CreateWarehouseInput{
			WarehouseName: payload.WarehouseName,
			Address:       payload.Address,
			Capacity:      payload.Capacity,
			ManagerID:     payload.ManagerID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, warehouse)
	}
}

// UpdateWarehouse applies a partial mutation to a warehouse.
func UpdateWarehouse(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIntParam(r, "warehouseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateWarehouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		warehouse, err := svc.UpdateWarehouse(r.Context(), id, warehousesvc.UpdateWarehouseInput{
			WarehouseName: payload.WarehouseName,
			Address:       payload.Address,
			Capacity:      payload.Capacity,
			ManagerID:     payload.ManagerID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, warehouse)
	}
}

// DeleteWarehouse removes a warehouse.
func DeleteWarehouse(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIntParam(r, "warehouseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteWarehouse(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
