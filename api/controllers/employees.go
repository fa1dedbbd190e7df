package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/supplyline-io/supplyline-backend/api/responses"
	"github.com/supplyline-io/supplyline-backend/api/validators"
	employeesvc "github.com/supplyline-io/supplyline-backend/internal/employees"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
)

type createEmployeeRequest struct {
	Name     string           `json:"name" validate:"required"`
	Email    string           `json:"email" validate:"required,email"`
	Phone    string           `json:"phone,omitempty"`
	JobTitle string           `json:"job_title,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	JoinDate *string          `json:"join_date,omitempty"`
}

type updateEmployeeRequest struct {
	Name     *string          `json:"name,omitempty"`
	Email    *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string          `json:"phone,omitempty"`
	JobTitle *string          `json:"job_title,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	JoinDate *string          `json:"join_date,omitempty"`
}

// ListEmployees returns the full roster.
func ListEmployees(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListEmployees(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// GetEmployee returns a single roster entry.
func GetEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "employeeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		employee, err := svc.GetEmployee(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, employee)
	}
}

// CreateEmployee adds a roster entry.
func CreateEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createEmployeeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		joinDate, err := parseOptionalDate(payload.JoinDate, "join_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		employee, err := svc.CreateEmployee(r.Context(), employeesvc.CreateEmployeeInput{
			Name:     payload.Name,
			Email:    payload.Email,
			Phone:    payload.Phone,
			JobTitle: payload.JobTitle,
			Salary:   payload.Salary,
			JoinDate: joinDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, employee)
	}
}

// UpdateEmployee applies a partial mutation to a roster entry.
func UpdateEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "employeeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateEmployeeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		joinDate, err := parseOptionalDate(payload.JoinDate, "join_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		employee, err := svc.UpdateEmployee(r.Context(), id, employeesvc.UpdateEmployeeInput{
			Name:     payload.Name,
			Email:    payload.Email,
			Phone:    payload.Phone,
			JobTitle: payload.JobTitle,
			Salary:   payload.Salary,
			JoinDate: joinDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, employee)
	}
}

// DeleteEmployee removes a roster entry.
func DeleteEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "employeeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteEmployee(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
