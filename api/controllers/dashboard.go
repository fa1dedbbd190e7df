package controllers

import (
	"net/http"

	"github.com/supplyline-io/supplyline-backend/api/middleware"
	"github.com/supplyline-io/supplyline-backend/api/responses"
	dashboardsvc "github.com/supplyline-io/supplyline-backend/internal/dashboard"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
)

// CustomerSummary feeds the customer homepage counters.
func CustomerSummary(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.CustomerSummary(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// EmployeeSummary feeds the employee homepage charts.
func EmployeeSummary(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.EmployeeSummary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// ManagerSummary feeds the manager homepage charts.
func ManagerSummary(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.ManagerSummary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// JobStatusStats serves the fixed job-status chart rows.
func JobStatusStats(svc dashboardsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.JobStatusStats())
	}
}

// OrderReturnStats serves the fixed orders-vs-returns chart rows.
func OrderReturnStats(svc dashboardsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.OrderReturnStats())
	}
}

// POStatusStats serves the fixed purchase-order status chart rows.
func POStatusStats(svc dashboardsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.POStatusStats())
	}
}
