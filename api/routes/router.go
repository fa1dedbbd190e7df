package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/supplyline-io/supplyline-backend/api/controllers"
	"github.com/supplyline-io/supplyline-backend/api/middleware"
	authsvc "github.com/supplyline-io/supplyline-backend/internal/auth"
	dashboardsvc "github.com/supplyline-io/supplyline-backend/internal/dashboard"
	employeesvc "github.com/supplyline-io/supplyline-backend/internal/employees"
	inventorysvc "github.com/supplyline-io/supplyline-backend/internal/inventory"
	ordersvc "github.com/supplyline-io/supplyline-backend/internal/orders"
	productsvc "github.com/supplyline-io/supplyline-backend/internal/products"
	suppliersvc "github.com/supplyline-io/supplyline-backend/internal/suppliers"
	warehousesvc "github.com/supplyline-io/supplyline-backend/internal/warehouses"
	"github.com/supplyline-io/supplyline-backend/pkg/auth/session"
	"github.com/supplyline-io/supplyline-backend/pkg/config"
	"github.com/supplyline-io/supplyline-backend/pkg/enums"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
	"github.com/supplyline-io/supplyline-backend/pkg/metrics"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBProbe     controllers.Pinger
	RedisProbe  controllers.Pinger
	Sessions    session.AccessSessionChecker
	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry

	Auth       authsvc.Service
	Orders     ordersvc.Service
	Products   productsvc.Service
	Inventory  inventorysvc.Service
	Employees  employeesvc.Service
	Suppliers  suppliersvc.Service
	Warehouses warehousesvc.Service
	Dashboard  dashboardsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DBProbe, deps.RedisProbe, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register/customer", controllers.RegisterCustomer(deps.Auth, logg))
		r.Post("/register/employee", controllers.RegisterEmployee(deps.Auth, logg))
		r.Post("/login", controllers.Login(deps.Auth, logg))
		r.Post("/refresh", controllers.Refresh(deps.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Post("/auth/logout", controllers.Logout(deps.Auth, logg))
		r.Get("/me", controllers.Me(deps.Auth, logg))

		r.Route("/customer", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleCustomer), logg))

			r.Post("/orders", controllers.CustomerPlaceOrder(deps.Orders, logg))
			r.Get("/orders", controllers.CustomerListOrders(deps.Orders, logg))
			r.Get("/products", controllers.ListProducts(deps.Products, logg))
			r.Get("/summary", controllers.CustomerSummary(deps.Dashboard, logg))
		})

		r.Route("/employee", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleEmployee), logg))

			r.Get("/products", controllers.ListProducts(deps.Products, logg))
			r.Post("/products", controllers.CreateProduct(deps.Products, logg))
			r.Get("/products/{productId}", controllers.GetProduct(deps.Products, logg))
			r.Patch("/products/{productId}", controllers.UpdateProduct(deps.Products, logg))
			r.Delete("/products/{productId}", controllers.DeleteProduct(deps.Products, logg))

			r.Get("/inventory", controllers.ListInventory(deps.Inventory, logg))
			r.Put("/inventory", controllers.UpsertInventory(deps.Inventory, logg))
			r.Delete("/inventory", controllers.DeleteInventory(deps.Inventory, logg))

			r.Get("/orders", controllers.EmployeeListOrders(deps.Orders, logg))
			r.Get("/orders/{orderId}", controllers.EmployeeGetOrder(deps.Orders, logg))
			r.Patch("/orders/{orderId}", controllers.EmployeeUpdateOrder(deps.Orders, logg))

			r.Get("/summary", controllers.EmployeeSummary(deps.Dashboard, logg))
		})

		r.Route("/manager", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleManager), logg))

			r.Get("/employees", controllers.ListEmployees(deps.Employees, logg))
			r.Post("/employees", controllers.CreateEmployee(deps.Employees, logg))
			r.Get("/employees/{employeeId}", controllers.GetEmployee(deps.Employees, logg))
			r.Patch("/employees/{employeeId}", controllers.UpdateEmployee(deps.Employees, logg))
			r.Delete("/employees/{employeeId}", controllers.DeleteEmployee(deps.Employees, logg))

			r.Get("/suppliers", controllers.ListSuppliers(deps.Suppliers, logg))
			r.Post("/suppliers", controllers.CreateSupplier(deps.Suppliers, logg))
			r.Get("/suppliers/{supplierId}", controllers.GetSupplier(deps.Suppliers, logg))
			r.Patch("/suppliers/{supplierId}", controllers.UpdateSupplier(deps.Suppliers, logg))
			r.Delete("/suppliers/{supplierId}", controllers.DeleteSupplier(deps.Suppliers, logg))

			r.Get("/warehouses", controllers.ListWarehouses(deps.Warehouses, logg))
			r.Post("/warehouses", controllers.CreateWarehouse(deps.Warehouses, logg))
			r.Get("/warehouses/{warehouseId}", controllers.GetWarehouse(deps.Warehouses, logg))
			r.Patch("/warehouses/{warehouseId}", controllers.UpdateWarehouse(deps.Warehouses, logg))
			r.Delete("/warehouses/{warehouseId}", controllers.DeleteWarehouse(deps.Warehouses, logg))

			r.Get("/summary", controllers.ManagerSummary(deps.Dashboard, logg))
			r.Get("/stats/job-status", controllers.JobStatusStats(deps.Dashboard))
			r.Get("/stats/order-returns", controllers.OrderReturnStats(deps.Dashboard))
			r.Get("/stats/po-status", controllers.POStatusStats(deps.Dashboard))
		})
	})

	return r
}
