package dashboard

import (
	"github.com/supplyline-io/supplyline-backend/internal/inventory"
	"github.com/supplyline-io/supplyline-backend/internal/orders"
)

// CustomerSummaryDTO feeds the customer homepage counters.
type CustomerSummaryDTO struct {
	ProductCount  int64 `json:"product_count"`
	SupplierCount int64 `json:"supplier_count"`
	OrderCount    int64 `json:"order_count"`
}

// EmployeeSummaryDTO feeds the employee homepage charts.
type EmployeeSummaryDTO struct {
	OrderStatus    []orders.StatusCount       `json:"order_status"`
	WarehouseStock []inventory.WarehouseStock `json:"warehouse_stock"`
}

// ManagerSummaryDTO feeds the manager homepage charts.
type ManagerSummaryDTO struct {
	JobTitles           []JobTitleCount `json:"job_titles"`
	OrderCount          int64           `json:"order_count"`
	ReturnCount         int64           `json:"return_count"`
	PurchaseOrderStatus []POStatusCount `json:"purchase_order_status"`
}

// JobStatusStat is one row of the job-status chart stub.
type JobStatusStat struct {
	JobTitle string `json:"job_title"`
	Count    int    `json:"count"`
}

// OrderReturnStat is one row of the order-returns chart stub.
type OrderReturnStat struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// POStatusStat is one row of the po-status chart stub.
type POStatusStat struct {
	Status string `json:"status"`
	Value  int    `json:"value"`
}
