package dashboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/repo"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
)

// JobTitleCount aggregates employees per job title.
type JobTitleCount struct {
	JobTitle string `json:"job_title"`
	Count    int64  `json:"count"`
}

// POStatusCount aggregates purchase orders per status.
type POStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Repository runs the aggregate queries behind the dashboard views.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// CountByJobTitle groups employees per job title. Empty titles bucket as "Unknown".
func (r *Repository) CountByJobTitle(ctx context.Context) ([]JobTitleCount, error) {
	var rows []JobTitleCount
	err := r.DB(ctx).
		Model(&models.Employee{}).
		Select(`CASE WHEN job_title = '' THEN 'Unknown' ELSE job_title END AS job_title, COUNT(*) AS count`).
		Group(`CASE WHEN job_title = '' THEN 'Unknown' ELSE job_title END`).
		Order("job_title ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountReturns returns the total number of return records.
func (r *Repository) CountReturns(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Return{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPurchaseOrdersByStatus groups purchase orders per status.
func (r *Repository) CountPurchaseOrdersByStatus(ctx context.Context) ([]POStatusCount, error) {
	var rows []POStatusCount
	err := r.DB(ctx).
		Model(&models.PurchaseOrder{}).
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
