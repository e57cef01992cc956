package repository

import (
	"context"

	"github.com/jwalitptl/echo-report-api/internal/model"
)

// ReportRepository persists submitted echo reports. The store is
// insert-only: amendments are new rows, never updates.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	Get(ctx context.Context, id int64) (*model.Report, error)
	List(ctx context.Context, limit int) ([]*model.ReportSummary, error)
}
