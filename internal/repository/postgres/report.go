package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/echo-report-api/internal/model"
	"github.com/jwalitptl/echo-report-api/internal/repository"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	query := `
		INSERT INTO echo_reports (
			patient_name, clinic_id, dob, age, indication,
			date_of_intervention, pre_op_specify, form_data, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	report.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		report.PatientName,
		report.ClinicID,
		report.DateOfBirth,
		report.Age,
		report.Indication,
		report.DateOfIntervention,
		report.PreOpSpecify,
		report.FormDataJSON,
		report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *reportRepository) Get(ctx context.Context, id int64) (*model.Report, error) {
	query := `SELECT * FROM echo_reports WHERE id = $1`
	var report model.Report
	err := r.db.GetContext(ctx, &report, query, id)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, limit int) ([]*model.ReportSummary, error) {
	query := `
		SELECT id, patient_name, clinic_id, dob, age, indication, created_at
		FROM echo_reports
		ORDER BY id DESC
		LIMIT $1
	`
	var reports []*model.ReportSummary
	err := r.db.SelectContext(ctx, &reports, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
