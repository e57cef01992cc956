package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jwalitptl/echo-report-api/internal/model"
	"github.com/jwalitptl/echo-report-api/internal/reportgen"
	"github.com/jwalitptl/echo-report-api/internal/repository"
	apperrors "github.com/jwalitptl/echo-report-api/pkg/errors"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Renderer turns a template model into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, m *reportgen.TemplateModel) ([]byte, error)
}

// DocumentStore retains rendered documents for later download.
type DocumentStore interface {
	Put(pdf []byte) (string, error)
	Resolve(name string) (string, error)
}

type Service struct {
	repo     repository.ReportRepository
	builder  *reportgen.Builder
	renderer Renderer
	store    DocumentStore
}

func NewService(repo repository.ReportRepository, builder *reportgen.Builder, renderer Renderer, store DocumentStore) *Service {
	return &Service{
		repo:     repo,
		builder:  builder,
		renderer: renderer,
		store:    store,
	}
}

// CreateReport persists a submitted record verbatim, with a few fields
// denormalized for the listing view.
func (s *Service) CreateReport(ctx context.Context, rec model.Record) (*model.Report, error) {
	if len(rec) == 0 {
		return nil, apperrors.BadRequest("form data is required", nil)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, apperrors.BadRequest("invalid form data", err)
	}

	report := &model.Report{
		PatientName:        rec.Value("Name"),
		ClinicID:           rec.Value("ID"),
		DateOfBirth:        rec.Value("DOB"),
		Age:                rec.Value("Age"),
		Indication:         rec.Value("Indication"),
		DateOfIntervention: rec.Value("Date of Intervention"),
		PreOpSpecify:       rec.Value("Pre-Op Specify"),
		FormDataJSON:       raw,
		FormData:           rec,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	return report, nil
}

// ListReports returns a bounded most-recent-first listing.
func (s *Service) ListReports(ctx context.Context, limit int) ([]*model.ReportSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	reports, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetReport fetches a stored report with its full record.
func (s *Service) GetReport(ctx context.Context, id int64) (*model.Report, error) {
	report, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("report", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if len(report.FormDataJSON) > 0 {
		var rec model.Record
		if err := json.Unmarshal(report.FormDataJSON, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report %d: %w", id, err)
		}
		report.FormData = rec
	}
	return report, nil
}

// GenerateDocument builds the template model for a record, renders it to
// PDF and stores the file for the retention window. The submitted record
// is not persisted here; rendering and saving are independent operations.
func (s *Service) GenerateDocument(ctx context.Context, rec model.Record) (*model.GeneratedDocument, error) {
	if len(rec) == 0 {
		return nil, apperrors.BadRequest("form data is required", nil)
	}

	tm := s.builder.Build(rec)
	pdf, err := s.renderer.Render(ctx, tm)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	name, err := s.store.Put(pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	return &model.GeneratedDocument{
		FileName:  name,
		FileURL:   "/api/v1/reports/files/" + name,
		SizeBytes: len(pdf),
	}, nil
}

// ResolveDocument maps a generated filename to its path while retained.
func (s *Service) ResolveDocument(name string) (string, error) {
	path, err := s.store.Resolve(name)
	if errors.Is(err, reportgen.ErrDocumentNotFound) {
		return "", apperrors.NotFound("document", err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve document: %w", err)
	}
	return path, nil
}
