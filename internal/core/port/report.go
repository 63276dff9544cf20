package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
)

// ReportRepository persists submitted reports.
type ReportRepository interface {
	CreateReport(ctx context.Context, r *domain.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	ListReports(ctx context.Context, filter ReportFilter) ([]domain.Report, error)
	CountReportsByType(ctx context.Context, campaignID uuid.UUID) (map[domain.ReportType]int64, error)
}

type ReportFilter struct {
	CampaignID  *uuid.UUID
	CampaignIDs []uuid.UUID
	RetailerID  *uuid.UUID
	EmployeeID  *uuid.UUID
	Type        *domain.ReportType
	From        *time.Time
	To          *time.Time
}

// ReportUseCase handles report submission and retrieval for every role.
type ReportUseCase interface {
	SubmitReport(ctx context.Context, actor domain.Actor, r domain.Report) (*domain.Report, error)
	ListReports(ctx context.Context, actor domain.Actor, filter ReportFilter) ([]domain.Report, error)
	GetReport(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	UploadFile(ctx context.Context, name string, r io.Reader) (string, error)
}

// FileStore keeps uploaded report images and documents and returns a
// public URL for them.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
