package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

// uploadExts lists the file types accepted by UploadFile.
var uploadExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".pdf": true, ".xlsx": true, ".docx": true,
}

type ReportUseCase struct {
	reports   port.ReportRepository
	campaigns port.CampaignRepository
	visits    port.VisitRepository
	files     port.FileStore
	logger    *slog.Logger
	now       func() time.Time
}

func NewReportUseCase(reports port.ReportRepository, campaigns port.CampaignRepository, visits port.VisitRepository, files port.FileStore, logger *slog.Logger) *ReportUseCase {
	return &ReportUseCase{
		reports:   reports,
		campaigns: campaigns,
		visits:    visits,
		files:     files,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SubmitReport stores a report from an employee or a retailer. Employees
// report on retailers linked to them; retailers report on themselves for
// campaigns they are assigned to.
func (u *ReportUseCase) SubmitReport(ctx context.Context, actor domain.Actor, r domain.Report) (*domain.Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	c, err := u.campaigns.GetCampaign(ctx, r.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}

	switch actor.Role {
	case domain.RoleEmployee:
		employeeID := actor.ProfileID
		r.EmployeeID = &employeeID
		linked, err := u.campaigns.IsLinked(ctx, r.CampaignID, employeeID, r.RetailerID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, fmt.Errorf("%w: employee is not linked to the retailer in this campaign", domain.ErrInvalidInput)
		}
	case domain.RoleRetailer:
		r.RetailerID = actor.ProfileID
		r.EmployeeID = nil
		a, err := u.campaigns.GetAssignment(ctx, domain.RoleRetailer, r.CampaignID, actor.ProfileID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, fmt.Errorf("%w: retailer is not assigned to the campaign", domain.ErrInvalidInput)
		}
	default:
		return nil, domain.ErrForbidden
	}

	if r.VisitID != nil {
		if err := u.checkVisit(ctx, &r); err != nil {
			return nil, err
		}
	}

	r.ID = uuid.New()
	r.SubmittedBy = actor.Role
	r.CreatedAt = u.now()
	if err := u.reports.CreateReport(ctx, &r); err != nil {
		return nil, err
	}
	u.logger.Info("report submitted",
		slog.String("report_id", r.ID.String()),
		slog.String("type", string(r.Type)),
		slog.String("submitted_by", string(r.SubmittedBy)))
	return &r, nil
}

// checkVisit makes sure the referenced visit is the one the report is about.
func (u *ReportUseCase) checkVisit(ctx context.Context, r *domain.Report) error {
	v, err := u.visits.GetVisit(ctx, *r.VisitID)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("visit: %w", domain.ErrNotFound)
	}
	if v.CampaignID != r.CampaignID || v.RetailerID != r.RetailerID {
		return fmt.Errorf("%w: visit belongs to another campaign or retailer", domain.ErrInvalidInput)
	}
	if r.EmployeeID != nil && v.EmployeeID != *r.EmployeeID {
		return fmt.Errorf("%w: visit belongs to another employee", domain.ErrInvalidInput)
	}
	return nil
}

func (u *ReportUseCase) ListReports(ctx context.Context, actor domain.Actor, filter port.ReportFilter) ([]domain.Report, error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleClient:
		own, err := u.campaigns.ListCampaigns(ctx, port.CampaignFilter{ClientID: &actor.ProfileID})
		if err != nil {
			return nil, err
		}
		ids := make([]uuid.UUID, 0, len(own))
		for _, c := range own {
			ids = append(ids, c.ID)
		}
		if filter.CampaignID != nil && !containsID(ids, *filter.CampaignID) {
			return nil, domain.ErrForbidden
		}
		if len(ids) == 0 {
			return []domain.Report{}, nil
		}
		filter.CampaignIDs = ids
	case domain.RoleEmployee:
		filter.EmployeeID = &actor.ProfileID
	case domain.RoleRetailer:
		filter.RetailerID = &actor.ProfileID
	default:
		return nil, domain.ErrForbidden
	}
	return u.reports.ListReports(ctx, filter)
}

func (u *ReportUseCase) GetReport(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Report, error) {
	r, err := u.mustReport(ctx, id)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return r, nil
	case domain.RoleClient:
		c, err := u.campaigns.GetCampaign(ctx, r.CampaignID)
		if err != nil {
			return nil, err
		}
		if c != nil && c.ClientID == actor.ProfileID {
			return r, nil
		}
	case domain.RoleEmployee:
		if r.EmployeeID != nil && *r.EmployeeID == actor.ProfileID {
			return r, nil
		}
	case domain.RoleRetailer:
		if r.RetailerID == actor.ProfileID {
			return r, nil
		}
	}
	return nil, domain.ErrForbidden
}

func (u *ReportUseCase) DeleteReport(ctx context.Context, id uuid.UUID) error {
	if _, err := u.mustReport(ctx, id); err != nil {
		return err
	}
	return u.reports.DeleteReport(ctx, id)
}

// UploadFile stores an image or document under a fresh name and returns
// its public URL.
func (u *ReportUseCase) UploadFile(ctx context.Context, name string, r io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(name))
	if !uploadExts[ext] {
		return "", fmt.Errorf("%w: file type %q is not accepted", domain.ErrInvalidInput, ext)
	}
	stored := uuid.NewString() + ext
	url, err := u.files.Save(ctx, stored, r)
	if err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	u.logger.Info("file uploaded", slog.String("name", name), slog.String("url", url))
	return url, nil
}

func (u *ReportUseCase) mustReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	r, err := u.reports.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("report: %w", domain.ErrNotFound)
	}
	return r, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
