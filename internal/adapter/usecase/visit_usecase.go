package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

type VisitUseCase struct {
	visits    port.VisitRepository
	campaigns port.CampaignRepository
	logger    *slog.Logger
	now       func() time.Time
}

func NewVisitUseCase(visits port.VisitRepository, campaigns port.CampaignRepository, logger *slog.Logger) *VisitUseCase {
	return &VisitUseCase{
		visits:    visits,
		campaigns: campaigns,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ScheduleVisit plans a visit. Employees can only schedule for themselves
// and only at retailers linked to them in the campaign.
func (u *VisitUseCase) ScheduleVisit(ctx context.Context, actor domain.Actor, in port.VisitInput) (*domain.VisitSchedule, error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleEmployee:
		if in.EmployeeID == uuid.Nil {
			in.EmployeeID = actor.ProfileID
		}
		if in.EmployeeID != actor.ProfileID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}
	if in.VisitDate.IsZero() {
		return nil, fmt.Errorf("%w: visit date is required", domain.ErrInvalidInput)
	}
	c, err := u.campaigns.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	linked, err := u.campaigns.IsLinked(ctx, in.CampaignID, in.EmployeeID, in.RetailerID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, fmt.Errorf("%w: employee is not linked to the retailer in this campaign", domain.ErrInvalidInput)
	}
	now := u.now()
	v := &domain.VisitSchedule{
		ID:         uuid.New(),
		CampaignID: in.CampaignID,
		EmployeeID: in.EmployeeID,
		RetailerID: in.RetailerID,
		VisitDate:  in.VisitDate,
		Status:     domain.VisitScheduled,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.visits.CreateVisit(ctx, v); err != nil {
		return nil, err
	}
	u.logger.Info("visit scheduled",
		slog.String("visit_id", v.ID.String()),
		slog.String("employee_id", v.EmployeeID.String()),
		slog.Time("visit_date", v.VisitDate))
	return v, nil
}

func (u *VisitUseCase) ListVisits(ctx context.Context, actor domain.Actor, filter port.VisitFilter) ([]domain.VisitSchedule, error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleEmployee:
		filter.EmployeeID = &actor.ProfileID
	default:
		return nil, domain.ErrForbidden
	}
	return u.visits.ListVisits(ctx, filter)
}

func (u *VisitUseCase) UpdateVisitStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.VisitStatus, notes string) (*domain.VisitSchedule, error) {
	v, err := u.visitFor(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	from := v.Status
	if err := v.Transition(status, u.now()); err != nil {
		return nil, fmt.Errorf("%w: %s -> %s", err, from, status)
	}
	if n := strings.TrimSpace(notes); n != "" {
		v.Notes = n
	}
	if err := u.visits.UpdateVisit(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVisit removes a visit that has not happened yet.
func (u *VisitUseCase) DeleteVisit(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	v, err := u.visitFor(ctx, actor, id)
	if err != nil {
		return err
	}
	if v.Status != domain.VisitScheduled {
		return fmt.Errorf("%w: only scheduled visits can be deleted", domain.ErrInvalidTransition)
	}
	return u.visits.DeleteVisit(ctx, id)
}

func (u *VisitUseCase) visitFor(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.VisitSchedule, error) {
	if !actor.Is(domain.RoleAdmin, domain.RoleEmployee) {
		return nil, domain.ErrForbidden
	}
	v, err := u.visits.GetVisit(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("visit: %w", domain.ErrNotFound)
	}
	if actor.Role == domain.RoleEmployee && v.EmployeeID != actor.ProfileID {
		return nil, domain.ErrForbidden
	}
	return v, nil
}
