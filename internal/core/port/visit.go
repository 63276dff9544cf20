package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
)

// VisitRepository persists visit schedules.
type VisitRepository interface {
	CreateVisit(ctx context.Context, v *domain.VisitSchedule) error
	GetVisit(ctx context.Context, id uuid.UUID) (*domain.VisitSchedule, error)
	UpdateVisit(ctx context.Context, v *domain.VisitSchedule) error
	DeleteVisit(ctx context.Context, id uuid.UUID) error
	ListVisits(ctx context.Context, filter VisitFilter) ([]domain.VisitSchedule, error)
	CountVisitsByStatus(ctx context.Context, campaignID uuid.UUID) (map[domain.VisitStatus]int64, error)
}

type VisitFilter struct {
	CampaignID *uuid.UUID
	EmployeeID *uuid.UUID
	RetailerID *uuid.UUID
	Status     *domain.VisitStatus
	From       *time.Time
	To         *time.Time
}

// VisitUseCase schedules and tracks field visits.
type VisitUseCase interface {
	ScheduleVisit(ctx context.Context, actor domain.Actor, in VisitInput) (*domain.VisitSchedule, error)
	ListVisits(ctx context.Context, actor domain.Actor, filter VisitFilter) ([]domain.VisitSchedule, error)
	UpdateVisitStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.VisitStatus, notes string) (*domain.VisitSchedule, error)
	DeleteVisit(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type VisitInput struct {
	CampaignID uuid.UUID
	EmployeeID uuid.UUID
	RetailerID uuid.UUID
	VisitDate  time.Time
	Notes      string
}
