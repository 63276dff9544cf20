package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
)

// CampaignRepository persists campaigns and their assignment bookkeeping.
// Assignment methods take the party kind as a role: domain.RoleEmployee or
// domain.RoleRetailer.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	FindCampaignByName(ctx context.Context, name string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	// AddAssignments inserts pending assignments, skipping parties already
	// assigned, and returns how many rows were added.
	AddAssignments(ctx context.Context, kind domain.Role, campaignID uuid.UUID, partyIDs []uuid.UUID, at time.Time) (int64, error)
	// RemoveAssignment deletes an assignment and the employee/retailer links
	// that depend on it.
	RemoveAssignment(ctx context.Context, kind domain.Role, campaignID, partyID uuid.UUID) error
	GetAssignment(ctx context.Context, kind domain.Role, campaignID, partyID uuid.UUID) (*domain.Assignment, error)
	SaveAssignment(ctx context.Context, kind domain.Role, a *domain.Assignment) error
	ListAssignments(ctx context.Context, kind domain.Role, campaignID uuid.UUID) ([]domain.Assignment, error)

	LinkRetailers(ctx context.Context, campaignID, employeeID uuid.UUID, retailerIDs []uuid.UUID) (int64, error)
	IsLinked(ctx context.Context, campaignID, employeeID, retailerID uuid.UUID) (bool, error)
}

type CampaignFilter struct {
	ClientID   *uuid.UUID
	EmployeeID *uuid.UUID
	RetailerID *uuid.UUID
	Status     *domain.CampaignStatus
}

// CampaignUseCase manages campaigns and who takes part in them.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, in CampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	GetCampaign(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error)

	AssignEmployees(ctx context.Context, campaignID uuid.UUID, employeeIDs []uuid.UUID) (int64, error)
	AssignRetailers(ctx context.Context, campaignID uuid.UUID, retailerIDs []uuid.UUID) (int64, error)
	UnassignEmployee(ctx context.Context, campaignID, employeeID uuid.UUID) error
	UnassignRetailer(ctx context.Context, campaignID, retailerID uuid.UUID) error
	Respond(ctx context.Context, actor domain.Actor, campaignID uuid.UUID, status domain.AssignmentStatus) (*domain.Assignment, error)
	LinkRetailers(ctx context.Context, campaignID, employeeID uuid.UUID, retailerIDs []uuid.UUID) (int64, error)

	Overview(ctx context.Context, actor domain.Actor, campaignID uuid.UUID) (*CampaignOverview, error)
}

type CampaignInput struct {
	ClientID    uuid.UUID
	Name        string
	Type        string
	Description string
	States      []string
	StartDate   time.Time
	EndDate     time.Time
	Status      domain.CampaignStatus
}

// CampaignOverview is the dashboard summary of a campaign.
type CampaignOverview struct {
	Campaign  domain.Campaign                     `json:"campaign"`
	Employees map[domain.AssignmentStatus]int64 `json:"employees"`
	Retailers map[domain.AssignmentStatus]int64 `json:"retailers"`
	Visits    map[domain.VisitStatus]int64      `json:"visits"`
	Reports   map[domain.ReportType]int64       `json:"reports"`
	Ledger    LedgerTotals                      `json:"ledger"`
}
