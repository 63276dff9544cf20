package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignInactive  CampaignStatus = "inactive"
	CampaignCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignActive, CampaignInactive, CampaignCompleted:
		return true
	}
	return false
}

// Campaign represents a time-boxed client engagement.
type Campaign struct {
	ID          uuid.UUID      `json:"id"`
	ClientID    uuid.UUID      `json:"client_id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	States      []string       `json:"states"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AssignmentStatus tracks whether an assigned party took up a campaign.
type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentRejected AssignmentStatus = "rejected"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentRejected:
		return true
	}
	return false
}

// Assignment links an employee or a retailer (PartyID) to a campaign.
type Assignment struct {
	CampaignID  uuid.UUID        `json:"campaign_id"`
	PartyID     uuid.UUID        `json:"party_id"`
	Status      AssignmentStatus `json:"status"`
	AssignedAt  time.Time        `json:"assigned_at"`
	RespondedAt *time.Time       `json:"responded_at,omitempty"`
}

// Respond moves a pending assignment to accepted or rejected.
func (a *Assignment) Respond(status AssignmentStatus, now time.Time) error {
	if a.Status != AssignmentPending {
		return ErrInvalidTransition
	}
	if status != AssignmentAccepted && status != AssignmentRejected {
		return ErrInvalidTransition
	}
	a.Status = status
	a.RespondedAt = &now
	return nil
}

// RetailerLink records that an employee covers a retailer within a campaign.
type RetailerLink struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	RetailerID uuid.UUID `json:"retailer_id"`
}
