package domain

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the state of a planned field visit.
type VisitStatus string

const (
	VisitScheduled VisitStatus = "scheduled"
	VisitCompleted VisitStatus = "completed"
	VisitMissed    VisitStatus = "missed"
	VisitCancelled VisitStatus = "cancelled"
)

func (s VisitStatus) Valid() bool {
	switch s {
	case VisitScheduled, VisitCompleted, VisitMissed, VisitCancelled:
		return true
	}
	return false
}

// VisitSchedule is a planned visit by an employee to a retailer outlet.
type VisitSchedule struct {
	ID         uuid.UUID   `json:"id"`
	CampaignID uuid.UUID   `json:"campaign_id"`
	EmployeeID uuid.UUID   `json:"employee_id"`
	RetailerID uuid.UUID   `json:"retailer_id"`
	VisitDate  time.Time   `json:"visit_date"`
	Status     VisitStatus `json:"status"`
	Notes      string      `json:"notes"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Transition applies a status change. Only scheduled visits move, and a
// visit cannot be completed before its day.
func (v *VisitSchedule) Transition(to VisitStatus, now time.Time) error {
	if v.Status != VisitScheduled || to == VisitScheduled || !to.Valid() {
		return ErrInvalidTransition
	}
	if to == VisitCompleted && truncateDay(v.VisitDate).After(truncateDay(now)) {
		return ErrInvalidTransition
	}
	v.Status = to
	v.UpdatedAt = now
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
