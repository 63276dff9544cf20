package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	accounts  port.AccountRepository
	visits    port.VisitRepository
	reports   port.ReportRepository
	ledger    port.LedgerRepository
	mailer    port.Mailer
	logger    *slog.Logger
	now       func() time.Time
}

func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	accounts port.AccountRepository,
	visits port.VisitRepository,
	reports port.ReportRepository,
	ledger port.LedgerRepository,
	mailer port.Mailer,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns: campaigns,
		accounts:  accounts,
		visits:    visits,
		reports:   reports,
		ledger:    ledger,
		mailer:    mailer,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	if err := u.validateInput(ctx, &in); err != nil {
		return nil, err
	}
	now := u.now()
	c := &domain.Campaign{
		ID:          uuid.New(),
		ClientID:    in.ClientID,
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		States:      in.States,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID.String()), slog.String("name", c.Name))
	return c, nil
}

func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id uuid.UUID, in port.CampaignInput) (*domain.Campaign, error) {
	c, err := u.mustCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.validateInput(ctx, &in); err != nil {
		return nil, err
	}
	c.ClientID = in.ClientID
	c.Name = in.Name
	c.Type = in.Type
	c.Description = in.Description
	c.States = in.States
	c.StartDate = in.StartDate
	c.EndDate = in.EndDate
	c.Status = in.Status
	c.UpdatedAt = u.now()
	if err := u.campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) validateInput(ctx context.Context, in *port.CampaignInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: campaign name is required", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = domain.CampaignActive
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown campaign status %q", domain.ErrInvalidInput, in.Status)
	}
	if in.EndDate.Before(in.StartDate) {
		return fmt.Errorf("%w: end date is before start date", domain.ErrInvalidInput)
	}
	if in.States == nil {
		in.States = []string{}
	}
	client, err := u.accounts.GetClient(ctx, in.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("client: %w", domain.ErrNotFound)
	}
	return nil
}

func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if _, err := u.mustCampaign(ctx, id); err != nil {
		return err
	}
	return u.campaigns.DeleteCampaign(ctx, id)
}

// GetCampaign returns a campaign if the actor may see it.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.mustCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.authorizeView(ctx, actor, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error) {
	var f port.CampaignFilter
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleClient:
		f.ClientID = &actor.ProfileID
	case domain.RoleEmployee:
		f.EmployeeID = &actor.ProfileID
	case domain.RoleRetailer:
		f.RetailerID = &actor.ProfileID
	default:
		return nil, domain.ErrForbidden
	}
	return u.campaigns.ListCampaigns(ctx, f)
}

func (u *CampaignUseCase) authorizeView(ctx context.Context, actor domain.Actor, c *domain.Campaign) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleClient:
		if c.ClientID == actor.ProfileID {
			return nil
		}
	case domain.RoleEmployee, domain.RoleRetailer:
		a, err := u.campaigns.GetAssignment(ctx, actor.Role, c.ID, actor.ProfileID)
		if err != nil {
			return err
		}
		if a != nil {
			return nil
		}
	}
	return domain.ErrForbidden
}

func (u *CampaignUseCase) AssignEmployees(ctx context.Context, campaignID uuid.UUID, employeeIDs []uuid.UUID) (int64, error) {
	c, err := u.mustCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	recipients := make([]mail.Address, 0, len(employeeIDs))
	for _, id := range dedupe(employeeIDs) {
		e, err := u.accounts.GetEmployee(ctx, id)
		if err != nil {
			return 0, err
		}
		if e == nil {
			return 0, fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
		}
		if e.Email != "" && !u.assigned(ctx, domain.RoleEmployee, c.ID, id) {
			recipients = append(recipients, mail.Address{Name: e.Name, Address: e.Email})
		}
	}
	return u.assign(ctx, domain.RoleEmployee, c, dedupe(employeeIDs), recipients)
}

func (u *CampaignUseCase) AssignRetailers(ctx context.Context, campaignID uuid.UUID, retailerIDs []uuid.UUID) (int64, error) {
	c, err := u.mustCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	recipients := make([]mail.Address, 0, len(retailerIDs))
	for _, id := range dedupe(retailerIDs) {
		r, err := u.accounts.GetRetailer(ctx, id)
		if err != nil {
			return 0, err
		}
		if r == nil {
			return 0, fmt.Errorf("retailer %s: %w", id, domain.ErrNotFound)
		}
		if r.Email != "" && !u.assigned(ctx, domain.RoleRetailer, c.ID, id) {
			recipients = append(recipients, mail.Address{Name: r.ShopName, Address: r.Email})
		}
	}
	return u.assign(ctx, domain.RoleRetailer, c, dedupe(retailerIDs), recipients)
}

// assign adds the assignments and mails the newly assigned parties in to.
// Parties that were already assigned are left untouched by the repository.
func (u *CampaignUseCase) assign(ctx context.Context, kind domain.Role, c *domain.Campaign, ids []uuid.UUID, to []mail.Address) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: nothing to assign", domain.ErrInvalidInput)
	}
	n, err := u.campaigns.AddAssignments(ctx, kind, c.ID, ids, u.now())
	if err != nil {
		return 0, err
	}
	u.logger.Info("campaign assigned",
		slog.String("campaign_id", c.ID.String()), slog.String("kind", string(kind)), slog.Int64("added", n))
	for _, addr := range to {
		u.notifyAssigned(ctx, kind, c, addr)
	}
	return n, nil
}

// assigned is used to skip notifications; lookup errors count as not
// assigned.
func (u *CampaignUseCase) assigned(ctx context.Context, kind domain.Role, campaignID, partyID uuid.UUID) bool {
	a, err := u.campaigns.GetAssignment(ctx, kind, campaignID, partyID)
	return err == nil && a != nil
}

func (u *CampaignUseCase) notifyAssigned(ctx context.Context, kind domain.Role, c *domain.Campaign, to mail.Address) {
	msg := port.EmailMessage{
		To:       []mail.Address{to},
		Subject:  "You have been assigned to " + c.Name,
		Template: "campaign_assigned",
		Data: map[string]any{
			"Name":     to.Name,
			"Role":     string(kind),
			"Campaign": c,
		},
	}
	if err := u.mailer.Send(ctx, msg); err != nil {
		u.logger.Warn("assignment notification failed",
			slog.String("campaign_id", c.ID.String()), slog.String("to", to.Address), slog.Any("error", err))
	}
}

func (u *CampaignUseCase) UnassignEmployee(ctx context.Context, campaignID, employeeID uuid.UUID) error {
	return u.unassign(ctx, domain.RoleEmployee, campaignID, employeeID)
}

func (u *CampaignUseCase) UnassignRetailer(ctx context.Context, campaignID, retailerID uuid.UUID) error {
	return u.unassign(ctx, domain.RoleRetailer, campaignID, retailerID)
}

func (u *CampaignUseCase) unassign(ctx context.Context, kind domain.Role, campaignID, partyID uuid.UUID) error {
	a, err := u.campaigns.GetAssignment(ctx, kind, campaignID, partyID)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("%s assignment: %w", kind, domain.ErrNotFound)
	}
	return u.campaigns.RemoveAssignment(ctx, kind, campaignID, partyID)
}

// Respond lets an assigned employee or retailer accept or reject.
func (u *CampaignUseCase) Respond(ctx context.Context, actor domain.Actor, campaignID uuid.UUID, status domain.AssignmentStatus) (*domain.Assignment, error) {
	if !actor.Is(domain.RoleEmployee, domain.RoleRetailer) {
		return nil, domain.ErrForbidden
	}
	a, err := u.campaigns.GetAssignment(ctx, actor.Role, campaignID, actor.ProfileID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment: %w", domain.ErrNotFound)
	}
	if err := a.Respond(status, u.now()); err != nil {
		return nil, fmt.Errorf("%w: %s -> %s", err, a.Status, status)
	}
	if err := u.campaigns.SaveAssignment(ctx, actor.Role, a); err != nil {
		return nil, err
	}
	return a, nil
}

// LinkRetailers makes an employee responsible for retailers within a
// campaign. Both sides must be assigned to it.
func (u *CampaignUseCase) LinkRetailers(ctx context.Context, campaignID, employeeID uuid.UUID, retailerIDs []uuid.UUID) (int64, error) {
	if _, err := u.mustCampaign(ctx, campaignID); err != nil {
		return 0, err
	}
	ids := dedupe(retailerIDs)
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no retailers given", domain.ErrInvalidInput)
	}
	a, err := u.campaigns.GetAssignment(ctx, domain.RoleEmployee, campaignID, employeeID)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, fmt.Errorf("%w: employee is not assigned to the campaign", domain.ErrInvalidInput)
	}
	for _, id := range ids {
		ra, err := u.campaigns.GetAssignment(ctx, domain.RoleRetailer, campaignID, id)
		if err != nil {
			return 0, err
		}
		if ra == nil {
			return 0, fmt.Errorf("%w: retailer %s is not assigned to the campaign", domain.ErrInvalidInput, id)
		}
	}
	return u.campaigns.LinkRetailers(ctx, campaignID, employeeID, ids)
}

// Overview gathers the dashboard counters of a campaign.
func (u *CampaignUseCase) Overview(ctx context.Context, actor domain.Actor, campaignID uuid.UUID) (*port.CampaignOverview, error) {
	if !actor.Is(domain.RoleAdmin, domain.RoleClient) {
		return nil, domain.ErrForbidden
	}
	c, err := u.GetCampaign(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}
	ov := &port.CampaignOverview{
		Campaign:  *c,
		Employees: map[domain.AssignmentStatus]int64{},
		Retailers: map[domain.AssignmentStatus]int64{},
	}
	for _, kind := range []domain.Role{domain.RoleEmployee, domain.RoleRetailer} {
		list, err := u.campaigns.ListAssignments(ctx, kind, campaignID)
		if err != nil {
			return nil, err
		}
		counts := ov.Employees
		if kind == domain.RoleRetailer {
			counts = ov.Retailers
		}
		for _, a := range list {
			counts[a.Status]++
		}
	}
	if ov.Visits, err = u.visits.CountVisitsByStatus(ctx, campaignID); err != nil {
		return nil, err
	}
	if ov.Reports, err = u.reports.CountReportsByType(ctx, campaignID); err != nil {
		return nil, err
	}
	totals, err := u.ledger.CampaignTotals(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if totals != nil {
		ov.Ledger = *totals
	}
	return ov, nil
}

func (u *CampaignUseCase) mustCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	return c, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
