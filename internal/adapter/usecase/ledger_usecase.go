package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

// dateLayouts are the date formats accepted in installment sheets.
var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2006/01/02", "02.01.2006"}

// LedgerUseCase implements port.LedgerUseCase. Every mutation goes through
// LedgerRepository.UpdateBudget so the whole retailer ledger is rewritten
// with freshly recalculated totals.
type LedgerUseCase struct {
	ledger    port.LedgerRepository
	accounts  port.AccountRepository
	campaigns port.CampaignRepository
	mailer    port.Mailer
	logger    *slog.Logger
	now       func() time.Time
}

// NewLedgerUseCase wires the ledger use case to its repositories.
func NewLedgerUseCase(ledger port.LedgerRepository, accounts port.AccountRepository, campaigns port.CampaignRepository, mailer port.Mailer, logger *slog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		ledger:    ledger,
		accounts:  accounts,
		campaigns: campaigns,
		mailer:    mailer,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetAllocation assigns the TCA of a retailer for a campaign.
func (u *LedgerUseCase) SetAllocation(ctx context.Context, retailerID, campaignID uuid.UUID, amount decimal.Decimal) (*domain.RetailerBudget, error) {
	if _, err := u.retailer(ctx, retailerID); err != nil {
		return nil, err
	}
	if _, err := u.campaign(ctx, campaignID); err != nil {
		return nil, err
	}
	now := u.now()
	return u.ledger.UpdateBudget(ctx, retailerID, func(b *domain.RetailerBudget) error {
		return b.SetAllocation(campaignID, amount, now)
	})
}

// AddInstallment records a payment and notifies the retailer by email.
// The UTR is checked against every ledger before anything is written.
func (u *LedgerUseCase) AddInstallment(ctx context.Context, retailerID, campaignID uuid.UUID, in domain.InstallmentInput) (*domain.Installment, error) {
	retailer, err := u.retailer(ctx, retailerID)
	if err != nil {
		return nil, err
	}
	campaign, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	inst, b, err := u.addInstallment(ctx, retailerID, campaignID, in)
	if err != nil {
		return nil, err
	}
	u.notifyPayment(ctx, retailer, campaign, inst, b.Campaign(campaignID))
	return &inst, nil
}

func (u *LedgerUseCase) addInstallment(ctx context.Context, retailerID, campaignID uuid.UUID, in domain.InstallmentInput) (domain.Installment, *domain.RetailerBudget, error) {
	if err := u.checkUTR(ctx, in.UTR, uuid.Nil); err != nil {
		return domain.Installment{}, nil, err
	}
	now := u.now()
	var inst domain.Installment
	b, err := u.ledger.UpdateBudget(ctx, retailerID, func(b *domain.RetailerBudget) error {
		var err error
		inst, err = b.AddInstallment(campaignID, in, now)
		return err
	})
	if err != nil {
		return domain.Installment{}, nil, err
	}
	return inst, b, nil
}

// UpdateInstallment edits an installment in place.
func (u *LedgerUseCase) UpdateInstallment(ctx context.Context, retailerID, campaignID, installmentID uuid.UUID, patch domain.InstallmentPatch) (*domain.Installment, error) {
	if _, err := u.retailer(ctx, retailerID); err != nil {
		return nil, err
	}
	if patch.UTR != nil {
		if err := u.checkUTR(ctx, *patch.UTR, installmentID); err != nil {
			return nil, err
		}
	}
	now := u.now()
	var inst domain.Installment
	_, err := u.ledger.UpdateBudget(ctx, retailerID, func(b *domain.RetailerBudget) error {
		var err error
		inst, err = b.UpdateInstallment(campaignID, installmentID, patch, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// RemoveInstallment deletes one installment.
func (u *LedgerUseCase) RemoveInstallment(ctx context.Context, retailerID, campaignID, installmentID uuid.UUID) error {
	if _, err := u.retailer(ctx, retailerID); err != nil {
		return err
	}
	now := u.now()
	_, err := u.ledger.UpdateBudget(ctx, retailerID, func(b *domain.RetailerBudget) error {
		return b.RemoveInstallment(campaignID, installmentID, now)
	})
	return err
}

// RemoveCampaignBudget deletes a campaign entry with all its installments.
func (u *LedgerUseCase) RemoveCampaignBudget(ctx context.Context, retailerID, campaignID uuid.UUID) error {
	if _, err := u.retailer(ctx, retailerID); err != nil {
		return err
	}
	now := u.now()
	_, err := u.ledger.UpdateBudget(ctx, retailerID, func(b *domain.RetailerBudget) error {
		return b.RemoveCampaign(campaignID, now)
	})
	return err
}

// GetBudget returns the ledger of a retailer. A retailer without ledger
// gets an empty one with zero totals.
func (u *LedgerUseCase) GetBudget(ctx context.Context, actor domain.Actor, retailerID uuid.UUID) (*domain.RetailerBudget, error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleRetailer:
		if actor.ProfileID != retailerID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}
	if _, err := u.retailer(ctx, retailerID); err != nil {
		return nil, err
	}
	b, err := u.ledger.GetBudget(ctx, retailerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = domain.NewRetailerBudget(retailerID, u.now())
		b.ID = uuid.Nil
		b.Recalculate()
	}
	return b, nil
}

// ListBudgets lists ledgers. Clients only see ledgers of their own
// campaigns and must filter by campaign; retailers get their own ledger.
func (u *LedgerUseCase) ListBudgets(ctx context.Context, actor domain.Actor, filter port.BudgetFilter) ([]domain.RetailerBudget, error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleClient:
		if filter.CampaignID == nil {
			return nil, fmt.Errorf("%w: campaign_id is required", domain.ErrInvalidInput)
		}
		c, err := u.campaign(ctx, *filter.CampaignID)
		if err != nil {
			return nil, err
		}
		if c.ClientID != actor.ProfileID {
			return nil, domain.ErrForbidden
		}
	case domain.RoleRetailer:
		b, err := u.GetBudget(ctx, actor, actor.ProfileID)
		if err != nil {
			return nil, err
		}
		return []domain.RetailerBudget{*b}, nil
	default:
		return nil, domain.ErrForbidden
	}
	return u.ledger.ListBudgets(ctx, filter)
}

// ImportAllocations applies a TCA sheet row by row.
func (u *LedgerUseCase) ImportAllocations(ctx context.Context, rows []port.AllocationRow) (*port.BulkResult, error) {
	res := &port.BulkResult{Total: len(rows), Failures: []port.RowFailure{}}
	lk := newLookup(u.accounts, u.campaigns)
	for _, row := range rows {
		if err := u.importAllocation(ctx, lk, row); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			res.Failures = append(res.Failures, port.RowFailure{Row: row.Row, Reason: err.Error()})
			continue
		}
		res.Inserted++
	}
	u.logger.Info("allocation sheet imported",
		slog.Int("total", res.Total), slog.Int("inserted", res.Inserted), slog.Int("failed", len(res.Failures)))
	return res, nil
}

func (u *LedgerUseCase) importAllocation(ctx context.Context, lk *lookup, row port.AllocationRow) error {
	amount, err := parseAmount(row.Amount)
	if err != nil {
		return err
	}
	retailer, err := lk.retailer(ctx, row.OutletCode)
	if err != nil {
		return err
	}
	campaign, err := lk.campaign(ctx, row.CampaignName)
	if err != nil {
		return err
	}
	now := u.now()
	_, err = u.ledger.UpdateBudget(ctx, retailer.ID, func(b *domain.RetailerBudget) error {
		return b.SetAllocation(campaign.ID, amount, now)
	})
	return err
}

// ImportInstallments applies an installment sheet row by row. A UTR seen
// earlier in the same sheet fails the later row.
func (u *LedgerUseCase) ImportInstallments(ctx context.Context, rows []port.InstallmentRow) (*port.BulkResult, error) {
	res := &port.BulkResult{Total: len(rows), Failures: []port.RowFailure{}}
	lk := newLookup(u.accounts, u.campaigns)
	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		utr := domain.NormalizeUTR(row.UTR)
		if first, dup := seen[utr]; dup && utr != "" {
			res.Failures = append(res.Failures, port.RowFailure{
				Row:    row.Row,
				Reason: fmt.Sprintf("%v: %s repeats row %d", domain.ErrDuplicateUTR, utr, first),
			})
			continue
		}
		if utr != "" {
			seen[utr] = row.Row
		}
		if err := u.importInstallment(ctx, lk, row); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			res.Failures = append(res.Failures, port.RowFailure{Row: row.Row, Reason: err.Error()})
			continue
		}
		res.Inserted++
	}
	u.logger.Info("installment sheet imported",
		slog.Int("total", res.Total), slog.Int("inserted", res.Inserted), slog.Int("failed", len(res.Failures)))
	return res, nil
}

func (u *LedgerUseCase) importInstallment(ctx context.Context, lk *lookup, row port.InstallmentRow) error {
	amount, err := parseAmount(row.Amount)
	if err != nil {
		return err
	}
	paidOn, err := parseDate(row.Date)
	if err != nil {
		return err
	}
	retailer, err := lk.retailer(ctx, row.OutletCode)
	if err != nil {
		return err
	}
	campaign, err := lk.campaign(ctx, row.CampaignName)
	if err != nil {
		return err
	}
	inst, b, err := u.addInstallment(ctx, retailer.ID, campaign.ID, domain.InstallmentInput{
		Amount:  amount,
		UTR:     row.UTR,
		PaidOn:  paidOn,
		Remarks: row.Remarks,
	})
	if err != nil {
		return err
	}
	u.notifyPayment(ctx, retailer, campaign, inst, b.Campaign(campaign.ID))
	return nil
}

// ExportLedger flattens ledgers into one row per campaign entry, ordered
// by outlet code and campaign name.
func (u *LedgerUseCase) ExportLedger(ctx context.Context, filter port.BudgetFilter) ([]port.LedgerExportRow, error) {
	budgets, err := u.ledger.ListBudgets(ctx, filter)
	if err != nil {
		return nil, err
	}
	campaigns := make(map[uuid.UUID]*domain.Campaign)
	rows := make([]port.LedgerExportRow, 0, len(budgets))
	for _, b := range budgets {
		retailer, err := u.retailer(ctx, b.RetailerID)
		if err != nil {
			return nil, err
		}
		for _, cb := range b.Campaigns {
			if filter.CampaignID != nil && cb.CampaignID != *filter.CampaignID {
				continue
			}
			c, ok := campaigns[cb.CampaignID]
			if !ok {
				if c, err = u.campaign(ctx, cb.CampaignID); err != nil {
					return nil, err
				}
				campaigns[cb.CampaignID] = c
			}
			rows = append(rows, port.LedgerExportRow{
				OutletCode:   retailer.OutletCode,
				ShopName:     retailer.ShopName,
				CampaignName: c.Name,
				Allocated:    cb.AllocatedAmount,
				Paid:         cb.PaidAmount,
				Pending:      cb.PendingAmount,
				Installments: len(cb.Installments),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OutletCode != rows[j].OutletCode {
			return rows[i].OutletCode < rows[j].OutletCode
		}
		return rows[i].CampaignName < rows[j].CampaignName
	})
	return rows, nil
}

func (u *LedgerUseCase) checkUTR(ctx context.Context, utr string, except uuid.UUID) error {
	utr = domain.NormalizeUTR(utr)
	if utr == "" {
		return fmt.Errorf("%w: utr is required", domain.ErrInvalidInput)
	}
	exists, err := u.ledger.UTRExists(ctx, utr, except)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateUTR, utr)
	}
	return nil
}

func (u *LedgerUseCase) retailer(ctx context.Context, id uuid.UUID) (*domain.Retailer, error) {
	r, err := u.accounts.GetRetailer(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("retailer: %w", domain.ErrNotFound)
	}
	return r, nil
}

func (u *LedgerUseCase) campaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	return c, nil
}

func (u *LedgerUseCase) notifyPayment(ctx context.Context, r *domain.Retailer, c *domain.Campaign, inst domain.Installment, cb *domain.CampaignBudget) {
	if r.Email == "" || cb == nil {
		return
	}
	msg := port.EmailMessage{
		To:       []mail.Address{{Name: r.ShopName, Address: r.Email}},
		Subject:  "Payment received for " + c.Name,
		Template: "payment_recorded",
		Data: map[string]any{
			"Retailer":    r,
			"Campaign":    c,
			"Installment": inst,
			"Budget":      cb,
		},
	}
	if err := u.mailer.Send(ctx, msg); err != nil {
		u.logger.Warn("payment notification failed",
			slog.String("retailer", r.OutletCode), slog.String("utr", inst.UTR), slog.Any("error", err))
	}
}

// lookup caches retailer and campaign resolution for the duration of one
// sheet import.
type lookup struct {
	accounts  port.AccountRepository
	campaigns port.CampaignRepository
	retailers map[string]*domain.Retailer
	byName    map[string]*domain.Campaign
}

func newLookup(accounts port.AccountRepository, campaigns port.CampaignRepository) *lookup {
	return &lookup{
		accounts:  accounts,
		campaigns: campaigns,
		retailers: make(map[string]*domain.Retailer),
		byName:    make(map[string]*domain.Campaign),
	}
}

func (l *lookup) retailer(ctx context.Context, outletCode string) (*domain.Retailer, error) {
	code := strings.TrimSpace(outletCode)
	if code == "" {
		return nil, fmt.Errorf("%w: outlet code is required", domain.ErrInvalidInput)
	}
	if r, ok := l.retailers[code]; ok {
		return r, nil
	}
	r, err := l.accounts.FindRetailerByOutletCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("retailer %q: %w", code, domain.ErrNotFound)
	}
	l.retailers[code] = r
	return r, nil
}

func (l *lookup) campaign(ctx context.Context, name string) (*domain.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: campaign name is required", domain.ErrInvalidInput)
	}
	if c, ok := l.byName[name]; ok {
		return c, nil
	}
	c, err := l.campaigns.FindCampaignByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %q: %w", name, domain.ErrNotFound)
	}
	l.byName[name] = c
	return c, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", domain.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, s)
	}
	return d, nil
}

// parseDate returns the zero time for an empty cell; the ledger then
// stamps the installment with the current time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", domain.ErrInvalidInput, s)
}

