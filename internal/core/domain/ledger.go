package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment is one payment tranche against a campaign allocation.
type Installment struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	UTR       string          `json:"utr"`
	PaidOn    time.Time       `json:"paid_on"`
	Remarks   string          `json:"remarks"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CampaignBudget is the allocation (TCA) of one retailer for one campaign
// together with the installments paid against it. PaidAmount and
// PendingAmount are derived; see RetailerBudget.Recalculate.
type CampaignBudget struct {
	ID              uuid.UUID       `json:"id"`
	CampaignID      uuid.UUID       `json:"campaign_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	Installments    []Installment   `json:"installments"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RetailerBudget is the payment ledger of a single retailer. It is loaded
// and saved as a whole; totals are always recomputed from the installment
// list before persisting.
type RetailerBudget struct {
	ID             uuid.UUID        `json:"id"`
	RetailerID     uuid.UUID        `json:"retailer_id"`
	Campaigns      []CampaignBudget `json:"campaigns"`
	TotalAllocated decimal.Decimal  `json:"total_allocated"`
	TotalPaid      decimal.Decimal  `json:"total_paid"`
	TotalPending   decimal.Decimal  `json:"total_pending"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// InstallmentInput carries the fields of a new installment.
type InstallmentInput struct {
	Amount  decimal.Decimal
	UTR     string
	PaidOn  time.Time
	Remarks string
}

// InstallmentPatch carries the fields to change on an installment. Nil
// fields are left untouched.
type InstallmentPatch struct {
	Amount  *decimal.Decimal
	UTR     *string
	PaidOn  *time.Time
	Remarks *string
}

// MaxAmount is the largest amount a ledger column holds (NUMERIC(14,2)).
var MaxAmount = decimal.RequireFromString("999999999999.99")

// roundAmount rounds to paise and rejects amounts the ledger cannot store.
// Positivity is checked by the caller on the rounded value.
func roundAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if rounded.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s exceeds %s", ErrInvalidAmount, amount, MaxAmount)
	}
	return rounded, nil
}

// NormalizeUTR is the canonical form UTRs are stored and compared in.
func NormalizeUTR(utr string) string {
	return strings.ToUpper(strings.TrimSpace(utr))
}

// NewRetailerBudget returns an empty ledger for retailerID.
func NewRetailerBudget(retailerID uuid.UUID, now time.Time) *RetailerBudget {
	return &RetailerBudget{
		ID:         uuid.New(),
		RetailerID: retailerID,
		Campaigns:  []CampaignBudget{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Campaign returns the entry for campaignID, or nil.
func (b *RetailerBudget) Campaign(campaignID uuid.UUID) *CampaignBudget {
	for i := range b.Campaigns {
		if b.Campaigns[i].CampaignID == campaignID {
			return &b.Campaigns[i]
		}
	}
	return nil
}

func (b *RetailerBudget) ensureCampaign(campaignID uuid.UUID, now time.Time) *CampaignBudget {
	if cb := b.Campaign(campaignID); cb != nil {
		return cb
	}
	b.Campaigns = append(b.Campaigns, CampaignBudget{
		ID:           uuid.New(),
		CampaignID:   campaignID,
		Installments: []Installment{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return &b.Campaigns[len(b.Campaigns)-1]
}

// HasUTR reports whether utr is used by any installment of this ledger
// other than except.
func (b *RetailerBudget) HasUTR(utr string, except uuid.UUID) bool {
	utr = NormalizeUTR(utr)
	for _, cb := range b.Campaigns {
		for _, in := range cb.Installments {
			if in.ID != except && in.UTR == utr {
				return true
			}
		}
	}
	return false
}

// SetAllocation sets the TCA of a campaign, creating the entry on first use.
func (b *RetailerBudget) SetAllocation(campaignID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	amount, err := roundAmount(amount)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: allocation must not be negative", ErrInvalidAmount)
	}
	cb := b.ensureCampaign(campaignID, now)
	cb.AllocatedAmount = amount
	cb.UpdatedAt = now
	b.touch(now)
	return nil
}

// AddInstallment appends a payment to a campaign entry, creating the entry
// with a zero allocation on first payment.
func (b *RetailerBudget) AddInstallment(campaignID uuid.UUID, in InstallmentInput, now time.Time) (Installment, error) {
	amount, err := roundAmount(in.Amount)
	if err != nil {
		return Installment{}, err
	}
	if !amount.IsPositive() {
		return Installment{}, fmt.Errorf("%w: installment amount must be positive", ErrInvalidAmount)
	}
	utr := NormalizeUTR(in.UTR)
	if utr == "" {
		return Installment{}, fmt.Errorf("%w: utr is required", ErrInvalidInput)
	}
	if b.HasUTR(utr, uuid.Nil) {
		return Installment{}, fmt.Errorf("%w: %s", ErrDuplicateUTR, utr)
	}
	paidOn := in.PaidOn
	if paidOn.IsZero() {
		paidOn = now
	}
	inst := Installment{
		ID:        uuid.New(),
		Amount:    amount,
		UTR:       utr,
		PaidOn:    paidOn,
		Remarks:   strings.TrimSpace(in.Remarks),
		CreatedAt: now,
		UpdatedAt: now,
	}
	cb := b.ensureCampaign(campaignID, now)
	cb.Installments = append(cb.Installments, inst)
	cb.UpdatedAt = now
	b.touch(now)
	return inst, nil
}

// UpdateInstallment applies patch to an existing installment.
func (b *RetailerBudget) UpdateInstallment(campaignID, installmentID uuid.UUID, patch InstallmentPatch, now time.Time) (Installment, error) {
	cb := b.Campaign(campaignID)
	if cb == nil {
		return Installment{}, fmt.Errorf("campaign budget: %w", ErrNotFound)
	}
	idx := cb.installmentIndex(installmentID)
	if idx < 0 {
		return Installment{}, fmt.Errorf("installment: %w", ErrNotFound)
	}
	inst := cb.Installments[idx]
	if patch.Amount != nil {
		amount, err := roundAmount(*patch.Amount)
		if err != nil {
			return Installment{}, err
		}
		if !amount.IsPositive() {
			return Installment{}, fmt.Errorf("%w: installment amount must be positive", ErrInvalidAmount)
		}
		inst.Amount = amount
	}
	if patch.UTR != nil {
		utr := NormalizeUTR(*patch.UTR)
		if utr == "" {
			return Installment{}, fmt.Errorf("%w: utr is required", ErrInvalidInput)
		}
		if b.HasUTR(utr, installmentID) {
			return Installment{}, fmt.Errorf("%w: %s", ErrDuplicateUTR, utr)
		}
		inst.UTR = utr
	}
	if patch.PaidOn != nil {
		inst.PaidOn = *patch.PaidOn
	}
	if patch.Remarks != nil {
		inst.Remarks = strings.TrimSpace(*patch.Remarks)
	}
	inst.UpdatedAt = now
	cb.Installments[idx] = inst
	cb.UpdatedAt = now
	b.touch(now)
	return inst, nil
}

// RemoveInstallment deletes a single installment.
func (b *RetailerBudget) RemoveInstallment(campaignID, installmentID uuid.UUID, now time.Time) error {
	cb := b.Campaign(campaignID)
	if cb == nil {
		return fmt.Errorf("campaign budget: %w", ErrNotFound)
	}
	idx := cb.installmentIndex(installmentID)
	if idx < 0 {
		return fmt.Errorf("installment: %w", ErrNotFound)
	}
	cb.Installments = append(cb.Installments[:idx], cb.Installments[idx+1:]...)
	cb.UpdatedAt = now
	b.touch(now)
	return nil
}

// RemoveCampaign drops a campaign entry along with all of its installments.
func (b *RetailerBudget) RemoveCampaign(campaignID uuid.UUID, now time.Time) error {
	for i := range b.Campaigns {
		if b.Campaigns[i].CampaignID == campaignID {
			b.Campaigns = append(b.Campaigns[:i], b.Campaigns[i+1:]...)
			b.touch(now)
			return nil
		}
	}
	return fmt.Errorf("campaign budget: %w", ErrNotFound)
}

// Recalculate recomputes every derived amount from the installment list.
// Repositories call it right before persisting the ledger.
func (b *RetailerBudget) Recalculate() {
	b.TotalAllocated = decimal.Zero
	b.TotalPaid = decimal.Zero
	b.TotalPending = decimal.Zero
	for i := range b.Campaigns {
		cb := &b.Campaigns[i]
		paid := decimal.Zero
		for _, in := range cb.Installments {
			paid = paid.Add(in.Amount)
		}
		cb.PaidAmount = paid
		cb.PendingAmount = cb.AllocatedAmount.Sub(paid)

		b.TotalAllocated = b.TotalAllocated.Add(cb.AllocatedAmount)
		b.TotalPaid = b.TotalPaid.Add(cb.PaidAmount)
		b.TotalPending = b.TotalPending.Add(cb.PendingAmount)
	}
}

func (b *RetailerBudget) touch(now time.Time) {
	b.UpdatedAt = now
	b.Recalculate()
}

func (cb *CampaignBudget) installmentIndex(id uuid.UUID) int {
	for i := range cb.Installments {
		if cb.Installments[i].ID == id {
			return i
		}
	}
	return -1
}
