package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-desk/internal/core/domain"
)

// LedgerRepository persists retailer payment ledgers. It is an outbound
// port; implementations must load and store a RetailerBudget as one unit
// and recalculate its totals before every write.
type LedgerRepository interface {
	// GetBudget returns the ledger of a retailer or nil when none exists.
	GetBudget(ctx context.Context, retailerID uuid.UUID) (*domain.RetailerBudget, error)
	// ListBudgets returns ledgers matching the filter. With a campaign
	// filter each ledger only carries that campaign's entry and its totals
	// cover that entry alone.
	ListBudgets(ctx context.Context, filter BudgetFilter) ([]domain.RetailerBudget, error)
	// UpdateBudget locks the ledger of retailerID (creating an empty one if
	// absent), applies fn and persists the result atomically. Nothing is
	// written when fn returns an error.
	UpdateBudget(ctx context.Context, retailerID uuid.UUID, fn func(*domain.RetailerBudget) error) (*domain.RetailerBudget, error)
	// UTRExists reports whether any installment other than except uses utr.
	UTRExists(ctx context.Context, utr string, except uuid.UUID) (bool, error)
	// CampaignTotals sums the campaign entries of all retailers for a campaign.
	CampaignTotals(ctx context.Context, campaignID uuid.UUID) (*LedgerTotals, error)
}

// LedgerUseCase exposes ledger operations to inbound adapters.
type LedgerUseCase interface {
	SetAllocation(ctx context.Context, retailerID, campaignID uuid.UUID, amount decimal.Decimal) (*domain.RetailerBudget, error)
	AddInstallment(ctx context.Context, retailerID, campaignID uuid.UUID, in domain.InstallmentInput) (*domain.Installment, error)
	UpdateInstallment(ctx context.Context, retailerID, campaignID, installmentID uuid.UUID, patch domain.InstallmentPatch) (*domain.Installment, error)
	RemoveInstallment(ctx context.Context, retailerID, campaignID, installmentID uuid.UUID) error
	RemoveCampaignBudget(ctx context.Context, retailerID, campaignID uuid.UUID) error

	// GetBudget returns a retailer ledger. Retailers may only read their own.
	GetBudget(ctx context.Context, actor domain.Actor, retailerID uuid.UUID) (*domain.RetailerBudget, error)
	ListBudgets(ctx context.Context, actor domain.Actor, filter BudgetFilter) ([]domain.RetailerBudget, error)

	// ImportAllocations and ImportInstallments apply every row on its own
	// and report a partial-success summary.
	ImportAllocations(ctx context.Context, rows []AllocationRow) (*BulkResult, error)
	ImportInstallments(ctx context.Context, rows []InstallmentRow) (*BulkResult, error)

	ExportLedger(ctx context.Context, filter BudgetFilter) ([]LedgerExportRow, error)
}

type BudgetFilter struct {
	CampaignID *uuid.UUID
}

// LedgerTotals aggregates campaign entries across retailers.
type LedgerTotals struct {
	Retailers int64           `json:"retailers"`
	Allocated decimal.Decimal `json:"allocated"`
	Paid      decimal.Decimal `json:"paid"`
	Pending   decimal.Decimal `json:"pending"`
}

// AllocationRow is one line of a TCA upload sheet, kept as raw text so
// the use case can report per-row parse failures. Row is 1-based and
// counts the header line.
type AllocationRow struct {
	Row          int
	OutletCode   string
	CampaignName string
	Amount       string
}

// InstallmentRow is one line of an installment upload sheet.
type InstallmentRow struct {
	Row          int
	OutletCode   string
	CampaignName string
	Amount       string
	UTR          string
	Date         string
	Remarks      string
}

// RowFailure explains why a sheet row was skipped.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// BulkResult summarises a sheet import.
type BulkResult struct {
	Total    int          `json:"total"`
	Inserted int          `json:"inserted"`
	Failures []RowFailure `json:"failures"`
}

// LedgerExportRow is one campaign entry flattened for spreadsheets.
type LedgerExportRow struct {
	OutletCode   string
	ShopName     string
	CampaignName string
	Allocated    decimal.Decimal
	Paid         decimal.Decimal
	Pending      decimal.Decimal
	Installments int
}
