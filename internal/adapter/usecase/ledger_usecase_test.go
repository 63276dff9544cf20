package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
	"agency-desk/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// applyTo emulates LedgerRepository.UpdateBudget on an in-memory ledger.
func applyTo(b *domain.RetailerBudget) func(context.Context, uuid.UUID, func(*domain.RetailerBudget) error) (*domain.RetailerBudget, error) {
	return func(_ context.Context, _ uuid.UUID, fn func(*domain.RetailerBudget) error) (*domain.RetailerBudget, error) {
		if err := fn(b); err != nil {
			return nil, err
		}
		b.Recalculate()
		return b, nil
	}
}

type ledgerFixture struct {
	ledger    *mocks.MockLedgerRepository
	accounts  *mocks.MockAccountRepository
	campaigns *mocks.MockCampaignRepository
	mailer    *mocks.MockMailer
	uc        *LedgerUseCase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	f := &ledgerFixture{
		ledger:    mocks.NewMockLedgerRepository(t),
		accounts:  mocks.NewMockAccountRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		mailer:    mocks.NewMockMailer(t),
	}
	f.uc = NewLedgerUseCase(f.ledger, f.accounts, f.campaigns, f.mailer, discardLogger())
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestAddInstallmentNotifiesRetailer(t *testing.T) {
	f := newLedgerFixture(t)
	retailer := &domain.Retailer{ID: uuid.New(), OutletCode: "OUT-1", ShopName: "Sharma Stores", Email: "sharma@example.com"}
	campaign := &domain.Campaign{ID: uuid.New(), Name: "Summer Cooler"}
	budget := domain.NewRetailerBudget(retailer.ID, fixedNow)
	require.NoError(t, budget.SetAllocation(campaign.ID, decimal.NewFromInt(5000), fixedNow))

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailer.ID).Return(retailer, nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(campaign, nil)
	f.ledger.EXPECT().UTRExists(mock.Anything, "UTR0001", uuid.Nil).Return(false, nil)
	f.ledger.EXPECT().UpdateBudget(mock.Anything, retailer.ID, mock.Anything).RunAndReturn(applyTo(budget))
	f.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(m port.EmailMessage) bool {
			return m.Template == "payment_recorded" && m.To[0].Address == retailer.Email
		})).
		Return(nil)

	inst, err := f.uc.AddInstallment(context.Background(), retailer.ID, campaign.ID, domain.InstallmentInput{
		Amount: decimal.NewFromInt(1200),
		UTR:    " utr0001",
	})
	require.NoError(t, err)
	require.Equal(t, "UTR0001", inst.UTR)
	require.Equal(t, fixedNow, inst.PaidOn)

	cb := budget.Campaign(campaign.ID)
	require.True(t, cb.PaidAmount.Equal(decimal.NewFromInt(1200)))
	require.True(t, cb.PendingAmount.Equal(decimal.NewFromInt(3800)))
	require.True(t, budget.TotalPending.Equal(decimal.NewFromInt(3800)))
}

// TestAddInstallmentDuplicateUTR ensures nothing is written when the UTR
// already exists in another ledger.
func TestAddInstallmentDuplicateUTR(t *testing.T) {
	f := newLedgerFixture(t)
	retailer := &domain.Retailer{ID: uuid.New(), OutletCode: "OUT-2"}
	campaign := &domain.Campaign{ID: uuid.New(), Name: "Festive"}

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailer.ID).Return(retailer, nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(campaign, nil)
	f.ledger.EXPECT().UTRExists(mock.Anything, "HDFC123", uuid.Nil).Return(true, nil)

	_, err := f.uc.AddInstallment(context.Background(), retailer.ID, campaign.ID, domain.InstallmentInput{
		Amount: decimal.NewFromInt(10),
		UTR:    "hdfc123",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateUTR)
}

func TestSetAllocationUnknownCampaign(t *testing.T) {
	f := newLedgerFixture(t)
	retailer := &domain.Retailer{ID: uuid.New()}
	campaignID := uuid.New()

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailer.ID).Return(retailer, nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(nil, nil)

	_, err := f.uc.SetAllocation(context.Background(), retailer.ID, campaignID, decimal.NewFromInt(100))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInstallmentChecksUTRExcludingItself(t *testing.T) {
	f := newLedgerFixture(t)
	retailerID, campaignID := uuid.New(), uuid.New()
	budget := domain.NewRetailerBudget(retailerID, fixedNow)
	inst, err := budget.AddInstallment(campaignID, domain.InstallmentInput{Amount: decimal.NewFromInt(40), UTR: "OLD"}, fixedNow)
	require.NoError(t, err)

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailerID).Return(&domain.Retailer{ID: retailerID}, nil)
	f.ledger.EXPECT().UTRExists(mock.Anything, "NEW", inst.ID).Return(false, nil)
	f.ledger.EXPECT().UpdateBudget(mock.Anything, retailerID, mock.Anything).RunAndReturn(applyTo(budget))

	utr := "new"
	updated, err := f.uc.UpdateInstallment(context.Background(), retailerID, campaignID, inst.ID, domain.InstallmentPatch{UTR: &utr})
	require.NoError(t, err)
	require.Equal(t, "NEW", updated.UTR)
	require.Equal(t, "NEW", budget.Campaign(campaignID).Installments[0].UTR)
}

func TestRemoveCampaignBudget(t *testing.T) {
	f := newLedgerFixture(t)
	retailerID, campaignID := uuid.New(), uuid.New()
	budget := domain.NewRetailerBudget(retailerID, fixedNow)
	require.NoError(t, budget.SetAllocation(campaignID, decimal.NewFromInt(900), fixedNow))
	_, err := budget.AddInstallment(campaignID, domain.InstallmentInput{Amount: decimal.NewFromInt(300), UTR: "X1"}, fixedNow)
	require.NoError(t, err)

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailerID).Return(&domain.Retailer{ID: retailerID}, nil)
	f.ledger.EXPECT().UpdateBudget(mock.Anything, retailerID, mock.Anything).RunAndReturn(applyTo(budget))

	require.NoError(t, f.uc.RemoveCampaignBudget(context.Background(), retailerID, campaignID))
	require.Empty(t, budget.Campaigns)
	require.True(t, budget.TotalAllocated.IsZero())
	require.True(t, budget.TotalPaid.IsZero())
}

func TestRemoveInstallment(t *testing.T) {
	f := newLedgerFixture(t)
	retailerID, campaignID := uuid.New(), uuid.New()
	budget := domain.NewRetailerBudget(retailerID, fixedNow)
	require.NoError(t, budget.SetAllocation(campaignID, decimal.NewFromInt(1000), fixedNow))
	first, err := budget.AddInstallment(campaignID, domain.InstallmentInput{Amount: decimal.NewFromInt(300), UTR: "R1"}, fixedNow)
	require.NoError(t, err)
	_, err = budget.AddInstallment(campaignID, domain.InstallmentInput{Amount: decimal.NewFromInt(200), UTR: "R2"}, fixedNow)
	require.NoError(t, err)

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailerID).Return(&domain.Retailer{ID: retailerID}, nil)
	f.ledger.EXPECT().UpdateBudget(mock.Anything, retailerID, mock.Anything).RunAndReturn(applyTo(budget))

	require.NoError(t, f.uc.RemoveInstallment(context.Background(), retailerID, campaignID, first.ID))
	cb := budget.Campaign(campaignID)
	require.Len(t, cb.Installments, 1)
	require.Equal(t, "R2", cb.Installments[0].UTR)
	require.True(t, cb.PaidAmount.Equal(decimal.NewFromInt(200)))
	require.True(t, budget.TotalPending.Equal(decimal.NewFromInt(800)))
}

// TestLedgerMutationsUnknownRetailer checks that edits against a retailer
// that does not exist fail before any ledger is opened.
func TestLedgerMutationsUnknownRetailer(t *testing.T) {
	ctx := context.Background()
	campaignID, installmentID := uuid.New(), uuid.New()
	amount := decimal.NewFromInt(5)

	cases := map[string]func(uc *LedgerUseCase, retailerID uuid.UUID) error{
		"update installment": func(uc *LedgerUseCase, retailerID uuid.UUID) error {
			_, err := uc.UpdateInstallment(ctx, retailerID, campaignID, installmentID, domain.InstallmentPatch{Amount: &amount})
			return err
		},
		"remove installment": func(uc *LedgerUseCase, retailerID uuid.UUID) error {
			return uc.RemoveInstallment(ctx, retailerID, campaignID, installmentID)
		},
		"remove campaign budget": func(uc *LedgerUseCase, retailerID uuid.UUID) error {
			return uc.RemoveCampaignBudget(ctx, retailerID, campaignID)
		},
	}
	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			f := newLedgerFixture(t)
			retailerID := uuid.New()
			f.accounts.EXPECT().GetRetailer(mock.Anything, retailerID).Return(nil, nil)

			require.ErrorIs(t, call(f.uc, retailerID), domain.ErrNotFound)
			f.ledger.AssertNotCalled(t, "UpdateBudget", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGetBudgetScoping(t *testing.T) {
	f := newLedgerFixture(t)
	retailer := &domain.Retailer{ID: uuid.New()}

	other := domain.Actor{Role: domain.RoleRetailer, ProfileID: uuid.New()}
	_, err := f.uc.GetBudget(context.Background(), other, retailer.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.GetBudget(context.Background(), domain.Actor{Role: domain.RoleEmployee}, retailer.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	f.accounts.EXPECT().GetRetailer(mock.Anything, retailer.ID).Return(retailer, nil)
	f.ledger.EXPECT().GetBudget(mock.Anything, retailer.ID).Return(nil, nil)

	self := domain.Actor{Role: domain.RoleRetailer, ProfileID: retailer.ID}
	b, err := f.uc.GetBudget(context.Background(), self, retailer.ID)
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, b.ID)
	require.Equal(t, retailer.ID, b.RetailerID)
	require.True(t, b.TotalAllocated.IsZero())
	require.Empty(t, b.Campaigns)
}

func TestListBudgetsClientNeedsOwnCampaign(t *testing.T) {
	f := newLedgerFixture(t)
	clientID := uuid.New()
	actor := domain.Actor{Role: domain.RoleClient, ProfileID: clientID}

	_, err := f.uc.ListBudgets(context.Background(), actor, port.BudgetFilter{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	foreign := &domain.Campaign{ID: uuid.New(), ClientID: uuid.New()}
	f.campaigns.EXPECT().GetCampaign(mock.Anything, foreign.ID).Return(foreign, nil)
	_, err = f.uc.ListBudgets(context.Background(), actor, port.BudgetFilter{CampaignID: &foreign.ID})
	require.ErrorIs(t, err, domain.ErrForbidden)

	own := &domain.Campaign{ID: uuid.New(), ClientID: clientID}
	f.campaigns.EXPECT().GetCampaign(mock.Anything, own.ID).Return(own, nil)
	f.ledger.EXPECT().ListBudgets(mock.Anything, port.BudgetFilter{CampaignID: &own.ID}).Return([]domain.RetailerBudget{}, nil)
	list, err := f.uc.ListBudgets(context.Background(), actor, port.BudgetFilter{CampaignID: &own.ID})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListBudgetsAdmin(t *testing.T) {
	f := newLedgerFixture(t)
	campaignID := uuid.New()
	filter := port.BudgetFilter{CampaignID: &campaignID}
	budgets := []domain.RetailerBudget{
		*domain.NewRetailerBudget(uuid.New(), fixedNow),
		*domain.NewRetailerBudget(uuid.New(), fixedNow),
	}
	f.ledger.EXPECT().ListBudgets(mock.Anything, filter).Return(budgets, nil)

	list, err := f.uc.ListBudgets(context.Background(), domain.Actor{Role: domain.RoleAdmin}, filter)
	require.NoError(t, err)
	require.Equal(t, budgets, list)
	f.campaigns.AssertNotCalled(t, "GetCampaign", mock.Anything, mock.Anything)
}

// TestImportInstallmentsPartialSuccess feeds a sheet where only the first
// row is valid and checks every other row is reported with its reason.
func TestImportInstallmentsPartialSuccess(t *testing.T) {
	f := newLedgerFixture(t)
	retailer := &domain.Retailer{ID: uuid.New(), OutletCode: "R1"}
	campaign := &domain.Campaign{ID: uuid.New(), Name: "Diwali"}
	budget := domain.NewRetailerBudget(retailer.ID, fixedNow)

	f.accounts.EXPECT().FindRetailerByOutletCode(mock.Anything, "R1").Return(retailer, nil).Once()
	f.accounts.EXPECT().FindRetailerByOutletCode(mock.Anything, "NOPE").Return(nil, nil).Once()
	f.campaigns.EXPECT().FindCampaignByName(mock.Anything, "Diwali").Return(campaign, nil).Once()
	f.ledger.EXPECT().UTRExists(mock.Anything, "A1", uuid.Nil).Return(false, nil)
	f.ledger.EXPECT().UTRExists(mock.Anything, "B2", uuid.Nil).Return(true, nil)
	f.ledger.EXPECT().UpdateBudget(mock.Anything, retailer.ID, mock.Anything).RunAndReturn(applyTo(budget)).Once()

	rows := []port.InstallmentRow{
		{Row: 2, OutletCode: "R1", CampaignName: "Diwali", Amount: "1,000.50", UTR: "a1", Date: "2026-03-01"},
		{Row: 3, OutletCode: "R1", CampaignName: "Diwali", Amount: "abc", UTR: "C3"},
		{Row: 4, OutletCode: "NOPE", CampaignName: "Diwali", Amount: "10", UTR: "D4"},
		{Row: 5, OutletCode: "R1", CampaignName: "Diwali", Amount: "10", UTR: "A1 "},
		{Row: 6, OutletCode: "R1", CampaignName: "Diwali", Amount: "10", UTR: "B2", Date: "31/12/2026"},
		{Row: 7, OutletCode: "R1", CampaignName: "Diwali", Amount: "5", UTR: "E5", Date: "yesterday"},
	}
	res, err := f.uc.ImportInstallments(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, 6, res.Total)
	require.Equal(t, 1, res.Inserted)

	failed := make([]int, 0, len(res.Failures))
	for _, fl := range res.Failures {
		failed = append(failed, fl.Row)
		require.NotEmpty(t, fl.Reason)
	}
	require.Equal(t, []int{3, 4, 5, 6, 7}, failed)

	inst := budget.Campaign(campaign.ID).Installments
	require.Len(t, inst, 1)
	require.True(t, inst[0].Amount.Equal(decimal.RequireFromString("1000.50")))
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), inst[0].PaidOn)
}

func TestImportAllocations(t *testing.T) {
	f := newLedgerFixture(t)
	r1 := &domain.Retailer{ID: uuid.New(), OutletCode: "R1"}
	r2 := &domain.Retailer{ID: uuid.New(), OutletCode: "R2"}
	campaign := &domain.Campaign{ID: uuid.New(), Name: "Monsoon"}
	b1 := domain.NewRetailerBudget(r1.ID, fixedNow)
	b2 := domain.NewRetailerBudget(r2.ID, fixedNow)

	f.accounts.EXPECT().FindRetailerByOutletCode(mock.Anything, "R1").Return(r1, nil)
	f.accounts.EXPECT().FindRetailerByOutletCode(mock.Anything, "R2").Return(r2, nil)
	f.campaigns.EXPECT().FindCampaignByName(mock.Anything, "Monsoon").Return(campaign, nil)
	f.ledger.EXPECT().UpdateBudget(mock.Anything, r1.ID, mock.Anything).RunAndReturn(applyTo(b1))
	f.ledger.EXPECT().UpdateBudget(mock.Anything, r2.ID, mock.Anything).RunAndReturn(applyTo(b2))

	res, err := f.uc.ImportAllocations(context.Background(), []port.AllocationRow{
		{Row: 2, OutletCode: "R1", CampaignName: "Monsoon", Amount: "2500"},
		{Row: 3, OutletCode: "R2", CampaignName: "Monsoon", Amount: "-10"},
		{Row: 4, OutletCode: "R2", CampaignName: " ", Amount: "10"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Inserted)
	require.Len(t, res.Failures, 2)
	require.Equal(t, 3, res.Failures[0].Row)
	require.Contains(t, res.Failures[0].Reason, domain.ErrInvalidAmount.Error())
	require.Equal(t, 4, res.Failures[1].Row)

	require.True(t, b1.TotalAllocated.Equal(decimal.NewFromInt(2500)))
	require.Empty(t, b2.Campaigns)
}

func TestExportLedgerSortsRows(t *testing.T) {
	f := newLedgerFixture(t)
	ra := &domain.Retailer{ID: uuid.New(), OutletCode: "A-01", ShopName: "Alpha"}
	rb := &domain.Retailer{ID: uuid.New(), OutletCode: "B-01", ShopName: "Beta"}
	c1 := &domain.Campaign{ID: uuid.New(), Name: "Zeta"}
	c2 := &domain.Campaign{ID: uuid.New(), Name: "Eta"}

	ba := domain.NewRetailerBudget(ra.ID, fixedNow)
	require.NoError(t, ba.SetAllocation(c1.ID, decimal.NewFromInt(100), fixedNow))
	require.NoError(t, ba.SetAllocation(c2.ID, decimal.NewFromInt(200), fixedNow))
	_, err := ba.AddInstallment(c2.ID, domain.InstallmentInput{Amount: decimal.NewFromInt(50), UTR: "Q"}, fixedNow)
	require.NoError(t, err)
	bb := domain.NewRetailerBudget(rb.ID, fixedNow)
	require.NoError(t, bb.SetAllocation(c1.ID, decimal.NewFromInt(10), fixedNow))

	f.ledger.EXPECT().ListBudgets(mock.Anything, port.BudgetFilter{}).Return([]domain.RetailerBudget{*bb, *ba}, nil)
	f.accounts.EXPECT().GetRetailer(mock.Anything, ra.ID).Return(ra, nil)
	f.accounts.EXPECT().GetRetailer(mock.Anything, rb.ID).Return(rb, nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, c1.ID).Return(c1, nil).Once()
	f.campaigns.EXPECT().GetCampaign(mock.Anything, c2.ID).Return(c2, nil).Once()

	rows, err := f.uc.ExportLedger(context.Background(), port.BudgetFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "A-01", rows[0].OutletCode)
	require.Equal(t, "Eta", rows[0].CampaignName)
	require.Equal(t, 1, rows[0].Installments)
	require.True(t, rows[0].Pending.Equal(decimal.NewFromInt(150)))
	require.Equal(t, "Zeta", rows[1].CampaignName)
	require.Equal(t, "B-01", rows[2].OutletCode)
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2026-03-01", "01-03-2026", "01/03/2026", "2026/03/01", "01.03.2026"} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got, in)
	}

	got, err := parseDate(" ")
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = parseDate("20260301")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
