package usecase

import (
	"context"
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

type campaignFixture struct {
	campaigns *mocks.MockCampaignRepository
	accounts  *mocks.MockAccountRepository
	visits    *mocks.MockVisitRepository
	reports   *mocks.MockReportRepository
	ledger    *mocks.MockLedgerRepository
	mailer    *mocks.MockMailer
	uc        *CampaignUseCase
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	f := &campaignFixture{
		campaigns: mocks.NewMockCampaignRepository(t),
		accounts:  mocks.NewMockAccountRepository(t),
		visits:    mocks.NewMockVisitRepository(t),
		reports:   mocks.NewMockReportRepository(t),
		ledger:    mocks.NewMockLedgerRepository(t),
		mailer:    mocks.NewMockMailer(t),
	}
	f.uc = NewCampaignUseCase(f.campaigns, f.accounts, f.visits, f.reports, f.ledger, f.mailer, discardLogger())
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestCreateCampaign(t *testing.T) {
	f := newCampaignFixture(t)
	client := &domain.Client{ID: uuid.New(), Organization: "Acme Beverages"}
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	f.accounts.EXPECT().GetClient(mock.Anything, client.ID).Return(client, nil)
	f.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c, err := f.uc.CreateCampaign(context.Background(), port.CampaignInput{
		ClientID:  client.ID,
		Name:      "  Summer Cooler ",
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.Equal(t, "Summer Cooler", c.Name)
	require.Equal(t, domain.CampaignActive, c.Status)
	require.NotNil(t, c.States)
	require.Equal(t, fixedNow, c.CreatedAt)
}

func TestCreateCampaignRejectsBadInput(t *testing.T) {
	f := newCampaignFixture(t)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.CreateCampaign(context.Background(), port.CampaignInput{Name: ""})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateCampaign(context.Background(), port.CampaignInput{
		Name: "Backwards", StartDate: start, EndDate: start.AddDate(0, 0, -1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateCampaign(context.Background(), port.CampaignInput{Name: "X", Status: "paused"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	missing := uuid.New()
	f.accounts.EXPECT().GetClient(mock.Anything, missing).Return(nil, nil)
	_, err = f.uc.CreateCampaign(context.Background(), port.CampaignInput{ClientID: missing, Name: "Orphan"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCampaignsScopesByRole(t *testing.T) {
	f := newCampaignFixture(t)
	profile := uuid.New()

	f.campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(nil, nil).Once()
	f.campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{ClientID: &profile}).Return(nil, nil).Once()
	f.campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{EmployeeID: &profile}).Return(nil, nil).Once()
	f.campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{RetailerID: &profile}).Return(nil, nil).Once()

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleClient, domain.RoleEmployee, domain.RoleRetailer} {
		_, err := f.uc.ListCampaigns(context.Background(), domain.Actor{Role: role, ProfileID: profile})
		require.NoError(t, err)
	}
}

// TestAssignRetailersMailsOnlyNewParties assigns one fresh retailer and one
// already assigned retailer, passing the fresh one twice.
func TestAssignRetailersMailsOnlyNewParties(t *testing.T) {
	f := newCampaignFixture(t)
	c := &domain.Campaign{ID: uuid.New(), Name: "Monsoon"}
	fresh := &domain.Retailer{ID: uuid.New(), ShopName: "Fresh Mart", Email: "fresh@shop.test"}
	old := &domain.Retailer{ID: uuid.New(), ShopName: "Old Mart", Email: "old@shop.test"}

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.accounts.EXPECT().GetRetailer(mock.Anything, fresh.ID).Return(fresh, nil).Once()
	f.accounts.EXPECT().GetRetailer(mock.Anything, old.ID).Return(old, nil).Once()
	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleRetailer, c.ID, fresh.ID).Return(nil, nil)
	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleRetailer, c.ID, old.ID).
		Return(&domain.Assignment{CampaignID: c.ID, PartyID: old.ID, Status: domain.AssignmentAccepted}, nil)
	f.campaigns.EXPECT().
		AddAssignments(mock.Anything, domain.RoleRetailer, c.ID, []uuid.UUID{fresh.ID, old.ID}, fixedNow).
		Return(int64(1), nil)
	f.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(m port.EmailMessage) bool {
			return m.Template == "campaign_assigned" && len(m.To) == 1 && m.To[0].Address == fresh.Email
		})).
		Return(nil).Once()

	n, err := f.uc.AssignRetailers(context.Background(), c.ID, []uuid.UUID{fresh.ID, fresh.ID, old.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestAssignEmployeesUnknownParty(t *testing.T) {
	f := newCampaignFixture(t)
	c := &domain.Campaign{ID: uuid.New()}
	ghost := uuid.New()

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.accounts.EXPECT().GetEmployee(mock.Anything, ghost).Return(nil, nil)

	_, err := f.uc.AssignEmployees(context.Background(), c.ID, []uuid.UUID{ghost})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRespond(t *testing.T) {
	f := newCampaignFixture(t)
	campaignID, employeeID := uuid.New(), uuid.New()
	actor := domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID}
	pending := &domain.Assignment{CampaignID: campaignID, PartyID: employeeID, Status: domain.AssignmentPending}

	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleEmployee, campaignID, employeeID).Return(pending, nil)
	f.campaigns.EXPECT().SaveAssignment(mock.Anything, domain.RoleEmployee, pending).Return(nil)

	a, err := f.uc.Respond(context.Background(), actor, campaignID, domain.AssignmentAccepted)
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentAccepted, a.Status)
	require.NotNil(t, a.RespondedAt)

	// the assignment is no longer pending
	_, err = f.uc.Respond(context.Background(), actor, campaignID, domain.AssignmentRejected)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.Respond(context.Background(), domain.Actor{Role: domain.RoleClient}, campaignID, domain.AssignmentAccepted)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLinkRetailersRequiresAssignedParties(t *testing.T) {
	f := newCampaignFixture(t)
	c := &domain.Campaign{ID: uuid.New()}
	employeeID, linked, stranger := uuid.New(), uuid.New(), uuid.New()

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleEmployee, c.ID, employeeID).
		Return(&domain.Assignment{Status: domain.AssignmentAccepted}, nil)
	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleRetailer, c.ID, linked).
		Return(&domain.Assignment{Status: domain.AssignmentPending}, nil)
	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleRetailer, c.ID, stranger).Return(nil, nil)

	_, err := f.uc.LinkRetailers(context.Background(), c.ID, employeeID, []uuid.UUID{linked, stranger})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	f.campaigns.EXPECT().LinkRetailers(mock.Anything, c.ID, employeeID, []uuid.UUID{linked}).Return(int64(1), nil)
	n, err := f.uc.LinkRetailers(context.Background(), c.ID, employeeID, []uuid.UUID{linked})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestOverview(t *testing.T) {
	f := newCampaignFixture(t)
	clientID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), ClientID: clientID, Name: "Festive"}

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().ListAssignments(mock.Anything, domain.RoleEmployee, c.ID).Return([]domain.Assignment{
		{Status: domain.AssignmentAccepted}, {Status: domain.AssignmentAccepted}, {Status: domain.AssignmentPending},
	}, nil)
	f.campaigns.EXPECT().ListAssignments(mock.Anything, domain.RoleRetailer, c.ID).Return([]domain.Assignment{
		{Status: domain.AssignmentRejected},
	}, nil)
	f.visits.EXPECT().CountVisitsByStatus(mock.Anything, c.ID).
		Return(map[domain.VisitStatus]int64{domain.VisitCompleted: 4}, nil)
	f.reports.EXPECT().CountReportsByType(mock.Anything, c.ID).
		Return(map[domain.ReportType]int64{domain.ReportStock: 2}, nil)
	f.ledger.EXPECT().CampaignTotals(mock.Anything, c.ID).Return(&port.LedgerTotals{
		Retailers: 1,
		Allocated: decimal.NewFromInt(1000),
		Paid:      decimal.NewFromInt(400),
		Pending:   decimal.NewFromInt(600),
	}, nil)

	ov, err := f.uc.Overview(context.Background(), domain.Actor{Role: domain.RoleClient, ProfileID: clientID}, c.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), ov.Employees[domain.AssignmentAccepted])
	require.Equal(t, int64(1), ov.Employees[domain.AssignmentPending])
	require.Equal(t, int64(1), ov.Retailers[domain.AssignmentRejected])
	require.Equal(t, int64(4), ov.Visits[domain.VisitCompleted])
	require.Equal(t, int64(2), ov.Reports[domain.ReportStock])
	require.True(t, ov.Ledger.Pending.Equal(decimal.NewFromInt(600)))

	_, err = f.uc.Overview(context.Background(), domain.Actor{Role: domain.RoleClient, ProfileID: uuid.New()}, c.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Overview(context.Background(), domain.Actor{Role: domain.RoleEmployee}, c.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
