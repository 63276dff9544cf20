package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
	"agency-desk/internal/core/port/mocks"
)

type reportFixture struct {
	reports   *mocks.MockReportRepository
	campaigns *mocks.MockCampaignRepository
	visits    *mocks.MockVisitRepository
	files     *mocks.MockFileStore
	uc        *ReportUseCase
}

func newReportFixture(t *testing.T) *reportFixture {
	f := &reportFixture{
		reports:   mocks.NewMockReportRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		visits:    mocks.NewMockVisitRepository(t),
		files:     mocks.NewMockFileStore(t),
	}
	f.uc = NewReportUseCase(f.reports, f.campaigns, f.visits, f.files, discardLogger())
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func stockReport(campaignID, retailerID uuid.UUID) domain.Report {
	return domain.Report{
		CampaignID: campaignID,
		RetailerID: retailerID,
		Type:       domain.ReportStock,
		Stock: &domain.StockDetails{
			Brand: "Fizz", Product: "Cola 500ml", SKU: "FZ-500", StockType: domain.StockOpening, Quantity: 24,
		},
	}
}

func TestSubmitReportByEmployee(t *testing.T) {
	f := newReportFixture(t)
	c := &domain.Campaign{ID: uuid.New()}
	employeeID, retailerID := uuid.New(), uuid.New()
	visit := &domain.VisitSchedule{ID: uuid.New(), CampaignID: c.ID, EmployeeID: employeeID, RetailerID: retailerID}

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().IsLinked(mock.Anything, c.ID, employeeID, retailerID).Return(true, nil)
	f.visits.EXPECT().GetVisit(mock.Anything, visit.ID).Return(visit, nil)
	f.reports.EXPECT().CreateReport(mock.Anything, mock.AnythingOfType("*domain.Report")).Return(nil)

	in := stockReport(c.ID, retailerID)
	in.VisitID = &visit.ID
	r, err := f.uc.SubmitReport(context.Background(), domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID}, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, r.ID)
	require.Equal(t, domain.RoleEmployee, r.SubmittedBy)
	require.Equal(t, employeeID, *r.EmployeeID)
	require.Equal(t, fixedNow, r.CreatedAt)
}

func TestSubmitReportByRetailerReportsOnSelf(t *testing.T) {
	f := newReportFixture(t)
	c := &domain.Campaign{ID: uuid.New()}
	retailerID := uuid.New()

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().GetAssignment(mock.Anything, domain.RoleRetailer, c.ID, retailerID).
		Return(&domain.Assignment{Status: domain.AssignmentAccepted}, nil)
	f.reports.EXPECT().CreateReport(mock.Anything, mock.MatchedBy(func(r *domain.Report) bool {
		return r.RetailerID == retailerID && r.EmployeeID == nil
	})).Return(nil)

	in := domain.Report{
		CampaignID:    c.ID,
		RetailerID:    uuid.New(),
		Type:          domain.ReportWindowDisplay,
		WindowDisplay: &domain.WindowDisplayDetails{Images: []string{"https://cdn.test/a.jpg"}},
	}
	r, err := f.uc.SubmitReport(context.Background(), domain.Actor{Role: domain.RoleRetailer, ProfileID: retailerID}, in)
	require.NoError(t, err)
	require.Equal(t, retailerID, r.RetailerID)
}

func TestSubmitReportRejections(t *testing.T) {
	f := newReportFixture(t)
	c := &domain.Campaign{ID: uuid.New()}
	employee := domain.Actor{Role: domain.RoleEmployee, ProfileID: uuid.New()}
	retailerID := uuid.New()

	_, err := f.uc.SubmitReport(context.Background(), employee, domain.Report{CampaignID: c.ID, Type: domain.ReportOthers})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().IsLinked(mock.Anything, c.ID, employee.ProfileID, retailerID).Return(false, nil)

	_, err = f.uc.SubmitReport(context.Background(), employee, stockReport(c.ID, retailerID))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.SubmitReport(context.Background(), domain.Actor{Role: domain.RoleClient}, stockReport(c.ID, retailerID))
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListReportsClientScope(t *testing.T) {
	f := newReportFixture(t)
	clientID := uuid.New()
	c1, c2 := uuid.New(), uuid.New()
	actor := domain.Actor{Role: domain.RoleClient, ProfileID: clientID}

	f.campaigns.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{ClientID: &clientID}).
		Return([]domain.Campaign{{ID: c1}, {ID: c2}}, nil)
	f.reports.EXPECT().ListReports(mock.Anything, mock.MatchedBy(func(rf port.ReportFilter) bool {
		return len(rf.CampaignIDs) == 2 && rf.CampaignIDs[0] == c1
	})).Return([]domain.Report{}, nil)

	_, err := f.uc.ListReports(context.Background(), actor, port.ReportFilter{})
	require.NoError(t, err)

	foreign := uuid.New()
	_, err = f.uc.ListReports(context.Background(), actor, port.ReportFilter{CampaignID: &foreign})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetReportScope(t *testing.T) {
	f := newReportFixture(t)
	employeeID := uuid.New()
	r := &domain.Report{ID: uuid.New(), RetailerID: uuid.New(), EmployeeID: &employeeID}
	f.reports.EXPECT().GetReport(mock.Anything, r.ID).Return(r, nil)

	got, err := f.uc.GetReport(context.Background(), domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID}, r.ID)
	require.NoError(t, err)
	require.Equal(t, r, got)

	_, err = f.uc.GetReport(context.Background(), domain.Actor{Role: domain.RoleRetailer, ProfileID: uuid.New()}, r.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUploadFile(t *testing.T) {
	f := newReportFixture(t)

	f.files.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(name string) bool { return strings.HasSuffix(name, ".jpg") }), mock.Anything).
		RunAndReturn(func(_ context.Context, name string, r io.Reader) (string, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, "img", string(b))
			return "https://cdn.test/" + name, nil
		})

	url, err := f.uc.UploadFile(context.Background(), "Shelf.JPG", strings.NewReader("img"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://cdn.test/"))

	_, err = f.uc.UploadFile(context.Background(), "run.exe", strings.NewReader("x"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
