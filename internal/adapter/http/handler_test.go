package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
	"agency-desk/internal/core/port/mocks"
)

type fixture struct {
	tokens    *mocks.MockTokenService
	auth      *mocks.MockAuthUseCase
	campaigns *mocks.MockCampaignUseCase
	ledger    *mocks.MockLedgerUseCase
	visits    *mocks.MockVisitUseCase
	reports   *mocks.MockReportUseCase
	router    http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tokens:    mocks.NewMockTokenService(t),
		auth:      mocks.NewMockAuthUseCase(t),
		campaigns: mocks.NewMockCampaignUseCase(t),
		ledger:    mocks.NewMockLedgerUseCase(t),
		visits:    mocks.NewMockVisitUseCase(t),
		reports:   mocks.NewMockReportUseCase(t),
	}
	h := NewHandler(Services{
		Auth:      f.auth,
		Tokens:    f.tokens,
		Campaigns: f.campaigns,
		Ledger:    f.ledger,
		Visits:    f.visits,
		Reports:   f.reports,
	}, Options{AllowedOrigins: []string{"http://localhost:5173"}, MaxUploadBytes: 1 << 20},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.router = h.Router()
	return f
}

// as registers a token for an actor and returns it.
func (f *fixture) as(role domain.Role, profileID uuid.UUID) string {
	token := string(role) + "-" + profileID.String()
	f.tokens.EXPECT().Parse(token).Return(domain.Actor{UserID: uuid.New(), Role: role, ProfileID: profileID}, nil).Maybe()
	return token
}

func (f *fixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	return f.send(req, token)
}

func (f *fixture) send(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthNeedsNoToken(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.tokens.EXPECT().Parse("stale").Return(domain.Actor{}, domain.ErrInvalidCredential)
	rec = f.do(http.MethodGet, "/api/v1/me", "stale", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Fields, "email")
	assert.Equal(t, "password is a required field", body.Fields["password"])

	f.auth.EXPECT().Login(mock.Anything, "ops@example.com", "wrong-pass").Return(nil, domain.ErrInvalidCredential)
	rec = f.do(http.MethodPost, "/api/v1/auth/login", "", loginReq{Email: "ops@example.com", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	exp := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	f.auth.EXPECT().Login(mock.Anything, "ops@example.com", "right-pass").
		Return(&port.LoginResult{Token: "tok", ExpiresAt: exp, User: &domain.User{Role: domain.RoleAdmin}}, nil)
	rec = f.do(http.MethodPost, "/api/v1/auth/login", "", loginReq{Email: "ops@example.com", Password: "right-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", decodeBody[port.LoginResult](t, rec).Token)
}

func TestCreateUserNeedsProfile(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)

	rec := f.do(http.MethodPost, "/api/v1/users", admin, map[string]any{
		"name": "Sharma", "email": "sharma@example.com", "password": "long-enough", "role": "retailer",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorBody](t, rec).Fields, "retailer")

	f.auth.EXPECT().CreateAccount(mock.Anything, mock.MatchedBy(func(req port.CreateAccountReq) bool {
		return req.Role == domain.RoleRetailer && req.Profile.Retailer != nil && req.Profile.Retailer.OutletCode == "OUT-009"
	})).Return(&domain.User{ID: uuid.New(), Role: domain.RoleRetailer}, nil)
	rec = f.do(http.MethodPost, "/api/v1/users", admin, map[string]any{
		"name": "Sharma", "email": "sharma@example.com", "password": "long-enough", "role": "retailer",
		"retailer": map[string]string{"outlet_code": "OUT-009", "shop_name": "Sharma Stores"},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	f := newFixture(t)
	retailer := f.as(domain.RoleRetailer, uuid.New())

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/campaigns"},
		{http.MethodPost, "/api/v1/users"},
		{http.MethodGet, "/api/v1/budgets/export"},
		{http.MethodGet, "/api/v1/visits"},
		{http.MethodDelete, "/api/v1/reports/" + uuid.NewString()},
		{http.MethodPut, fmt.Sprintf("/api/v1/budgets/%s/campaigns/%s/allocation", uuid.New(), uuid.New())},
	} {
		rec := f.do(tc.method, tc.path, retailer, map[string]any{})
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)
	clientID := uuid.New()

	f.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(in port.CampaignInput) bool {
		return in.ClientID == clientID && in.Name == "Summer Cooler" &&
			in.StartDate.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			in.EndDate.Equal(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.Campaign{ID: uuid.New(), Name: "Summer Cooler"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns", admin, map[string]any{
		"client_id":  clientID,
		"name":       "Summer Cooler",
		"states":     []string{"Maharashtra"},
		"start_date": "2026-04-01",
		"end_date":   "2026-06-30",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Summer Cooler", decodeBody[domain.Campaign](t, rec).Name)

	rec = f.do(http.MethodPost, "/api/v1/campaigns", admin, map[string]any{
		"client_id": clientID, "name": "  ", "start_date": "01/04/2026", "end_date": "2026-06-30",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignRetailers(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)
	campaignID, r1, r2 := uuid.New(), uuid.New(), uuid.New()

	f.campaigns.EXPECT().AssignRetailers(mock.Anything, campaignID, []uuid.UUID{r1, r2}).Return(1, nil)
	rec := f.do(http.MethodPost, "/api/v1/campaigns/"+campaignID.String()+"/retailers", admin, idsReq{IDs: []uuid.UUID{r1, r2}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"added":1}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/v1/campaigns/nope/retailers", admin, idsReq{IDs: []uuid.UUID{r1}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondToCampaign(t *testing.T) {
	f := newFixture(t)
	employeeID, campaignID := uuid.New(), uuid.New()
	employee := f.as(domain.RoleEmployee, employeeID)

	f.campaigns.EXPECT().Respond(mock.Anything, mock.MatchedBy(func(a domain.Actor) bool { return a.ProfileID == employeeID }),
		campaignID, domain.AssignmentAccepted).
		Return(nil, fmt.Errorf("respond: %w", domain.ErrInvalidTransition))

	rec := f.do(http.MethodPut, "/api/v1/campaigns/"+campaignID.String()+"/response", employee, respondReq{Status: "accepted"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddInstallment(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)
	retailerID, campaignID := uuid.New(), uuid.New()
	path := fmt.Sprintf("/api/v1/budgets/%s/campaigns/%s/installments", retailerID, campaignID)

	f.ledger.EXPECT().AddInstallment(mock.Anything, retailerID, campaignID, mock.MatchedBy(func(in domain.InstallmentInput) bool {
		return in.UTR == "UTR1" && in.Amount.Equal(decimal.RequireFromString("1500.50")) &&
			in.PaidOn.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.Installment{ID: uuid.New(), UTR: "UTR1"}, nil).Once()

	rec := f.do(http.MethodPost, path, admin, map[string]any{"amount": "1500.50", "utr": "UTR1", "paid_on": "2026-03-14"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	f.ledger.EXPECT().AddInstallment(mock.Anything, retailerID, campaignID, mock.Anything).
		Return(nil, fmt.Errorf("%w: UTR2", domain.ErrDuplicateUTR)).Once()
	rec = f.do(http.MethodPost, path, admin, map[string]any{"amount": 10, "utr": "UTR2", "paid_on": "2026-03-14"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	f.ledger.EXPECT().AddInstallment(mock.Anything, retailerID, campaignID, mock.Anything).
		Return(nil, domain.ErrInvalidAmount).Once()
	rec = f.do(http.MethodPost, path, admin, map[string]any{"amount": -5, "utr": "UTR3", "paid_on": "2026-03-14"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, path, admin, map[string]any{"amount": 10, "paid_on": "2026-03-14"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "utr cannot be blank", decodeBody[errorBody](t, rec).Fields["utr"])
}

func TestUpdateInstallmentPatch(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)
	retailerID, campaignID, instID := uuid.New(), uuid.New(), uuid.New()

	f.ledger.EXPECT().UpdateInstallment(mock.Anything, retailerID, campaignID, instID, mock.MatchedBy(func(p domain.InstallmentPatch) bool {
		return p.Amount == nil && p.UTR != nil && *p.UTR == "UTR9" && p.PaidOn == nil && p.Remarks == nil
	})).Return(&domain.Installment{ID: instID, UTR: "UTR9"}, nil)

	rec := f.do(http.MethodPatch, fmt.Sprintf("/api/v1/budgets/%s/campaigns/%s/installments/%s", retailerID, campaignID, instID),
		admin, map[string]string{"utr": "UTR9"})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestBudgetsForRetailer(t *testing.T) {
	f := newFixture(t)
	retailerID := uuid.New()
	retailer := f.as(domain.RoleRetailer, retailerID)

	f.ledger.EXPECT().GetBudget(mock.Anything, mock.Anything, retailerID).
		Return(&domain.RetailerBudget{RetailerID: retailerID, Campaigns: []domain.CampaignBudget{}}, nil)
	rec := f.do(http.MethodGet, "/api/v1/budgets/me", retailer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, retailerID, decodeBody[domain.RetailerBudget](t, rec).RetailerID)

	other := uuid.New()
	f.ledger.EXPECT().GetBudget(mock.Anything, mock.Anything, other).Return(nil, domain.ErrForbidden)
	rec = f.do(http.MethodGet, "/api/v1/budgets/"+other.String(), retailer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/budgets", retailer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListBudgetsFilter(t *testing.T) {
	f := newFixture(t)
	clientID, campaignID := uuid.New(), uuid.New()
	client := f.as(domain.RoleClient, clientID)

	f.ledger.EXPECT().ListBudgets(mock.Anything, mock.Anything, port.BudgetFilter{CampaignID: &campaignID}).
		Return([]domain.RetailerBudget{}, nil)
	rec := f.do(http.MethodGet, "/api/v1/budgets?campaign_id="+campaignID.String(), client, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/budgets?campaign_id=x", client, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportInstallments(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)

	sheet := "Outlet Code,Campaign Name,Amount,UTR,Date,Remarks\n" +
		"OUT-001,Summer Cooler,1000,UTR1,2026-03-01,\n" +
		"OUT-404,Summer Cooler,500,UTR2,2026-03-02,late\n"

	f.ledger.EXPECT().ImportInstallments(mock.Anything, mock.MatchedBy(func(rows []port.InstallmentRow) bool {
		return len(rows) == 2 && rows[0].Row == 2 && rows[1].OutletCode == "OUT-404" && rows[1].Remarks == "late"
	})).Return(&port.BulkResult{Total: 2, Inserted: 1, Failures: []port.RowFailure{{Row: 3, Reason: "retailer OUT-404: not found"}}}, nil)

	rec := f.send(multipartRequest(t, "/api/v1/budgets/import/installments", "payments.csv", []byte(sheet)), admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decodeBody[port.BulkResult](t, rec)
	assert.Equal(t, 1, res.Inserted)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, 3, res.Failures[0].Row)

	rec = f.send(multipartRequest(t, "/api/v1/budgets/import/installments", "payments.csv", []byte("Outlet Code\nOUT-001\n")), admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets/import/allocations", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec = f.send(req, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportRejectsLargeUpload(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)

	big := bytes.Repeat([]byte("a"), 2<<20)
	rec := f.send(multipartRequest(t, "/api/v1/budgets/import/allocations", "tca.csv", big), admin)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExportLedger(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)

	f.ledger.EXPECT().ExportLedger(mock.Anything, port.BudgetFilter{}).Return([]port.LedgerExportRow{{
		OutletCode: "OUT-001", ShopName: "Sharma Stores", CampaignName: "Summer Cooler",
		Allocated: decimal.NewFromInt(5000), Paid: decimal.NewFromInt(1000), Pending: decimal.NewFromInt(4000), Installments: 1,
	}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/budgets/export", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ledger-")

	wb, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows(wb.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "OUT-001", rows[1][0])
}

func TestImportTemplate(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)

	rec := f.do(http.MethodGet, "/api/v1/budgets/templates/installments", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	wb, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows(wb.GetSheetName(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlet Code", "Campaign Name", "Amount", "UTR", "Date", "Remarks"}, rows[0])

	rec = f.do(http.MethodGet, "/api/v1/budgets/templates/other", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListVisitsQuery(t *testing.T) {
	f := newFixture(t)
	employeeID := uuid.New()
	employee := f.as(domain.RoleEmployee, employeeID)

	f.visits.EXPECT().ListVisits(mock.Anything, mock.Anything, mock.MatchedBy(func(vf port.VisitFilter) bool {
		return vf.Status != nil && *vf.Status == domain.VisitScheduled &&
			vf.From != nil && vf.From.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			vf.To != nil && vf.To.Equal(time.Date(2026, 4, 30, 23, 59, 59, 999999999, time.UTC))
	})).Return([]domain.VisitSchedule{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/visits?status=scheduled&from=2026-04-01&to=2026-04-30", employee, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/visits?from=yesterday", employee, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid 'from' timestamp")
}

func TestSubmitReport(t *testing.T) {
	f := newFixture(t)
	retailerID, campaignID := uuid.New(), uuid.New()
	retailer := f.as(domain.RoleRetailer, retailerID)

	rec := f.do(http.MethodPost, "/api/v1/reports", retailer, map[string]any{"campaign_id": campaignID, "type": "stock"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorBody](t, rec).Fields, "stock")

	f.reports.EXPECT().SubmitReport(mock.Anything, mock.Anything, mock.MatchedBy(func(r domain.Report) bool {
		return r.Type == domain.ReportStock && r.Stock != nil && r.Stock.Quantity == 12
	})).Return(&domain.Report{ID: uuid.New(), Type: domain.ReportStock}, nil)

	rec = f.do(http.MethodPost, "/api/v1/reports", retailer, map[string]any{
		"campaign_id": campaignID, "type": "stock",
		"stock": map[string]any{"product": "Cola 500ml", "stock_type": "opening", "quantity": 12},
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestUpload(t *testing.T) {
	f := newFixture(t)
	employee := f.as(domain.RoleEmployee, uuid.New())

	f.reports.EXPECT().UploadFile(mock.Anything, "shelf.jpg", mock.Anything).Return("http://cdn/shelf.jpg", nil)
	rec := f.send(multipartRequest(t, "/api/v1/uploads", "shelf.jpg", []byte{0xff, 0xd8}), employee)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"http://cdn/shelf.jpg"}`, rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("retailer: %w", domain.ErrNotFound):   http.StatusNotFound,
		domain.ErrForbidden:                              http.StatusForbidden,
		domain.ErrInvalidCredential:                      http.StatusUnauthorized,
		domain.ErrDuplicateUTR:                           http.StatusConflict,
		domain.ErrConflict:                               http.StatusConflict,
		domain.ErrInvalidTransition:                      http.StatusUnprocessableEntity,
		domain.ErrInvalidInput:                           http.StatusBadRequest,
		fmt.Errorf("row 3: %w", domain.ErrInvalidAmount): http.StatusBadRequest,
		errors.New("connection reset"):                   http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusOf(err), err.Error())
	}
}

func TestInternalErrorIsHidden(t *testing.T) {
	f := newFixture(t)
	admin := f.as(domain.RoleAdmin, uuid.Nil)

	f.auth.EXPECT().ListClients(mock.Anything).Return(nil, errors.New("pool closed"))
	rec := f.do(http.MethodGet, "/api/v1/clients", admin, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
