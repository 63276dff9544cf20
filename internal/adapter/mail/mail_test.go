package mail

import (
	"bytes"
	"context"
	"log/slog"
	"net/mail"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-desk/internal/config/configs"
	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

var testCfg = configs.Mail{
	Provider:    configs.MailConsole,
	FromName:    "Agency Desk",
	FromAddress: "no-reply@example.com",
	AppName:     "Agency Desk",
}

func paymentData() map[string]any {
	paid := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return map[string]any{
		"Retailer": &domain.Retailer{ShopName: "Sharma & Sons", OutletCode: "OUT-001"},
		"Campaign": &domain.Campaign{Name: "Summer Cooler"},
		"Installment": domain.Installment{
			ID:     uuid.New(),
			Amount: decimal.RequireFromString("1500"),
			UTR:    "UTR123",
			PaidOn: paid,
		},
		"Budget": &domain.CampaignBudget{
			AllocatedAmount: decimal.RequireFromString("5000"),
			PaidAmount:      decimal.RequireFromString("1500"),
			PendingAmount:   decimal.RequireFromString("3500"),
		},
	}
}

func TestRenderPaymentRecorded(t *testing.T) {
	r, err := newRenderer("Agency Desk")
	require.NoError(t, err)

	text, html, err := r.render("payment_recorded", paymentData())
	require.NoError(t, err)

	assert.Contains(t, text, "Hello Sharma & Sons")
	assert.Contains(t, text, "Rs. 1500.00")
	assert.Contains(t, text, "14 Mar 2026")
	assert.Contains(t, text, "Rs. 3500.00")
	assert.NotContains(t, text, "Remarks")

	assert.Contains(t, html, "Sharma &amp; Sons")
	assert.Contains(t, html, "UTR123")
}

func TestRenderCampaignAssigned(t *testing.T) {
	r, err := newRenderer("Agency Desk")
	require.NoError(t, err)

	text, html, err := r.render("campaign_assigned", map[string]any{
		"Name": "Ravi",
		"Role": "employee",
		"Campaign": &domain.Campaign{
			Name:      "Summer Cooler",
			StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	assert.Contains(t, text, "assigned as employee")
	assert.Contains(t, text, "01 Apr 2026 to 30 Jun 2026")
	assert.Contains(t, html, "<strong>Summer Cooler</strong>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := newRenderer("x")
	require.NoError(t, err)
	_, _, err = r.render("missing", nil)
	require.Error(t, err)
}

func TestSendGridPrepare(t *testing.T) {
	m, err := NewSendGridMailer(testCfg, slog.Default())
	require.NoError(t, err)

	v3, err := m.prepare(port.EmailMessage{
		To:       []mail.Address{{Name: "Sharma", Address: "sharma@example.com"}},
		Subject:  "Payment received",
		Template: "payment_recorded",
		Data:     paymentData(),
	})
	require.NoError(t, err)

	require.Len(t, v3.Personalizations, 1)
	assert.Equal(t, "[Agency Desk] Payment received", v3.Personalizations[0].Subject)
	require.Len(t, v3.Personalizations[0].To, 1)
	assert.Equal(t, "sharma@example.com", v3.Personalizations[0].To[0].Address)
	assert.Equal(t, "no-reply@example.com", v3.From.Address)
	require.Len(t, v3.Content, 2)
	assert.Equal(t, "text/plain", v3.Content[0].Type)
	assert.Equal(t, "text/html", v3.Content[1].Type)
}

func TestConsoleMailer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	m, err := New(testCfg, logger)
	require.NoError(t, err)
	require.IsType(t, &ConsoleMailer{}, m)

	err = m.Send(context.Background(), port.EmailMessage{
		To:       []mail.Address{{Address: "sharma@example.com"}},
		Subject:  "Payment received",
		Template: "payment_recorded",
		Data:     paymentData(),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"subject":"[Agency Desk] Payment received"`)
	assert.Contains(t, buf.String(), "UTR123")

	buf.Reset()
	require.NoError(t, m.Send(context.Background(), port.EmailMessage{Template: "payment_recorded"}))
	assert.Empty(t, buf.String())
}
