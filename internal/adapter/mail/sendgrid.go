package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"agency-desk/internal/config/configs"
	"agency-desk/internal/core/port"
)

// SendGridMailer implements port.Mailer on the SendGrid v3 API.
type SendGridMailer struct {
	client     *sendgrid.Client
	from       *sgmail.Email
	subjPrefix string
	tmpl       *renderer
	logger     *slog.Logger
}

var _ port.Mailer = (*SendGridMailer)(nil)

func NewSendGridMailer(cfg configs.Mail, logger *slog.Logger) (*SendGridMailer, error) {
	tmpl, err := newRenderer(cfg.AppName)
	if err != nil {
		return nil, err
	}
	return &SendGridMailer{
		client:     sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:       sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
		subjPrefix: "[" + cfg.AppName + "] ",
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

func (m *SendGridMailer) Send(ctx context.Context, msg port.EmailMessage) error {
	if len(msg.To) == 0 {
		return nil
	}
	body, err := m.prepare(msg)
	if err != nil {
		return err
	}

	res, err := m.client.SendWithContext(ctx, body)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	m.logger.Debug("email sent", slog.String("template", msg.Template), slog.Int("recipients", len(msg.To)))
	return nil
}

func (m *SendGridMailer) prepare(msg port.EmailMessage) (*sgmail.SGMailV3, error) {
	text, html, err := m.tmpl.render(msg.Template, msg.Data)
	if err != nil {
		return nil, err
	}
	if text == "" && html == "" {
		return nil, errors.New("empty email body")
	}

	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgEmail(to))
	}

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", text))
	if html != "" {
		v3.AddContent(sgmail.NewContent("text/html", html))
	}
	return v3, nil
}

func sgEmail(addr mail.Address) *sgmail.Email {
	return sgmail.NewEmail(addr.Name, addr.Address)
}
