package mail

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"agency-desk/internal/config/configs"
	"agency-desk/internal/core/port"
)

// ConsoleMailer renders messages and writes them to the log instead of
// sending them.
type ConsoleMailer struct {
	from       mail.Address
	subjPrefix string
	tmpl       *renderer
	logger     *slog.Logger
}

var _ port.Mailer = (*ConsoleMailer)(nil)

func NewConsoleMailer(cfg configs.Mail, logger *slog.Logger) (*ConsoleMailer, error) {
	tmpl, err := newRenderer(cfg.AppName)
	if err != nil {
		return nil, err
	}
	return &ConsoleMailer{
		from:       mail.Address{Name: cfg.FromName, Address: cfg.FromAddress},
		subjPrefix: "[" + cfg.AppName + "] ",
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

func (m *ConsoleMailer) Send(ctx context.Context, msg port.EmailMessage) error {
	if len(msg.To) == 0 {
		return nil
	}
	text, _, err := m.tmpl.render(msg.Template, msg.Data)
	if err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "email",
		slog.String("from", m.from.String()),
		slog.String("to", joinAddresses(msg.To)),
		slog.String("subject", m.subjPrefix+msg.Subject),
		slog.String("body", text),
	)
	return nil
}

func joinAddresses(addrs []mail.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, ", ")
}

// New returns the mailer selected by cfg.Provider.
func New(cfg configs.Mail, logger *slog.Logger) (port.Mailer, error) {
	if cfg.Provider == configs.MailSendGrid {
		return NewSendGridMailer(cfg, logger)
	}
	return NewConsoleMailer(cfg, logger)
}
