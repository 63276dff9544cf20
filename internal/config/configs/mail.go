package configs

import "fmt"

const (
	MailConsole  = "console"
	MailSendGrid = "sendgrid"
)

// Mail selects the notification transport. The console provider only logs
// messages and is meant for development.
type Mail struct {
	Provider       string `env:"PROVIDER" envDefault:"console"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	FromName       string `env:"FROM_NAME" envDefault:"Agency Desk"`
	FromAddress    string `env:"FROM_ADDRESS" envDefault:"no-reply@agency-desk.local"`
	// AppName is shown in the body of every email.
	AppName string `env:"APP_NAME" envDefault:"Agency Desk"`
}

func (c Mail) Validate() error {
	switch c.Provider {
	case MailConsole:
		return nil
	case MailSendGrid:
		if c.SendGridAPIKey == "" {
			return fmt.Errorf("MAIL_SENDGRID_API_KEY is required for provider %q", c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Provider)
}
