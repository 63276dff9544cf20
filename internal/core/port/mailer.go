package port

import (
	"context"
	"net/mail"
)

// EmailMessage is a templated notification. Template names a template
// pair (<name>.txt and <name>.html) known to the Mailer.
type EmailMessage struct {
	To       []mail.Address
	Subject  string
	Template string
	Data     any
}

// Mailer delivers notifications.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}
