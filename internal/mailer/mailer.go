// Package mailer builds and delivers account lifecycle emails over SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/haeun-dev/memo-server/internal/config"
)

// Notification is one outbound email, fully rendered.
type Notification struct {
	To      string
	Subject string
	HTML    string
}

// Dispatcher delivers a rendered notification.
type Dispatcher interface {
	Send(ctx context.Context, notification Notification) error
}

// SMTPDispatcher delivers notifications through an SMTP relay using
// implicit TLS, the way the hosted mail providers expect on port 465.
type SMTPDispatcher struct {
	client *mail.Client
	from   string
}

// NewSMTPDispatcher connects the dispatcher to the relay named in settings.
func NewSMTPDispatcher(cfg config.Mail) (*SMTPDispatcher, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &SMTPDispatcher{client: client, from: cfg.From}, nil
}

// Send delivers one notification. The caller decides retry policy.
func (d *SMTPDispatcher) Send(ctx context.Context, notification Notification) error {
	msg := mail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return fmt.Errorf("setting sender address: %w", err)
	}
	if err := msg.To(notification.To); err != nil {
		return fmt.Errorf("setting recipient address: %w", err)
	}
	msg.Subject(notification.Subject)
	msg.SetBodyString(mail.TypeTextHTML, notification.HTML)

	if err := d.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", notification.To, err)
	}

	return nil
}

// NopDispatcher swallows notifications. Used when no relay is configured.
type NopDispatcher struct{}

func (NopDispatcher) Send(_ context.Context, _ Notification) error { return nil }

var (
	_ Dispatcher = (*SMTPDispatcher)(nil)
	_ Dispatcher = NopDispatcher{}
)
