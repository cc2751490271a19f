package mail

import (
	"fmt"

	"github.com/KAsare1/donation-server/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional emails to users.
type Mailer interface {
	SendWelcome(to, name string) error
}

// NewMailer returns an SMTP mailer, or a no-op one when SMTP is not configured.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return Noop{}
	}
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
	}
}

type Noop struct{}

func (Noop) SendWelcome(string, string) error { return nil }

type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

func (m *SMTPMailer) SendWelcome(to, name string) error {
	return m.dialer.DialAndSend(WelcomeMessage(m.from, to, name))
}

func WelcomeMessage(from, to, name string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome aboard")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour account has been created. Thank you for supporting our campaigns.", name))
	return msg
}
