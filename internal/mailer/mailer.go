// Package mailer sends plain-text email through the configured SMTP
// server. Used for password-recovery links and contact notifications.
package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/aabiskar/portfolio-backend/internal/config"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPMail, cfg.SMTPPassword),
		from:   cfg.SMTPMail,
	}
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
