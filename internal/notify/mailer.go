package notify

import (
	"careerconnect/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends a single plain-text email. The notifier depends on this
// interface so delivery can be faked in tests.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through an SMTP server via gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTPMailer from the mail configuration
func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send dials the SMTP server and delivers one message
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
