// Package mail delivers outbound email over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewMailer returns an SMTP-backed Mailer. Auth is skipped when username is
// empty, which is what local relays like MailHog expect.
func NewMailer(host, port, from, username, password string) Mailer {
	return &mailer{
		host:     host,
		port:     port,
		from:     from,
		username: username,
		password: password,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

// VerificationBody renders the body of a verification-code email.
func VerificationBody(code string) string {
	return fmt.Sprintf("Your ClimateChart verification code is %s. It expires in 15 minutes.", code)
}

// VerificationSubject is the subject line of verification-code emails.
const VerificationSubject = "Verify your ClimateChart account"
