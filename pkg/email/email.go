package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Sender sends email messages.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

// NewSMTPSender creates an SMTP email sender.
func NewSMTPSender(host string, port int, username, password, from, fromName string) Sender {
	return &smtpSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

func (s *smtpSender) Send(to, subject, htmlBody string) error {
	if s.host == "" {
		return fmt.Errorf("email: SMTP host is not configured")
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	msg := s.buildMessage(to, subject, htmlBody)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("email: failed to send to %s: %w", to, err)
	}
	return nil
}

func (s *smtpSender) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// NullSender discards all messages. Used when SMTP is not configured.
type NullSender struct{}

func (NullSender) Send(to, subject, htmlBody string) error {
	return nil
}
