package notify

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/CsIsLab17/smart-lab-booking/internal/config"
)

// SMTPMailer sends email over plain SMTP. Auth is optional so local
// relays like Mailpit work without credentials.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: cfg.Addr(),
		from: cfg.From,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

func (m *SMTPMailer) SendWithAttachment(to, subject, body string, attachment Attachment) error {
	msg := buildMultipartMessage(m.from, to, subject, body, attachment)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message, enough for most relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

const multipartBoundary = "smart-lab-booking-boundary"

func buildMultipartMessage(from, to, subject, body string, attachment Attachment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", multipartBoundary)

	fmt.Fprintf(&b, "--%s\r\n", multipartBoundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", multipartBoundary)
	fmt.Fprintf(&b, "Content-Type: %s\r\n", attachment.ContentType)
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", attachment.Filename)

	encoded := base64.StdEncoding.EncodeToString(attachment.Data)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", multipartBoundary)
	return b.String()
}

// NoopMailer discards everything. Used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) Send(string, string, string) error { return nil }

func (NoopMailer) SendWithAttachment(string, string, string, Attachment) error { return nil }
