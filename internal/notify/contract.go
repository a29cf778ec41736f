package notify

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Mailer delivers outgoing mail.
type Mailer interface {
	Send(to, subject, body string) error
	SendWithAttachment(to, subject, body string, attachment Attachment) error
}

// Logger minimal logging contract.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
