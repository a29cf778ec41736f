package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMailer struct {
	to, subject, body string
	attachment        *Attachment
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func (m *recordingMailer) SendWithAttachment(to, subject, body string, attachment Attachment) error {
	m.to, m.subject, m.body = to, subject, body
	m.attachment = &attachment
	return nil
}

func testBooking() *domain.LabBooking {
	return &domain.LabBooking{
		Ref:         "ref-abc",
		Name:        "Budi Santoso",
		StudentID:   "20231234",
		Email:       "budi@my.sampoernauniversity.ac.id",
		BookingDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Purpose:     "Thesis Project",
		Headcount:   2,
		Status:      domain.StatusPending,
	}
}

func TestNotifier_SendApprovalRequest(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, "https://lab.example.edu/", "labhead@sampoernauniversity.ac.id", nopLogger{})

	require.NoError(t, n.SendApprovalRequest(testBooking()))

	assert.Equal(t, "labhead@sampoernauniversity.ac.id", mailer.to)
	assert.Contains(t, mailer.body, "https://lab.example.edu/approve?id=ref-abc")
	assert.Contains(t, mailer.body, "https://lab.example.edu/reject?id=ref-abc")
	assert.Contains(t, mailer.body, "10:00 - 11:00")
}

func TestNotifier_SendApprovedAttachesQR(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, "https://lab.example.edu", "labhead@sampoernauniversity.ac.id", nopLogger{})

	require.NoError(t, n.SendApproved(testBooking()))

	assert.Equal(t, "budi@my.sampoernauniversity.ac.id", mailer.to)
	assert.Contains(t, mailer.body, "https://lab.example.edu/checkin?id=ref-abc")
	require.NotNil(t, mailer.attachment)
	assert.Equal(t, "image/png", mailer.attachment.ContentType)
	assert.True(t, len(mailer.attachment.Data) > 0)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, mailer.attachment.Data[:4])
}

func TestBuildMultipartMessage(t *testing.T) {
	msg := buildMultipartMessage("from@x", "to@y", "Subject", "Body text", Attachment{
		Filename:    "qr.png",
		ContentType: "image/png",
		Data:        []byte("hello"),
	})

	assert.True(t, strings.Contains(msg, "multipart/mixed"))
	assert.True(t, strings.Contains(msg, "Content-Disposition: attachment; filename=\"qr.png\""))
	assert.True(t, strings.Contains(msg, "aGVsbG8=")) // base64("hello")
	assert.True(t, strings.HasSuffix(msg, "--smart-lab-booking-boundary--\r\n"))
}
