package submit_booking

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// BookingRepository interface over lab booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.LabBooking) (*domain.LabBooking, error)
	ListForDate(ctx context.Context, date time.Time, includeInactive bool) ([]domain.LabBooking, error)
}

// Notifier sends the approval request to the lab head.
type Notifier interface {
	SendApprovalRequest(booking *domain.LabBooking) error
}

// TransactionManager runs the overlap check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interface for the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
