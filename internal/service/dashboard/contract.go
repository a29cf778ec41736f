package dashboard

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// BookingRepository interface over lab booking storage.
type BookingRepository interface {
	List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.LabBooking, error)
}

// EquipmentRepository interface over equipment loan storage.
type EquipmentRepository interface {
	ListLoans(ctx context.Context, includeInactive bool) ([]domain.EquipmentLoan, error)
}

// TimeProvider interface for the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
