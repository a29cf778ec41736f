package get_booked_slots

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// BookingRepository interface over lab booking storage.
type BookingRepository interface {
	ListForDate(ctx context.Context, date time.Time, includeInactive bool) ([]domain.LabBooking, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
