package bookingflow

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/internal/integrations/labapi"
)

// ScheduleFetcher loads the occupied intervals for a date.
type ScheduleFetcher interface {
	GetBookedSlots(ctx context.Context, date string) ([]domain.BookedInterval, error)
}

// StockFetcher loads remaining equipment stock over a pickup/return range.
type StockFetcher interface {
	GetEquipmentAvailability(ctx context.Context, pickupAt, returnAt string) (map[string]int, error)
}

// Submitter posts completed forms to the booking service.
type Submitter interface {
	SubmitBooking(ctx context.Context, sub labapi.BookingSubmission) (*labapi.StatusResponse, error)
	SubmitEquipmentBooking(ctx context.Context, sub labapi.LoanSubmission) (*labapi.StatusResponse, error)
}

// DashboardFetcher feeds the polling dashboard.
type DashboardFetcher interface {
	GetDashboardData(ctx context.Context) ([]labapi.DashboardBooking, error)
}

// TimeProvider abstracts the clock for testability.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger minimal logging contract.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
