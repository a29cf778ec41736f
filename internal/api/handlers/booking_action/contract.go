package booking_action

import (
	"context"

	bookingAction "github.com/CsIsLab17/smart-lab-booking/internal/usecase/booking_action"
)

// BookingActionUseCase interface over the use case.
type BookingActionUseCase interface {
	Execute(ctx context.Context, req *bookingAction.Request) (*bookingAction.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
