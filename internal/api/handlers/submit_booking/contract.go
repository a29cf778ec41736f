package submit_booking

import (
	"context"

	submitBooking "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_booking"
)

// SubmitBookingUseCase interface over the use case.
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
