package get_booked_slots

import (
	"context"

	getBookedSlots "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_booked_slots"
)

// GetBookedSlotsUseCase interface over the use case.
type GetBookedSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookedSlots.Request) (*getBookedSlots.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
