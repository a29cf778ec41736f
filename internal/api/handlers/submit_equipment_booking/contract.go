package submit_equipment_booking

import (
	"context"

	submitLoan "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_equipment_booking"
)

// SubmitEquipmentBookingUseCase interface over the use case.
type SubmitEquipmentBookingUseCase interface {
	Execute(ctx context.Context, req *submitLoan.Request) (*submitLoan.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
