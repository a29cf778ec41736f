package get_equipment_availability

import (
	"context"

	getAvailability "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_equipment_availability"
)

// GetEquipmentAvailabilityUseCase interface over the use case.
type GetEquipmentAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
