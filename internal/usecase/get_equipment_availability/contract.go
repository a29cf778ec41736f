package get_equipment_availability

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// EquipmentRepository interface over equipment storage.
type EquipmentRepository interface {
	ListItems(ctx context.Context) ([]domain.EquipmentItem, error)
	ListLoansOverlapping(ctx context.Context, from, to time.Time, includeInactive bool) ([]domain.EquipmentLoan, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
