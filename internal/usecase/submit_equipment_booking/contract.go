package submit_equipment_booking

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// EquipmentRepository interface over equipment storage.
type EquipmentRepository interface {
	ListItems(ctx context.Context) ([]domain.EquipmentItem, error)
	ListLoansOverlapping(ctx context.Context, from, to time.Time, includeInactive bool) ([]domain.EquipmentLoan, error)
	CreateLoan(ctx context.Context, loan *domain.EquipmentLoan) (*domain.EquipmentLoan, error)
}

// Notifier sends the approval request to the lab head.
type Notifier interface {
	SendLoanApprovalRequest(loan *domain.EquipmentLoan) error
}

// TransactionManager runs the stock check and the insert atomically.
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
