package booking_action

import (
	"context"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// BookingRepository interface over lab booking storage.
type BookingRepository interface {
	GetByRef(ctx context.Context, ref string) (*domain.LabBooking, error)
	UpdateStatus(ctx context.Context, ref string, from, to domain.BookingStatus) error
}

// EquipmentRepository interface over equipment loan storage.
type EquipmentRepository interface {
	GetLoanByRef(ctx context.Context, ref string) (*domain.EquipmentLoan, error)
	UpdateLoanStatus(ctx context.Context, ref string, from, to domain.BookingStatus) error
}

// Notifier sends the decision emails to the requester.
type Notifier interface {
	SendApproved(booking *domain.LabBooking) error
	SendRejected(booking *domain.LabBooking) error
	SendLoanDecision(loan *domain.EquipmentLoan, approved bool) error
}

// TransactionManager locks the row for the duration of the transition.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
