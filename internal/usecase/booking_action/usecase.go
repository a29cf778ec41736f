package booking_action

import (
	"context"
	"errors"
	"fmt"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	bookingRepo "github.com/CsIsLab17/smart-lab-booking/internal/infra/storage/booking"
	equipmentRepo "github.com/CsIsLab17/smart-lab-booking/internal/infra/storage/equipment"
)

// UseCase applies a workflow transition reached through an action link:
// approve/reject from the lab head's email, check-in from the QR code,
// check-out at the end of the session. The reference is looked up among
// lab bookings first, then equipment loans; both share the UUID space.
type UseCase struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	notifier      Notifier
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookings BookingRepository,
	equipment EquipmentRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookings,
		equipmentRepo: equipment,
		notifier:      notifier,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute performs the transition and returns the confirmation text.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookingAction: action=%s ref=%s", req.Action, req.Ref)

	transition, ok := transitions[req.Action]
	if !ok {
		return nil, ErrUnknownAction
	}

	var (
		booking *domain.LabBooking
		loan    *domain.EquipmentLoan
	)

	// The lookup and the status update run in one transaction with the
	// row locked, so two clicks on the same link resolve to exactly one
	// applied transition.
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = uc.bookingRepo.GetByRef(txCtx, req.Ref)
		if err == nil {
			if booking.Status != transition.from {
				return ErrAlreadyProcessed
			}
			if err := uc.bookingRepo.UpdateStatus(txCtx, req.Ref, transition.from, transition.to); err != nil {
				if errors.Is(err, bookingRepo.ErrStatusConflict) {
					return ErrAlreadyProcessed
				}
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			booking.Status = transition.to
			return nil
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
		}

		booking = nil
		loan, err = uc.equipmentRepo.GetLoanByRef(txCtx, req.Ref)
		if err != nil {
			if errors.Is(err, equipmentRepo.ErrLoanNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: failed to load loan: %v", ErrInternal, err)
		}
		if loan.Status != transition.from {
			return ErrAlreadyProcessed
		}
		if err := uc.equipmentRepo.UpdateLoanStatus(txCtx, req.Ref, transition.from, transition.to); err != nil {
			if errors.Is(err, equipmentRepo.ErrStatusConflict) {
				return ErrAlreadyProcessed
			}
			return fmt.Errorf("%w: failed to update loan status: %v", ErrInternal, err)
		}
		loan.Status = transition.to
		return nil
	})
	if err != nil {
		uc.logger.Warn("BookingAction: action=%s ref=%s failed: %v", req.Action, req.Ref, err)
		return nil, err
	}

	// Decision emails go out after commit; a mail failure does not undo
	// the transition.
	uc.notifyDecision(req.Action, booking, loan)

	uc.logger.Info("BookingAction: action=%s ref=%s applied", req.Action, req.Ref)
	if booking != nil {
		return &Response{Title: transition.title, Message: transition.bookingMessage}, nil
	}
	return &Response{Title: transition.title, Message: transition.loanMessage}, nil
}

func (uc *UseCase) notifyDecision(action Action, booking *domain.LabBooking, loan *domain.EquipmentLoan) {
	var err error
	switch {
	case booking != nil && action == ActionApprove:
		err = uc.notifier.SendApproved(booking)
	case booking != nil && action == ActionReject:
		err = uc.notifier.SendRejected(booking)
	case loan != nil && action == ActionApprove:
		err = uc.notifier.SendLoanDecision(loan, true)
	case loan != nil && action == ActionReject:
		err = uc.notifier.SendLoanDecision(loan, false)
	default:
		return
	}
	if err != nil {
		uc.logger.Error("BookingAction: decision email failed: %v", err)
	}
}

type statusTransition struct {
	from, to       domain.BookingStatus
	title          string
	bookingMessage string
	loanMessage    string
}

var transitions = map[Action]statusTransition{
	ActionApprove: {
		from:           domain.StatusPending,
		to:             domain.StatusApproved,
		title:          "Booking Approved",
		bookingMessage: "Booking approved. The requester has been emailed a check-in QR code.",
		loanMessage:    "Loan approved. The requester has been notified.",
	},
	ActionReject: {
		from:           domain.StatusPending,
		to:             domain.StatusRejected,
		title:          "Booking Rejected",
		bookingMessage: "Booking rejected. The requester has been notified.",
		loanMessage:    "Loan rejected. The requester has been notified.",
	},
	ActionCheckIn: {
		from:           domain.StatusApproved,
		to:             domain.StatusCheckedIn,
		title:          "Check-in Confirmed",
		bookingMessage: "Check-in confirmed. Welcome!",
		loanMessage:    "Pickup confirmed. Items handed over.",
	},
	ActionCheckOut: {
		from:           domain.StatusCheckedIn,
		to:             domain.StatusCompleted,
		title:          "Check-out Complete",
		bookingMessage: "Check-out complete. Thank you!",
		loanMessage:    "Return confirmed. Loan completed.",
	},
}
