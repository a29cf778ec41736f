package submit_equipment_booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/CsIsLab17/smart-lab-booking/internal/bookingform"
	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/internal/slots"
	"github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_equipment_availability"
)

// UseCase stores an equipment loan submission. The stock check and the
// insert run in one serializable transaction so two concurrent loans
// cannot both take the last piece.
type UseCase struct {
	equipmentRepo EquipmentRepository
	notifier      Notifier
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	equipmentRepo EquipmentRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		equipmentRepo: equipmentRepo,
		notifier:      notifier,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider overrides the clock, used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute performs the submission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitEquipmentBooking: email=%s pickup=%s return=%s items=%d",
		req.Email, req.PickupAt, req.ReturnAt, len(req.Items))

	now := uc.timeProvider.Now()

	var created *domain.EquipmentLoan

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Parse the loan window
		from, parseErr := time.Parse(domain.DateTimeFormat, req.PickupAt)
		if parseErr != nil {
			return fmt.Errorf("%w: %s", ErrValidation, "Please fill all required fields.")
		}
		to, parseErr := time.Parse(domain.DateTimeFormat, req.ReturnAt)
		if parseErr != nil {
			return fmt.Errorf("%w: %s", ErrValidation, "Please fill all required fields.")
		}

		// 2. Compute the remaining stock with the overlapping loans
		// locked until commit.
		items, err := uc.equipmentRepo.ListItems(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list items: %v", ErrInternal, err)
		}
		loans, err := uc.equipmentRepo.ListLoansOverlapping(txCtx, from, to, false)
		if err != nil {
			return fmt.Errorf("%w: failed to list loans: %v", ErrInternal, err)
		}
		stock := get_equipment_availability.Remaining(items, loans)

		// 3. Check quantities against the locked stock first, so a race
		// with a concurrent loan surfaces as a conflict rather than a
		// validation failure.
		for name, qty := range req.Items {
			if qty > stock[name] {
				return fmt.Errorf("%w: %s x%d requested, %d available", ErrInsufficientStock, name, qty, stock[name])
			}
		}

		// 4. Run the same validator the form runs, against fresh stock.
		verdict := bookingform.Validate(draftFromRequest(req), bookingform.EquipmentLoan(),
			slots.Options{}, bookingform.State{Stock: stock}, now)
		if !verdict.Submittable {
			return fmt.Errorf("%w: %s", ErrValidation, verdict.Message)
		}

		// 5. Store the loan.
		status := domain.StatusPending
		if req.AutoApprove {
			status = domain.StatusApproved
		}

		loan := &domain.EquipmentLoan{
			Ref:      uuid.NewString(),
			Email:    req.Email,
			WANumber: req.WANumber,
			PickupAt: from,
			ReturnAt: to,
			Items:    loanItems(req.Items),
			Status:   status,
		}
		created, err = uc.equipmentRepo.CreateLoan(txCtx, loan)
		if err != nil {
			return fmt.Errorf("%w: failed to create loan: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("SubmitEquipmentBooking: rejected email=%s: %v", req.Email, err)
		return nil, err
	}

	// 6. Notify the lab head outside the transaction.
	if !req.AutoApprove {
		if err := uc.notifier.SendLoanApprovalRequest(created); err != nil {
			uc.logger.Error("SubmitEquipmentBooking: approval email failed for ref=%s: %v", created.Ref, err)
		}
	}

	uc.logger.Info("SubmitEquipmentBooking: created ref=%s status=%s", created.Ref, created.Status)

	message := "Loan submitted for approval."
	if req.AutoApprove {
		message = "Loan created."
	}
	return &Response{Ref: created.Ref, Message: message}, nil
}

// draftFromRequest rebuilds the form draft for server-side validation.
func draftFromRequest(req *Request) bookingform.Draft {
	draft := bookingform.NewDraft()
	draft.Email = req.Email
	draft.WANumber = req.WANumber
	draft.PickupAt = req.PickupAt
	draft.ReturnAt = req.ReturnAt
	for name, qty := range req.Items {
		if qty > 0 {
			draft.Quantities[name] = qty
		}
	}
	draft.Touched = true
	return draft
}

// loanItems converts the request map into ordered item lines.
func loanItems(items map[string]int) []domain.LoanItem {
	names := make([]string, 0, len(items))
	for name, qty := range items {
		if qty > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	lines := make([]domain.LoanItem, 0, len(names))
	for _, name := range names {
		lines = append(lines, domain.LoanItem{ItemName: name, Quantity: items[name]})
	}
	return lines
}
