package submit_booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/pkg/types"
)

// UseCase stores a lab booking submission. The overlap check and the
// insert run in one serializable transaction so two concurrent requests
// for the same slot cannot both succeed.
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock, used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute performs the submission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: email=%s date=%s time=%s-%s", req.Email, req.Date, req.StartTime, req.EndTime)

	now := uc.timeProvider.Now()

	var created *domain.LabBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Load the day's active bookings; inside the transaction the
		// rows are locked until commit.
		date, parseErr := time.Parse(domain.DateFormat, req.Date)
		if parseErr != nil {
			return fmt.Errorf("%w: %s", ErrValidation, "Error: Invalid booking date.")
		}
		existing, err := uc.bookingRepo.ListForDate(txCtx, date, false)
		if err != nil {
			return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}

		intervals := make([]domain.BookedInterval, 0, len(existing))
		for i := range existing {
			intervals = append(intervals, existing[i].Interval())
		}

		// 2. Reject an interval that overlaps an active booking before
		// running the form validator, so the caller sees the conflict
		// message rather than a disabled-slot artifact.
		reqStart := domain.ClockToMinutes(req.StartTime)
		reqEnd := domain.ClockToMinutes(req.EndTime)
		for _, iv := range intervals {
			if iv.Overlaps(reqStart, reqEnd) {
				return ErrSlotTaken
			}
		}

		// 3. Run the same validator the form runs.
		if err := validateRequest(req, intervals, now); err != nil {
			return err
		}

		// 4. Store the booking.
		headcount, _ := strconv.Atoi(req.Headcount)
		if headcount < domain.MinHeadcount {
			headcount = domain.MinHeadcount
		}
		status := domain.StatusPending
		if req.AutoApprove {
			status = domain.StatusApproved
		}

		booking := &domain.LabBooking{
			Ref:         uuid.NewString(),
			Name:        req.Name,
			StudentID:   req.StudentID,
			Email:       req.Email,
			BookingDate: date,
			StartTime:   types.TimeString(req.StartTime),
			EndTime:     types.TimeString(req.EndTime),
			Purpose:     resolvePurpose(req.Purpose, req.OtherPurpose),
			Headcount:   headcount,
			Status:      status,
		}
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: rejected email=%s date=%s: %v", req.Email, req.Date, err)
		return nil, err
	}

	// 5. Notify the lab head outside the transaction. A mail failure does
	// not undo the stored booking.
	if !req.AutoApprove {
		if err := uc.notifier.SendApprovalRequest(created); err != nil {
			uc.logger.Error("SubmitBooking: approval email failed for ref=%s: %v", created.Ref, err)
		}
	}

	uc.logger.Info("SubmitBooking: created ref=%s status=%s", created.Ref, created.Status)

	message := "Booking submitted for approval."
	if req.AutoApprove {
		message = "Booking created."
	}
	return &Response{Ref: created.Ref, Message: message}, nil
}
