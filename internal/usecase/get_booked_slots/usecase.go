package get_booked_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// UseCase returns the occupied schedule for one calendar date. Only
// bookings in an active status hold their slot; rejected and completed
// ones free it up.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute performs the lookup.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate the date
	if req.Date == "" {
		return nil, ErrInvalidDate
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetBookedSlots: malformed date %q", req.Date)
		return nil, ErrInvalidDate
	}

	// 2. Load the active bookings for the date
	bookings, err := uc.bookingRepo.ListForDate(ctx, date, false)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to list bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Map to wire slots
	resp := &Response{Slots: make([]BookedSlot, 0, len(bookings))}
	for _, b := range bookings {
		resp.Slots = append(resp.Slots, BookedSlot{
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
		})
	}

	uc.logger.Info("GetBookedSlots: date=%s slots=%d", req.Date, len(resp.Slots))
	return resp, nil
}
