package booking_action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	bookingRepo "github.com/CsIsLab17/smart-lab-booking/internal/infra/storage/booking"
	equipmentRepo "github.com/CsIsLab17/smart-lab-booking/internal/infra/storage/equipment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubBookings struct {
	booking *domain.LabBooking
	updated *domain.BookingStatus
}

func (r *stubBookings) GetByRef(_ context.Context, ref string) (*domain.LabBooking, error) {
	if r.booking == nil || r.booking.Ref != ref {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *r.booking
	return &b, nil
}

func (r *stubBookings) UpdateStatus(_ context.Context, _ string, _, to domain.BookingStatus) error {
	r.updated = &to
	return nil
}

type stubLoans struct {
	loan    *domain.EquipmentLoan
	updated *domain.BookingStatus
}

func (r *stubLoans) GetLoanByRef(_ context.Context, ref string) (*domain.EquipmentLoan, error) {
	if r.loan == nil || r.loan.Ref != ref {
		return nil, equipmentRepo.ErrLoanNotFound
	}
	l := *r.loan
	return &l, nil
}

func (r *stubLoans) UpdateLoanStatus(_ context.Context, _ string, _, to domain.BookingStatus) error {
	r.updated = &to
	return nil
}

type stubNotifier struct {
	approved, rejected int
	loanDecisions      []bool
}

func (n *stubNotifier) SendApproved(*domain.LabBooking) error {
	n.approved++
	return nil
}

func (n *stubNotifier) SendRejected(*domain.LabBooking) error {
	n.rejected++
	return nil
}

func (n *stubNotifier) SendLoanDecision(_ *domain.EquipmentLoan, approved bool) error {
	n.loanDecisions = append(n.loanDecisions, approved)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newUseCase(bookings *stubBookings, loans *stubLoans, notifier *stubNotifier) *UseCase {
	return NewUseCase(bookings, loans, notifier, passthroughTx{}, nopLogger{})
}

func pendingBooking() *domain.LabBooking {
	return &domain.LabBooking{Ref: "ref-1", Status: domain.StatusPending, Email: "budi@my.sampoernauniversity.ac.id"}
}

func TestExecute_ApproveBooking(t *testing.T) {
	bookings := &stubBookings{booking: pendingBooking()}
	notifier := &stubNotifier{}
	uc := newUseCase(bookings, &stubLoans{}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{Action: ActionApprove, Ref: "ref-1"})
	require.NoError(t, err)

	require.NotNil(t, bookings.updated)
	assert.Equal(t, domain.StatusApproved, *bookings.updated)
	assert.Equal(t, 1, notifier.approved)
	assert.Contains(t, resp.Message, "check-in QR code")
}

func TestExecute_RejectBooking(t *testing.T) {
	bookings := &stubBookings{booking: pendingBooking()}
	notifier := &stubNotifier{}
	uc := newUseCase(bookings, &stubLoans{}, notifier)

	_, err := uc.Execute(context.Background(), &Request{Action: ActionReject, Ref: "ref-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, *bookings.updated)
	assert.Equal(t, 1, notifier.rejected)
}

func TestExecute_CheckInRequiresApproved(t *testing.T) {
	bookings := &stubBookings{booking: pendingBooking()}
	uc := newUseCase(bookings, &stubLoans{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{Action: ActionCheckIn, Ref: "ref-1"})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Nil(t, bookings.updated)
}

func TestExecute_CheckInThenCheckOut(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusApproved
	bookings := &stubBookings{booking: booking}
	notifier := &stubNotifier{}
	uc := newUseCase(bookings, &stubLoans{}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{Action: ActionCheckIn, Ref: "ref-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, *bookings.updated)
	assert.Equal(t, "Check-in confirmed. Welcome!", resp.Message)

	booking.Status = domain.StatusCheckedIn
	resp, err = uc.Execute(context.Background(), &Request{Action: ActionCheckOut, Ref: "ref-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, *bookings.updated)
	assert.Equal(t, "Check-out complete. Thank you!", resp.Message)

	// No decision emails for check-in or check-out.
	assert.Zero(t, notifier.approved)
	assert.Zero(t, notifier.rejected)
}

func TestExecute_ApproveLoanFallsThrough(t *testing.T) {
	loans := &stubLoans{loan: &domain.EquipmentLoan{Ref: "loan-1", Status: domain.StatusPending}}
	notifier := &stubNotifier{}
	uc := newUseCase(&stubBookings{}, loans, notifier)

	resp, err := uc.Execute(context.Background(), &Request{Action: ActionApprove, Ref: "loan-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, *loans.updated)
	assert.Equal(t, []bool{true}, notifier.loanDecisions)
	assert.Contains(t, resp.Message, "Loan approved")
}

func TestExecute_UnknownRef(t *testing.T) {
	uc := newUseCase(&stubBookings{}, &stubLoans{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{Action: ActionApprove, Ref: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecute_UnknownAction(t *testing.T) {
	uc := newUseCase(&stubBookings{}, &stubLoans{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{Action: "explode", Ref: "ref-1"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}
