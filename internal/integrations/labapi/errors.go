package labapi

import "errors"

var (
	// ErrInternal is returned on client-side failures such as request
	// construction or transport errors.
	ErrInternal = errors.New("labapi client: internal error")

	// ErrInvalidResponse is returned when the service answers with an
	// unexpected status code or an unparsable body.
	ErrInvalidResponse = errors.New("labapi client: invalid response")

	// ErrSubmissionRejected is returned when the service rejects a
	// submission as invalid (HTTP 400).
	ErrSubmissionRejected = errors.New("labapi client: submission rejected")

	// ErrSlotConflict is returned when the requested slot or stock was
	// taken by a concurrent booking (HTTP 409).
	ErrSlotConflict = errors.New("labapi client: slot already taken")

	// ErrBookingNotFound is returned for action links whose reference is
	// unknown or already processed.
	ErrBookingNotFound = errors.New("labapi client: booking not found")
)
