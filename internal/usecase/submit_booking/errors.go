package submit_booking

import "errors"

var (
	// ErrValidation is returned when the submission fails form
	// validation. The wrapping error carries the user-facing message.
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrSlotTaken is returned when the requested interval overlaps an
	// active booking.
	ErrSlotTaken = errors.New("submit_booking: slot already taken")

	// ErrInternal is returned on storage or notification failures.
	ErrInternal = errors.New("submit_booking: internal error")
)
