package get_booked_slots

import "errors"

var (
	// ErrInvalidDate is returned when the date is missing or malformed.
	ErrInvalidDate = errors.New("get_booked_slots: invalid date")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_booked_slots: internal error")
)
