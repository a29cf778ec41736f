package booking_action

import "errors"

var (
	// ErrNotFound is returned when no booking or loan has the reference.
	ErrNotFound = errors.New("booking_action: booking not found")

	// ErrAlreadyProcessed is returned when the record is not in a status
	// the action can transition from.
	ErrAlreadyProcessed = errors.New("booking_action: booking already processed")

	// ErrUnknownAction is returned for an unrecognized action.
	ErrUnknownAction = errors.New("booking_action: unknown action")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("booking_action: internal error")
)
