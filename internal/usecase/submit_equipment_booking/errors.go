package submit_equipment_booking

import "errors"

var (
	// ErrValidation is returned when the submission fails form
	// validation. The wrapping error carries the user-facing message.
	ErrValidation = errors.New("submit_equipment_booking: validation failed")

	// ErrInsufficientStock is returned when a concurrent loan took the
	// stock between the form check and the submit.
	ErrInsufficientStock = errors.New("submit_equipment_booking: insufficient stock")

	// ErrInternal is returned on storage or notification failures.
	ErrInternal = errors.New("submit_equipment_booking: internal error")
)
