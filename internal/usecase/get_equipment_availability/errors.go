package get_equipment_availability

import "errors"

var (
	// ErrInvalidRange is returned when the window is missing, malformed
	// or inverted.
	ErrInvalidRange = errors.New("get_equipment_availability: invalid pickup/return range")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_equipment_availability: internal error")
)
