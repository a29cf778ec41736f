package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusConflict is returned when a status update finds the row in
	// a different state than expected.
	ErrStatusConflict = errors.New("booking.repository: booking is not in the expected status")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
