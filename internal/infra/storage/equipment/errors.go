package equipment

import "errors"

var (
	// ErrLoanNotFound is returned when no loan matches the lookup.
	ErrLoanNotFound = errors.New("equipment.repository: loan not found")

	// ErrStatusConflict is returned when a status update finds the row in
	// a different state than expected.
	ErrStatusConflict = errors.New("equipment.repository: loan is not in the expected status")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("equipment.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("equipment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("equipment.repository: failed to scan row")
)
