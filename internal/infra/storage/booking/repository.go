package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/pkg/dbmetrics"
	"github.com/CsIsLab17/smart-lab-booking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"ref",
	"name",
	"student_id",
	"email",
	"booking_date",
	"start_time",
	"end_time",
	"purpose",
	"headcount",
	"status",
	"created_at",
	"updated_at",
}

// Repository data access for lab bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a lab booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in the generated fields.
// When the context carries an active transaction it is used, which is how
// the submit flow runs the overlap check and the insert atomically.
func (r *Repository) Create(ctx context.Context, booking *domain.LabBooking) (*domain.LabBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lab_bookings").
		Columns(
			"ref",
			"name",
			"student_id",
			"email",
			"booking_date",
			"start_time",
			"end_time",
			"purpose",
			"headcount",
			"status",
		).
		Values(
			booking.Ref,
			booking.Name,
			booking.StudentID,
			booking.Email,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.Purpose,
			booking.Headcount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByRef returns the booking with the given public reference.
func (r *Repository) GetByRef(ctx context.Context, ref string) (*domain.LabBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("lab_bookings").
		Where(squirrel.Eq{"ref": ref})

	// Inside a transaction the row is locked so a concurrent action link
	// cannot race the status transition.
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - scan row: %v", ErrScanRow, err)
	}
	return booking, nil
}

// ListForDate returns the bookings occupying slots on a calendar date.
// Only active statuses count unless includeInactive is set. Inside a
// transaction the rows are locked for the duration of the overlap check.
func (r *Repository) ListForDate(ctx context.Context, date time.Time, includeInactive bool) ([]domain.LabBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("lab_bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// List returns bookings matching the filter, newest first. Used by the
// dashboard feed.
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.LabBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("lab_bookings").
		OrderBy("created_at DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// UpdateStatus transitions a booking from one status to another. The
// current status is part of the predicate so a concurrent transition
// cannot be applied twice.
func (r *Repository) UpdateStatus(ctx context.Context, ref string, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lab_bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"ref": ref, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.LabBooking, error) {
	var (
		booking              domain.LabBooking
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&booking.ID,
		&booking.Ref,
		&booking.Name,
		&booking.StudentID,
		&booking.Email,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Purpose,
		&booking.Headcount,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func collectBookings(rows *sql.Rows) ([]domain.LabBooking, error) {
	var bookings []domain.LabBooking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}
	return bookings, nil
}
