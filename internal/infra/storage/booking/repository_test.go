package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	booking := &domain.LabBooking{
		Ref:         "5f4c2c1e-1111-4222-8333-444455556666",
		Name:        "Budi Santoso",
		StudentID:   "20231234",
		Email:       "budi@my.sampoernauniversity.ac.id",
		BookingDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Purpose:     "Thesis Project",
		Headcount:   2,
		Status:      domain.StatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO lab_bookings")).
		WithArgs(
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
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByRef_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing-ref").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByRef(context.Background(), "missing-ref")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListForDate_ActiveOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	rows := sqlmock.NewRows(bookingColumns).
		AddRow(int64(1), "ref-1", "Budi", "20231234", "budi@my.sampoernauniversity.ac.id",
			date, "09:00", "10:00", "Thesis Project", 2, "approved", now, now).
		AddRow(int64(2), "ref-2", "Sari", "20235678", "sari@my.sampoernauniversity.ac.id",
			date, "13:30", "14:00", "Class Project", 3, "pending", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnRows(rows)

	bookings, err := repo.ListForDate(context.Background(), date, false)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.BookedInterval{Start: 540, End: 600}, bookings[0].Interval())
	assert.Equal(t, domain.StatusPending, bookings[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE lab_bookings")).
		WithArgs(domain.StatusApproved, "ref-1", domain.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "ref-1", domain.StatusPending, domain.StatusApproved)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_Conflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE lab_bookings")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "ref-1", domain.StatusPending, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrStatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
