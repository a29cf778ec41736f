package equipment

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

func TestRepository_CreateLoan(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	loan := &domain.EquipmentLoan{
		Ref:      "loan-ref-1",
		Email:    "budi@my.sampoernauniversity.ac.id",
		WANumber: "6281234567890",
		PickupAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		ReturnAt: time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		Items: []domain.LoanItem{
			{ItemName: "Tripod", Quantity: 2},
			{ItemName: "HDMI Cable", Quantity: 1},
		},
		Status: domain.StatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO equipment_loans")).
		WithArgs(loan.Ref, loan.Email, loan.WANumber, loan.PickupAt, loan.ReturnAt, loan.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(3), now, now))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO equipment_loan_items")).
		WithArgs(int64(3), "Tripod", 2, int64(3), "HDMI Cable", 1).
		WillReturnResult(sqlmock.NewResult(0, 2))

	created, err := repo.CreateLoan(context.Background(), loan)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListLoansOverlapping(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	pickup := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnRows(sqlmock.NewRows(loanColumns).
			AddRow(int64(3), "loan-ref-1", "budi@my.sampoernauniversity.ac.id", "6281234567890",
				pickup, ret, "approved", now, now))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT loan_id, item_name, quantity FROM equipment_loan_items")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"loan_id", "item_name", "quantity"}).
			AddRow(int64(3), "Tripod", 2))

	loans, err := repo.ListLoansOverlapping(context.Background(), pickup, ret, false)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, 2, loans[0].QuantityOf("Tripod"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetLoanByRef_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(loanColumns))

	_, err := repo.GetLoanByRef(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrLoanNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
