package equipment

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

var loanColumns = []string{
	"id",
	"ref",
	"email",
	"wa_number",
	"pickup_at",
	"return_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository data access for the equipment catalog and loans.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an equipment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListItems returns the borrowable catalog.
func (r *Repository) ListItems(ctx context.Context) ([]domain.EquipmentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"total_stock",
		"borrowable",
		"created_at",
		"updated_at",
	).
		From("equipment_items").
		Where(squirrel.Eq{"borrowable": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var items []domain.EquipmentItem
	for rows.Next() {
		var (
			item                 domain.EquipmentItem
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.TotalStock, &item.Borrowable, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan row: %v", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - iterate rows: %v", ErrExecQuery, err)
	}
	return items, nil
}

// CreateLoan inserts a loan with its item lines. Callers run this inside a
// transaction so the stock check and the insert are atomic.
func (r *Repository) CreateLoan(ctx context.Context, loan *domain.EquipmentLoan) (*domain.EquipmentLoan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipment_loans").
		Columns(
			"ref",
			"email",
			"wa_number",
			"pickup_at",
			"return_at",
			"status",
		).
		Values(
			loan.Ref,
			loan.Email,
			loan.WANumber,
			loan.PickupAt,
			loan.ReturnAt,
			loan.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLoan - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&loan.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLoan - execute insert: %v", ErrExecQuery, err)
	}
	loan.CreatedAt = createdAt.Time
	loan.UpdatedAt = updatedAt.Time

	if len(loan.Items) > 0 {
		insertBuilder := psqlbuilder.Insert("equipment_loan_items").
			Columns("loan_id", "item_name", "quantity")
		for _, item := range loan.Items {
			insertBuilder = insertBuilder.Values(loan.ID, item.ItemName, item.Quantity)
		}

		query, args, err = insertBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: CreateLoan - build items insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: CreateLoan - execute items insert: %v", ErrExecQuery, err)
		}
	}

	return loan, nil
}

// GetLoanByRef returns the loan with the given public reference,
// including its item lines.
func (r *Repository) GetLoanByRef(ctx context.Context, ref string) (*domain.EquipmentLoan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(loanColumns...).
		From("equipment_loans").
		Where(squirrel.Eq{"ref": ref})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLoanByRef - build select query: %v", ErrBuildQuery, err)
	}

	loan, err := scanLoan(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLoanByRef - scan row: %v", ErrScanRow, err)
	}

	if err := r.attachItems(ctx, []*domain.EquipmentLoan{loan}); err != nil {
		return nil, err
	}
	return loan, nil
}

// ListLoansOverlapping returns loans whose window intersects [from, to),
// item lines included. Only active statuses hold stock unless
// includeInactive is set. Inside a transaction the rows are locked so the
// stock check and the insert see a consistent view.
func (r *Repository) ListLoansOverlapping(ctx context.Context, from, to time.Time, includeInactive bool) ([]domain.EquipmentLoan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(loanColumns...).
		From("equipment_loans").
		Where(squirrel.Lt{"pickup_at": to}).
		Where(squirrel.Gt{"return_at": from}).
		OrderBy("pickup_at ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLoansOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLoansOverlapping - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	loans, err := collectLoans(rows)
	if err != nil {
		return nil, err
	}

	refs := make([]*domain.EquipmentLoan, len(loans))
	for i := range loans {
		refs[i] = &loans[i]
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return loans, nil
}

// ListLoans returns loans newest first for the dashboard feed.
func (r *Repository) ListLoans(ctx context.Context, includeInactive bool) ([]domain.EquipmentLoan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(loanColumns...).
		From("equipment_loans").
		OrderBy("created_at DESC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLoans - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLoans - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	loans, err := collectLoans(rows)
	if err != nil {
		return nil, err
	}

	refs := make([]*domain.EquipmentLoan, len(loans))
	for i := range loans {
		refs[i] = &loans[i]
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return loans, nil
}

// UpdateLoanStatus transitions a loan from one status to another.
func (r *Repository) UpdateLoanStatus(ctx context.Context, ref string, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("equipment_loans").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"ref": ref, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLoanStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLoanStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLoanStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// attachItems loads the item lines for every loan in one query.
func (r *Repository) attachItems(ctx context.Context, loans []*domain.EquipmentLoan) error {
	if len(loans) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, len(loans))
	byID := make(map[int64]*domain.EquipmentLoan, len(loans))
	for i, loan := range loans {
		ids[i] = loan.ID
		byID[loan.ID] = loan
	}

	query, args, err := psqlbuilder.Select("loan_id", "item_name", "quantity").
		From("equipment_loan_items").
		Where(squirrel.Eq{"loan_id": ids}).
		OrderBy("item_name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachItems - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			loanID int64
			item   domain.LoanItem
		)
		if err := rows.Scan(&loanID, &item.ItemName, &item.Quantity); err != nil {
			return fmt.Errorf("%w: attachItems - scan row: %v", ErrScanRow, err)
		}
		if loan, ok := byID[loanID]; ok {
			loan.Items = append(loan.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachItems - iterate rows: %v", ErrExecQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLoan(row rowScanner) (*domain.EquipmentLoan, error) {
	var (
		loan                 domain.EquipmentLoan
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&loan.ID,
		&loan.Ref,
		&loan.Email,
		&loan.WANumber,
		&loan.PickupAt,
		&loan.ReturnAt,
		&loan.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	loan.CreatedAt = createdAt.Time
	loan.UpdatedAt = updatedAt.Time
	return &loan, nil
}

func collectLoans(rows *sql.Rows) ([]domain.EquipmentLoan, error) {
	var loans []domain.EquipmentLoan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrScanRow, err)
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}
	return loans, nil
}
