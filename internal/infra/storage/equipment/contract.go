package equipment

import (
	"context"
	"database/sql"

	"github.com/CsIsLab17/smart-lab-booking/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
