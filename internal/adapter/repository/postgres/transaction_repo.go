package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/domain"
	"github.com/finvault/corebank/internal/usecase"
)

const transactionColumns = `id, number, type, status, from_account_id, to_account_id,
	from_account_number, to_account_number, amount, description,
	from_balance_after, to_balance_after, created_at, completed_at`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

// TransactionRepository implements usecase.TransactionRepository over the
// append-only transactions table. Rows are never updated or deleted.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Append inserts a transaction inside the unit of work, so the log entry
// commits or rolls back together with the balance writes.
func (r *TransactionRepository) Append(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertTransactionQuery, transactionArgs(txn)...)

	return err
}

// Create inserts a transaction outside any unit of work. Failed operations
// are recorded this way after their unit has rolled back.
func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, insertTransactionQuery, transactionArgs(txn)...)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransactionRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return txn, err
}

// ListByAccount lists transactions touching the account, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE from_account_id = $1 OR to_account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.list(ctx, query, accountID, limit, offset)
}

// ListByAccountAndPeriod lists the account's completed transactions within
// [start, end], oldest first.
func (r *TransactionRepository) ListByAccountAndPeriod(ctx context.Context, accountID string, start, end time.Time) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE (from_account_id = $1 OR to_account_id = $1)
		  AND status = $2
		  AND created_at >= $3
		  AND created_at <= $4
		ORDER BY created_at
	`

	return r.list(ctx, query,
		accountID,
		domain.TransactionStatusCompleted,
		timeToPgTimestamptz(start),
		timeToPgTimestamptz(end),
	)
}

func (r *TransactionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

func transactionArgs(txn *domain.Transaction) []any {
	return []any{
		txn.ID,
		txn.Number,
		txn.Type,
		txn.Status,
		txn.FromAccountID,
		txn.ToAccountID,
		txn.FromAccountNumber,
		txn.ToAccountNumber,
		decimalToNumeric(txn.Amount),
		txn.Description,
		decimalPtrToNumeric(txn.FromBalanceAfter),
		decimalPtrToNumeric(txn.ToBalanceAfter),
		timeToPgTimestamptz(txn.CreatedAt),
		timePtrToPgTimestamptz(txn.CompletedAt),
	}
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn              domain.Transaction
		amount           pgtype.Numeric
		fromBalanceAfter pgtype.Numeric
		toBalanceAfter   pgtype.Numeric
		createdAt        pgtype.Timestamptz
		completedAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&txn.ID,
		&txn.Number,
		&txn.Type,
		&txn.Status,
		&txn.FromAccountID,
		&txn.ToAccountID,
		&txn.FromAccountNumber,
		&txn.ToAccountNumber,
		&amount,
		&txn.Description,
		&fromBalanceAfter,
		&toBalanceAfter,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Amount = numericToDecimal(amount)
	txn.FromBalanceAfter = numericToDecimalPtr(fromBalanceAfter)
	txn.ToBalanceAfter = numericToDecimalPtr(toBalanceAfter)
	txn.CreatedAt = createdAt.Time
	if completedAt.Valid {
		txn.CompletedAt = &completedAt.Time
	}

	return &txn, nil
}

func decimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}

	return decimalToNumeric(*d)
}

func numericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}

	d := numericToDecimal(n)

	return &d
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return timeToPgTimestamptz(*t)
}
