package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finvault/corebank/internal/domain"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CheckConsistency compares the sum of all account balances against the net
// flow recorded in the completed transaction log. Deposits add money to the
// system, withdrawals remove it; transfers cancel out.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (totalBalance decimal.Decimal, netFlow decimal.Decimal, err error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(balance), 0) FROM accounts),
			(SELECT COALESCE(SUM(CASE
				WHEN type = $1 THEN amount
				WHEN type = $2 THEN -amount
				ELSE 0
			END), 0) FROM transactions WHERE status = $3)
	`

	var balanceSum, flowSum pgtype.Numeric
	err = r.pool.QueryRow(ctx, query,
		domain.TransactionTypeDeposit,
		domain.TransactionTypeWithdrawal,
		domain.TransactionStatusCompleted,
	).Scan(&balanceSum, &flowSum)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(balanceSum), numericToDecimal(flowSum), nil
}
