package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement aggregates an account's completed transactions over a period.
// closing balance is the account's current balance; the opening balance is
// derived by walking the period's flows backwards:
//
//	opening = closing - totalDeposits + totalWithdrawals
type Statement struct {
	Account          *Account
	StartDate        time.Time
	EndDate          time.Time
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	Transactions     []*Transaction
}
