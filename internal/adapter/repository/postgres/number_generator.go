package postgres

import (
	"crypto/rand"
	"math/big"
)

const (
	accountNumberDigits     = 12
	transactionNumberDigits = 16
	transactionNumberPrefix = "TXN-"
)

// RandomNumberGenerator generates external account and transaction numbers
// from crypto/rand. Uniqueness is enforced by the database constraints, not
// here; collisions on 12 and 16 digit spaces surface as insert errors.
type RandomNumberGenerator struct{}

// NewRandomNumberGenerator creates a new RandomNumberGenerator.
func NewRandomNumberGenerator() *RandomNumberGenerator {
	return &RandomNumberGenerator{}
}

// AccountNumber returns a 12-digit account number.
func (g *RandomNumberGenerator) AccountNumber() string {
	return randomDigits(accountNumberDigits)
}

// TransactionNumber returns a prefixed 16-digit transaction number.
func (g *RandomNumberGenerator) TransactionNumber() string {
	return transactionNumberPrefix + randomDigits(transactionNumberDigits)
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		digits[i] = '0' + byte(v.Int64())
	}

	return string(digits)
}
