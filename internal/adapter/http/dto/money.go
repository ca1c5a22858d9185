package dto

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money wraps a decimal for the wire format: amounts serialize as plain JSON
// numbers with two-decimal precision, never as quoted strings.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyPtr wraps an optional decimal.
func MoneyPtr(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}

	m := NewMoney(*d)

	return &m
}

// MarshalJSON emits the amount as a bare number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

// UnmarshalJSON accepts both bare numbers and quoted strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	m.Decimal = d

	return nil
}
