package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency amount with exact decimal arithmetic. Sums are
// accumulated in decimal form; only the JSON boundary renders a fixed
// two-fraction-digit number, so 0.10 + 0.10 + 0.10 is exactly 0.30.
type Money struct {
	decimal.Decimal
}

// MoneyFromString parses a decimal currency string such as "25.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	return Money{Decimal: d}, nil
}

// MoneyFromFloat converts a float (e.g. from a JSON number) to Money,
// rounding to 2 fractional digits once at the boundary.
func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f).Round(2)}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// MarshalJSON renders the amount as a JSON number with 2 fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	m.Decimal = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.Decimal.StringFixed(2), nil
}

func (m *Money) Scan(value interface{}) error {
	if value == nil {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.Scan(value)
}
