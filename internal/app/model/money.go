package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places prices and totals are kept at
const MoneyPlaces = 2

// Money is a decimal amount serialized as a fixed-point string ("150.00")
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(MoneyPlaces)}
}

// MustMoney parses a literal amount and panics on malformed input. Used for static data.
func MustMoney(s string) Money {
	return NewMoney(decimal.RequireFromString(s))
}

func ZeroMoney() Money {
	return Money{Decimal: decimal.Zero}
}

func (m Money) String() string {
	return m.StringFixed(MoneyPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *Money) Scan(value interface{}) error {
	return m.Decimal.Scan(value)
}
