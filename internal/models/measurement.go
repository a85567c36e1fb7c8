package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Measurement is a single reading taken on a System.
type Measurement struct {
	ID          int64     `json:"id"`
	SystemID    int64     `json:"hydroponic_system"`
	PH          Fixed     `json:"ph"`
	Temperature Fixed     `json:"temperature"`
	TDS         Fixed     `json:"tds"`
	Timestamp   time.Time `json:"timestamp"`
}

// FixedPlaces is the number of decimal places kept for readings.
const FixedPlaces = 2

// Fixed is a decimal value with two fractional digits.
// It is rendered as a string ("7.25") and accepts JSON numbers or strings.
type Fixed struct {
	decimal.Decimal
}

// NewFixed builds a Fixed from its value in hundredths.
func NewFixed(hundredths int64) Fixed {
	return Fixed{decimal.New(hundredths, -FixedPlaces)}
}

// MustFixed parses s and panics on error. Intended for tests and constants.
func MustFixed(s string) Fixed {
	return Fixed{decimal.RequireFromString(s)}
}

// Hundredths returns the value scaled to an integer number of hundredths.
// Digits beyond the second place are truncated.
func (f Fixed) Hundredths() int64 {
	return f.Shift(FixedPlaces).IntPart()
}

// Places reports how many fractional digits are significant.
func (f Fixed) Places() int32 {
	var p int32
	for !f.Truncate(p).Equal(f.Decimal) {
		p++
	}
	return p
}

// IntegerDigits reports the number of digits before the decimal point.
func (f Fixed) IntegerDigits() int {
	whole := f.Abs().Truncate(0)
	if whole.IsZero() {
		return 0
	}
	return len(whole.String())
}

func (f Fixed) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.StringFixed(FixedPlaces) + `"`), nil
}

func (f Fixed) String() string {
	return f.StringFixed(FixedPlaces)
}
