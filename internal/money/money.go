// Package money provides a fixed-point monetary amount stored as int64
// cents. All arithmetic is integer-only, no floating point.
package money

import (
	"errors"
	"strconv"
	"strings"
)

// Amount is a signed monetary value in cents.
// Ledger income is positive, expenditure negative.
type Amount int64

// maxInputLen bounds the textual form accepted by Parse.
const maxInputLen = 13

var (
	ErrMalformed = errors.New("malformed amount")
	ErrOverflow  = errors.New("amount overflow")
)

// Parse converts a non-negative decimal string into an Amount.
// The input must be at most 13 characters, contain only digits and at most
// one '.', include at least one digit, and carry no more than two fraction
// digits.
func Parse(s string) (Amount, error) {
	if s == "" || len(s) > maxInputLen {
		return 0, ErrMalformed
	}
	if strings.Count(s, ".") > 1 {
		return 0, ErrMalformed
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, ErrMalformed
	}
	if len(fracPart) > 2 {
		return 0, ErrMalformed
	}

	whole, ok := parseDigits(intPart)
	if !ok {
		return 0, ErrMalformed
	}
	frac, ok := parseDigits(fracPart)
	if !ok {
		return 0, ErrMalformed
	}
	if len(fracPart) == 1 {
		frac *= 10
	}
	return Amount(whole*100 + frac), nil
}

// parseDigits converts a run of decimal digits to its value. An empty run
// is zero. Anything outside 0-9, signs included, fails.
func parseDigits(s string) (int64, bool) {
	var v int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int64(c-'0')
	}
	return v, true
}

// String renders the amount with exactly two fraction digits, e.g. "29.97"
// or "-50.00".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + strconv.FormatInt(v/100, 10) + "." + pad2(v%100)
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}

// MulInt multiplies the amount by a quantity, failing on int64 overflow.
func (a Amount) MulInt(qty int64) (Amount, error) {
	if a == 0 || qty == 0 {
		return 0, nil
	}
	v := int64(a) * qty
	if v/qty != int64(a) {
		return 0, ErrOverflow
	}
	return Amount(v), nil
}

// Neg returns the negated amount.
func (a Amount) Neg() Amount { return -a }

// Abs returns the absolute value.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool { return a > 0 }

// IsNegative reports whether the amount is less than zero.
func (a Amount) IsNegative() bool { return a < 0 }
