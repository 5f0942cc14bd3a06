package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is the result of parsing user-entered money text.
// A real zero and "could not parse" are different states: a typo in a
// price field must never silently become $0.00 without a trace.
type Amount struct {
	Raw   string
	Valid bool
	dec   decimal.Decimal
}

// ParseAmount parses decimal money text. Empty or malformed input yields
// an invalid Amount with value zero.
func ParseAmount(text string) Amount {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Amount{Raw: text}
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Amount{Raw: text}
	}

	return Amount{Raw: text, Valid: true, dec: d}
}

// Decimal returns the exact parsed value (zero when invalid).
func (a Amount) Decimal() decimal.Decimal {
	return a.dec
}

// Float returns the parsed value as a float64 (zero when invalid).
func (a Amount) Float() float64 {
	f, _ := a.dec.Float64()
	return f
}

// Cents returns the value rounded to the nearest cent.
func (a Amount) Cents() int64 {
	return a.dec.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ParseQuantity parses integer quantity text.
// Malformed or non-positive input defaults to 1.
func ParseQuantity(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// SplitCents divides total evenly into n shares using largest-remainder
// distribution: earlier shares absorb the leftover cents, so the shares
// always sum back to total exactly.
func SplitCents(total int64, n int) []int64 {
	if n <= 0 {
		return nil
	}

	base := total / int64(n)
	remainder := total - base*int64(n)

	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}
	return shares
}

// ToCents converts a float amount to whole cents.
func ToCents(v float64) int64 {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CentsToFloat converts whole cents back to a float amount.
func CentsToFloat(c int64) float64 {
	return float64(c) / 100
}

// Format renders an amount with exactly two decimals for display.
// Computation never uses the formatted value.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatCents renders whole cents as a two-decimal string.
func FormatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
