package split

import (
	"strings"

	"github.com/shopspring/decimal"

	"splittab/internal/money"
)

// MismatchTolerance is the absolute difference between entered and
// calculated totals above which a mismatch is flagged. Exclusive: a
// difference of exactly 0.01 is still accepted.
const MismatchTolerance = 0.01

// ValidationResult is a soft warning, never a hard failure: a mismatch
// changes how the save button behaves, it does not block the save.
type ValidationResult struct {
	CalculatedTotal float64  `json:"calculated_total"`
	Mismatch        bool     `json:"mismatch"`
	InvalidFields   []string `json:"invalid_fields,omitempty"`
}

// Validate sums the entered item prices plus tax and tip and compares
// against the expected total. Malformed amounts count as zero but are
// reported in InvalidFields so "actually zero" and "unparsable" stay
// distinguishable. Empty fields are legitimately zero and not reported.
func Validate(expectedTotal float64, items []ReceiptItem, tax, tip string) ValidationResult {
	sum := decimal.Zero
	var invalid []string

	add := func(a money.Amount, field string) {
		if !a.Valid && strings.TrimSpace(a.Raw) != "" {
			invalid = append(invalid, field)
		}
		sum = sum.Add(a.Decimal())
	}

	for _, item := range items {
		add(money.ParseAmount(item.Price), "item:"+item.Name)
	}
	add(money.ParseAmount(tax), "tax")
	add(money.ParseAmount(tip), "tip")

	calculated, _ := sum.Float64()
	diff := sum.Sub(decimal.NewFromFloat(expectedTotal)).Abs()

	return ValidationResult{
		CalculatedTotal: calculated,
		Mismatch:        diff.GreaterThan(decimal.NewFromFloat(MismatchTolerance)),
		InvalidFields:   invalid,
	}
}
