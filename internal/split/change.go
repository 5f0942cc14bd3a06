package split

import (
	"errors"

	"splittab/internal/money"
)

// ErrInvalidTender rejects a tendered amount before any computation.
var ErrInvalidTender = errors.New("amount paid must be a non-negative number")

// Change computes tendered minus owed in whole cents.
// Positive means change due back, negative means the friend still owes.
func Change(amountOwed float64, amountPaid string) (float64, error) {
	paid := money.ParseAmount(amountPaid)
	if !paid.Valid || paid.Decimal().IsNegative() {
		return 0, ErrInvalidTender
	}

	return money.CentsToFloat(paid.Cents() - money.ToCents(amountOwed)), nil
}
