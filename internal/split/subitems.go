package split

import (
	"fmt"

	"github.com/google/uuid"

	"splittab/internal/money"
)

// MakeSubitems expands a multi-quantity item into one subitem per unit
// so each unit can be assigned individually. The parent's total price is
// divided evenly over the units; leftover cents land on the first units.
func MakeSubitems(item ReceiptItem) []SubItem {
	quantity := money.ParseQuantity(item.Quantity)
	price := money.ParseAmount(item.Price)
	shares := money.SplitCents(price.Cents(), quantity)

	subs := make([]SubItem, quantity)
	for i := range subs {
		subs[i] = SubItem{
			ID:              uuid.New().String(),
			Name:            fmt.Sprintf("%s #%d", item.Name, i+1),
			Price:           money.FormatCents(shares[i]),
			AssignedFriends: []string{},
		}
	}
	return subs
}
