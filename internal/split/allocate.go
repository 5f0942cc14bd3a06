package split

import (
	"splittab/internal/money"
)

// Allocate computes each participant's share of the receipt.
// PURE business logic (no transport / no storage).
//
// Every participant gets a bill, even one with nothing assigned (an
// empty $0.00 bill, not an error). Items flagged split-equally divide
// their total price over their assigned friends; other items divide
// each subitem over that subitem's assigned friends independently.
// Items and subitems with no assignments contribute nothing.
//
// All accumulation happens in whole cents with largest-remainder
// distribution, so the attributed shares always sum back to the item
// totals exactly. Formatting to two decimals is a display concern.
func Allocate(items []ReceiptItem, participants []Friend) []FriendBill {
	bills := make([]FriendBill, len(participants))
	byID := make(map[string]*FriendBill, len(participants))
	totals := make(map[string]int64, len(participants))

	for i, f := range participants {
		bills[i] = FriendBill{Friend: f, Items: []FriendBillItem{}}
		byID[f.ID] = &bills[i]
	}

	for _, item := range items {
		if item.SplitEqually {
			allocateEqually(item, byID, totals)
			continue
		}
		for _, sub := range item.Subitems {
			allocateSubitem(sub, byID, totals)
		}
	}

	for i := range bills {
		bills[i].TotalAmount = money.CentsToFloat(totals[bills[i].Friend.ID])
	}
	return bills
}

// allocateEqually splits one item's total price over its assigned friends.
func allocateEqually(item ReceiptItem, byID map[string]*FriendBill, totals map[string]int64) {
	if len(item.AssignedFriends) == 0 {
		// Nobody assigned: the item contributes to no bill.
		return
	}

	price := money.ParseAmount(item.Price)
	quantity := money.ParseQuantity(item.Quantity)
	shares := money.SplitCents(price.Cents(), len(item.AssignedFriends))

	for i, friendID := range item.AssignedFriends {
		bill, ok := byID[friendID]
		if !ok {
			continue
		}
		bill.Items = append(bill.Items, FriendBillItem{
			ItemName:     item.Name,
			Quantity:     quantity,
			PricePerUnit: price.Float() / float64(quantity),
			TotalPrice:   money.CentsToFloat(shares[i]),
		})
		totals[friendID] += shares[i]
	}
}

// allocateSubitem splits one per-unit subitem over its own assigned
// friends, independently of its siblings.
func allocateSubitem(sub SubItem, byID map[string]*FriendBill, totals map[string]int64) {
	if len(sub.AssignedFriends) == 0 {
		return
	}

	price := money.ParseAmount(sub.Price)
	shares := money.SplitCents(price.Cents(), len(sub.AssignedFriends))

	for i, friendID := range sub.AssignedFriends {
		bill, ok := byID[friendID]
		if !ok {
			continue
		}
		bill.Items = append(bill.Items, FriendBillItem{
			ItemName:     sub.Name,
			Quantity:     1,
			PricePerUnit: price.Float(),
			TotalPrice:   money.CentsToFloat(shares[i]),
		})
		totals[friendID] += shares[i]
	}
}

// HasAssignments reports whether any item or subitem on the receipt has
// at least one friend assigned.
func HasAssignments(items []ReceiptItem) bool {
	for _, item := range items {
		if item.SplitEqually && len(item.AssignedFriends) > 0 {
			return true
		}
		if !item.SplitEqually {
			for _, sub := range item.Subitems {
				if len(sub.AssignedFriends) > 0 {
					return true
				}
			}
		}
	}
	return false
}
