package split

import (
	"strconv"
)

// Reconcile overlays authoritative server totals onto locally computed
// bills. The server's amountToPay always wins for the displayed total;
// local allocation only decides which items show under each name.
//
// The server identifies friends by numeric id while local state may key
// by string id, so matching tries the id first and falls back to the
// name. When two unmatched participants share the fallback name the
// bill is marked Ambiguous and keeps its local total rather than
// risking a silent mis-attribution.
func Reconcile(bills []FriendBill, amounts []ServerAmount) []FriendBill {
	if len(amounts) == 0 {
		return bills
	}

	out := make([]FriendBill, len(bills))
	copy(out, bills)

	matchedBill := make([]bool, len(out))
	matchedAmount := make([]bool, len(amounts))

	// First pass: exact id match.
	for ai, sa := range amounts {
		id := strconv.FormatInt(sa.ID, 10)
		for bi := range out {
			if matchedBill[bi] || out[bi].Friend.ID != id {
				continue
			}
			out[bi].TotalAmount = sa.AmountToPay
			matchedBill[bi] = true
			matchedAmount[ai] = true
			break
		}
	}

	// Second pass: name fallback over whatever is left.
	for ai, sa := range amounts {
		if matchedAmount[ai] {
			continue
		}

		var candidates []int
		for bi := range out {
			if !matchedBill[bi] && out[bi].Friend.Name == sa.Name {
				candidates = append(candidates, bi)
			}
		}

		switch len(candidates) {
		case 0:
			// Server knows a participant local state does not; nothing
			// to overlay.
		case 1:
			bi := candidates[0]
			out[bi].TotalAmount = sa.AmountToPay
			matchedBill[bi] = true
		default:
			for _, bi := range candidates {
				out[bi].Ambiguous = true
			}
		}
	}

	return out
}
