package render

import (
	"fmt"
	"strings"

	"splittab/internal/money"
	"splittab/internal/split"
)

// DefaultLineWidth is the character width of the receipt-style rendering.
const DefaultLineWidth = 48

// Fragment is one "name ($price)" piece of a breakdown line.
type Fragment struct {
	Name  string
	Price float64
}

func (f Fragment) String() string {
	return fmt.Sprintf("%s ($%s)", f.Name, money.Format(f.Price))
}

// WrapFragments greedily packs fragments into lines no wider than
// maxWidth, joined by ", ". First-fit and order-preserving. A single
// fragment longer than the width is not split further; it becomes its
// own oversized line.
func WrapFragments(fragments []Fragment, maxWidth int) []string {
	if maxWidth <= 0 {
		maxWidth = DefaultLineWidth
	}

	var lines []string
	var line string

	for _, frag := range fragments {
		text := frag.String()
		switch {
		case line == "":
			line = text
		case len(line)+len(", ")+len(text) <= maxWidth:
			line += ", " + text
		default:
			lines = append(lines, line)
			line = text
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// ReceiptText renders a fixed-width plain-text summary of the computed
// bills, one block per participant, suitable for sharing.
func ReceiptText(receiptName string, bills []split.FriendBill, width int) string {
	if width <= 0 {
		width = DefaultLineWidth
	}

	var b strings.Builder
	rule := strings.Repeat("=", width)

	b.WriteString(rule + "\n")
	b.WriteString(center(receiptName, width) + "\n")
	b.WriteString(rule + "\n")

	for _, bill := range bills {
		b.WriteString(bill.Friend.Name + "\n")

		fragments := make([]Fragment, len(bill.Items))
		for i, item := range bill.Items {
			fragments[i] = Fragment{Name: item.ItemName, Price: item.TotalPrice}
		}
		for _, line := range WrapFragments(fragments, width-2) {
			b.WriteString("  " + line + "\n")
		}

		total := "owes $" + money.Format(bill.TotalAmount)
		if bill.Ambiguous {
			total += " (unconfirmed)"
		}
		b.WriteString("  " + total + "\n")
		b.WriteString(strings.Repeat("-", width) + "\n")
	}

	return b.String()
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
