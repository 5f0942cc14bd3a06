package render

import (
	"strings"
	"testing"

	"splittab/internal/split"
)

func TestWrapFragments(t *testing.T) {
	fragments := []Fragment{
		{Name: "Pizza", Price: 12.00},
		{Name: "Soda", Price: 2.00},
		{Name: "Fries", Price: 5.00},
	}

	lines := WrapFragments(fragments, 20)

	if len(lines) < 2 {
		t.Fatalf("got %d lines, want the fragments wrapped onto multiple lines: %v", len(lines), lines)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q is %d chars, exceeds width 20", line, len(line))
		}
	}

	joined := strings.Join(lines, ", ")
	for _, want := range []string{"Pizza ($12.00)", "Soda ($2.00)", "Fries ($5.00)"} {
		if !strings.Contains(joined, want) {
			t.Errorf("wrapped output missing fragment %q: %v", want, lines)
		}
	}
}

func TestWrapFragmentsPacksWhereRoomAllows(t *testing.T) {
	fragments := []Fragment{
		{Name: "Tea", Price: 2.00},
		{Name: "Bun", Price: 1.00},
	}

	// "Tea ($2.00), Bun ($1.00)" is 24 chars, fits on one line at 30.
	lines := WrapFragments(fragments, 30)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(lines), lines)
	}
	if lines[0] != "Tea ($2.00), Bun ($1.00)" {
		t.Errorf("line = %q", lines[0])
	}
}

func TestWrapFragmentsOversizedFragment(t *testing.T) {
	fragments := []Fragment{
		{Name: "Extremely Long Specialty Dish Name", Price: 99.00},
		{Name: "Tea", Price: 2.00},
	}

	lines := WrapFragments(fragments, 10)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	// The oversized fragment keeps its own line, unsplit.
	if !strings.HasPrefix(lines[0], "Extremely Long") {
		t.Errorf("first line = %q, want the oversized fragment intact", lines[0])
	}
}

func TestWrapFragmentsEmpty(t *testing.T) {
	if lines := WrapFragments(nil, 20); len(lines) != 0 {
		t.Errorf("got %v, want no lines", lines)
	}
}

func TestWrapFragmentsDefaultWidth(t *testing.T) {
	fragments := make([]Fragment, 6)
	for i := range fragments {
		fragments[i] = Fragment{Name: "Dish", Price: 1.00}
	}

	lines := WrapFragments(fragments, 0)
	for _, line := range lines {
		if len(line) > DefaultLineWidth {
			t.Errorf("line %q exceeds the default width", line)
		}
	}
}

func TestReceiptText(t *testing.T) {
	bills := []split.FriendBill{
		{
			Friend: split.Friend{ID: "f1", Name: "Alice"},
			Items: []split.FriendBillItem{
				{ItemName: "Pizza", Quantity: 1, PricePerUnit: 12.00, TotalPrice: 12.00},
				{ItemName: "Soda", Quantity: 1, PricePerUnit: 2.00, TotalPrice: 2.00},
			},
			TotalAmount: 14.00,
		},
		{
			Friend:      split.Friend{ID: "f2", Name: "Bob"},
			TotalAmount: 5.00,
			Ambiguous:   true,
		},
	}

	text := ReceiptText("Dinner at Mario's", bills, 40)
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if len(line) > 40 {
			t.Errorf("line %q is %d chars, exceeds width 40", line, len(line))
		}
	}
	if !strings.Contains(text, "Dinner at Mario's") {
		t.Error("rendered text missing the receipt name")
	}
	if !strings.Contains(text, "Alice") || !strings.Contains(text, "Bob") {
		t.Error("rendered text missing a participant block")
	}
	if !strings.Contains(text, "owes $14.00") {
		t.Error("rendered text missing Alice's total")
	}
	if !strings.Contains(text, "owes $5.00 (unconfirmed)") {
		t.Error("rendered text missing Bob's unconfirmed total")
	}
	if !strings.Contains(text, "Pizza ($12.00)") {
		t.Error("rendered text missing Alice's item breakdown")
	}
}
