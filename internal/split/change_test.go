package split

import (
	"errors"
	"testing"
)

func TestChange(t *testing.T) {
	tests := []struct {
		name       string
		amountOwed float64
		amountPaid string
		want       float64
		wantErr    bool
	}{
		{"change due back", 42.50, "50.00", 7.50, false},
		{"exact payment", 42.50, "42.50", 0, false},
		{"underpayment is negative", 42.50, "40.00", -2.50, false},
		{"zero tendered is allowed", 10.00, "0", -10.00, false},
		{"empty tendered rejected", 10.00, "", 0, true},
		{"garbage tendered rejected", 10.00, "fifty", 0, true},
		{"negative tendered rejected", 10.00, "-5.00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Change(tt.amountOwed, tt.amountPaid)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTender) {
					t.Fatalf("Change() error = %v, want ErrInvalidTender", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Change() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Change(%v, %q) = %v, want %v", tt.amountOwed, tt.amountPaid, got, tt.want)
			}
		})
	}
}
