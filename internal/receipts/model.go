package receipts

import (
	"time"

	"splittab/internal/split"
)

// Receipt is one entered bill: line items with friend assignments plus
// the totals the user typed in. ExpectedTotal, Tax and Tip stay as the
// entered text so the validator can tell a zero from a typo.
type Receipt struct {
	ID            string              `json:"id"`
	OwnerID       string              `json:"-"`
	Name          string              `json:"name"`
	ExpectedTotal string              `json:"expected_total"`
	Tax           string              `json:"tax"`
	Tip           string              `json:"tip"`
	Participants  []string            `json:"participants"` // friend ids
	Items         []split.ReceiptItem `json:"items"`
	ImageURL      string              `json:"image_url,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// FinalAmount is the wire form of one participant's computed total.
// The id is the friend's numeric sequence, matching what change
// calculation requests send back.
type FinalAmount struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	AmountToPay float64 `json:"amountToPay"`
}
