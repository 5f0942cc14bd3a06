package split

// Friend is one participant on a receipt.
// Identity is ID; name and avatar are cosmetic.
type Friend struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// SubItem is one unit of a multi-quantity item, used when per-unit
// assignment is needed. Price is this unit's share of the parent total.
type SubItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           string   `json:"price"`
	AssignedFriends []string `json:"assigned_friends"`
}

// ReceiptItem is a single line on a receipt as entered by the user.
// Price and Quantity stay as the entered text; parsing happens in the
// allocator so a typo degrades to zero instead of failing the whole bill.
type ReceiptItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           string    `json:"price"`    // total cost of the line, not per unit
	Quantity        string    `json:"quantity"` // integer text, defaults to 1
	AssignedFriends []string  `json:"assigned_friends"`
	SplitEqually    bool      `json:"split_equally"`
	Subitems        []SubItem `json:"subitems,omitempty"`
}

// FriendBillItem is the portion of one item or subitem attributed to one
// friend.
type FriendBillItem struct {
	ItemName     string  `json:"item_name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
}

// FriendBill is one participant's computed share of a receipt.
// Bills are rebuilt from scratch on every computation, never mutated.
type FriendBill struct {
	Friend      Friend           `json:"friend"`
	Items       []FriendBillItem `json:"items"`
	TotalAmount float64          `json:"total_amount"`

	// Ambiguous marks a bill whose server total could not be attributed
	// safely because two participants share the fallback match name.
	Ambiguous bool `json:"ambiguous,omitempty"`
}

// ServerAmount is a per-friend total computed by the server.
// When present it supersedes any locally computed total.
type ServerAmount struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	AmountToPay float64 `json:"amountToPay"`
}
