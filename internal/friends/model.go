package friends

import "time"

// Friend is a saved participant owned by one account.
// Seq is the numeric identifier used on the wire for computed amounts
// (clients key local state by the string ID).
type Friend struct {
	Seq       int64     `json:"seq"`
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
