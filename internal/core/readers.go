package core

import "context"

// FriendRef is the minimal friend view other domains need.
type FriendRef struct {
	Seq    int64
	ID     string
	Name   string
	Avatar string
}

// FriendReader exposes the friend roster to other domains without
// importing the friends package.
type FriendReader interface {
	FriendsByIDs(ctx context.Context, ownerID string, ids []string) ([]FriendRef, error)
}

// ReceiptSummary is the minimal receipt view nested under a friend in
// roster listings.
type ReceiptSummary struct {
	ReceiptID   string  `json:"receipt_id"`
	ReceiptName string  `json:"receipt_name"`
	AmountToPay float64 `json:"amount_to_pay"`
}

// ReceiptReader exposes receipt data to other domains without importing
// the receipts package.
type ReceiptReader interface {
	SummariesForFriend(ctx context.Context, ownerID, friendID string) ([]ReceiptSummary, error)
}
