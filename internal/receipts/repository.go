package receipts

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, receipt *Receipt) error
	Get(ctx context.Context, ownerID, id string) (*Receipt, error)
	Update(ctx context.Context, receipt *Receipt) error
	ListByParticipant(ctx context.Context, ownerID, friendID string) ([]*Receipt, error)
	SetImageURL(ctx context.Context, ownerID, id, url string) error
}
