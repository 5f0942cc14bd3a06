package friends

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, friend *Friend) error
	Get(ctx context.Context, ownerID, id string) (*Friend, error)
	// List returns the owner's friends ordered by creation time.
	// limit <= 0 means no pagination.
	List(ctx context.Context, ownerID string, limit, offset int) ([]*Friend, error)
	Count(ctx context.Context, ownerID string) (int, error)
	Delete(ctx context.Context, ownerID, id string) error
}
