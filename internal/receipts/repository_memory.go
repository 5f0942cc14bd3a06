package receipts

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	receipts map[string]*Receipt
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		receipts: make(map[string]*Receipt),
	}
}

func (r *InMemoryRepository) Save(_ context.Context, receipt *Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	receipt.CreatedAt = time.Now()
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, ownerID, id string) (*Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok || receipt.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return receipt, nil
}

func (r *InMemoryRepository) Update(_ context.Context, receipt *Receipt) error {
	existing, ok := r.receipts[receipt.ID]
	if !ok || existing.OwnerID != receipt.OwnerID {
		return ErrNotFound
	}
	receipt.CreatedAt = existing.CreatedAt
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *InMemoryRepository) ListByParticipant(_ context.Context, ownerID, friendID string) ([]*Receipt, error) {
	var list []*Receipt
	for _, receipt := range r.receipts {
		if receipt.OwnerID != ownerID {
			continue
		}
		for _, id := range receipt.Participants {
			if id == friendID {
				list = append(list, receipt)
				break
			}
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *InMemoryRepository) SetImageURL(_ context.Context, ownerID, id, url string) error {
	receipt, ok := r.receipts[id]
	if !ok || receipt.OwnerID != ownerID {
		return ErrNotFound
	}
	receipt.ImageURL = url
	return nil
}
