package friends

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	friends map[string]*Friend // keyed by friend id
	nextSeq int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		friends: make(map[string]*Friend),
		nextSeq: 1,
	}
}

func (r *InMemoryRepository) Save(_ context.Context, friend *Friend) error {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	friend.Seq = r.nextSeq
	r.nextSeq++
	friend.CreatedAt = time.Now()
	r.friends[friend.ID] = friend
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, ownerID, id string) (*Friend, error) {
	friend, ok := r.friends[id]
	if !ok || friend.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return friend, nil
}

func (r *InMemoryRepository) List(_ context.Context, ownerID string, limit, offset int) ([]*Friend, error) {
	var list []*Friend
	for _, friend := range r.friends {
		if friend.OwnerID == ownerID {
			list = append(list, friend)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Seq < list[j].Seq })

	if limit <= 0 {
		return list, nil
	}
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (r *InMemoryRepository) Count(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, friend := range r.friends {
		if friend.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, ownerID, id string) error {
	friend, ok := r.friends[id]
	if !ok || friend.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.friends, id)
	return nil
}
