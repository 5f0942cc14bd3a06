package friends

import (
	"context"
	"errors"

	"splittab/internal/core"
)

const DefaultPageSize = 20

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Add friend (the ONLY way a friend enters the roster)
// --------------------------------------------------
func (s *Service) AddFriend(ctx context.Context, ownerID, name, avatar string) (*Friend, error) {
	if name == "" {
		return nil, errors.New("friend name is required")
	}

	friend := &Friend{
		OwnerID: ownerID,
		Name:    name,
		Avatar:  avatar,
	}

	if err := s.repo.Save(ctx, friend); err != nil {
		return nil, err
	}
	return friend, nil
}

// --------------------------------------------------
// List friends (paginated)
// --------------------------------------------------
func (s *Service) ListFriends(ctx context.Context, ownerID string, page, limit int) ([]*Friend, int, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	total, err := s.repo.Count(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	list, err := s.repo.List(ctx, ownerID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// --------------------------------------------------
// List friends (non-paginated fallback)
// --------------------------------------------------
func (s *Service) ListAllFriends(ctx context.Context, ownerID string) ([]*Friend, error) {
	return s.repo.List(ctx, ownerID, 0, 0)
}

// --------------------------------------------------
// Remove friend
// --------------------------------------------------
func (s *Service) RemoveFriend(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// --------------------------------------------------
// core.FriendReader (used by the receipts domain)
// --------------------------------------------------
func (s *Service) FriendsByIDs(ctx context.Context, ownerID string, ids []string) ([]core.FriendRef, error) {
	refs := make([]core.FriendRef, 0, len(ids))
	for _, id := range ids {
		friend, err := s.repo.Get(ctx, ownerID, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		refs = append(refs, core.FriendRef{
			Seq:    friend.Seq,
			ID:     friend.ID,
			Name:   friend.Name,
			Avatar: friend.Avatar,
		})
	}
	return refs, nil
}
