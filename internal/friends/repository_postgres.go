package friends

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("friend not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save friend
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, friend *Friend) error {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}

	query := `
		INSERT INTO friends (id, owner_id, name, avatar)
		VALUES ($1, $2, $3, $4)
		RETURNING seq, created_at
	`

	return r.db.QueryRow(ctx, query,
		friend.ID,
		friend.OwnerID,
		friend.Name,
		friend.Avatar,
	).Scan(&friend.Seq, &friend.CreatedAt)
}

// --------------------------------------------------
// Get one friend (owner-scoped)
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*Friend, error) {
	query := `
		SELECT seq, id, owner_id, name, avatar, created_at
		FROM friends
		WHERE owner_id = $1 AND id = $2
	`

	friend := &Friend{}
	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&friend.Seq,
		&friend.ID,
		&friend.OwnerID,
		&friend.Name,
		&friend.Avatar,
		&friend.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return friend, nil
}

// --------------------------------------------------
// List friends (optionally paginated)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, ownerID string, limit, offset int) ([]*Friend, error) {
	query := `
		SELECT seq, id, owner_id, name, avatar, created_at
		FROM friends
		WHERE owner_id = $1
		ORDER BY created_at ASC, seq ASC
	`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, query+` LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	} else {
		rows, err = r.db.Query(ctx, query, ownerID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Friend
	for rows.Next() {
		friend := &Friend{}
		if err := rows.Scan(
			&friend.Seq,
			&friend.ID,
			&friend.OwnerID,
			&friend.Name,
			&friend.Avatar,
			&friend.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, friend)
	}
	return list, rows.Err()
}

// --------------------------------------------------
// Count friends
// --------------------------------------------------
func (r *PostgresRepository) Count(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM friends WHERE owner_id = $1
	`, ownerID).Scan(&count)
	return count, err
}

// --------------------------------------------------
// Delete friend
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM friends
		WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
