package receipts

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("receipt not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save receipt (items as one JSONB document)
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, receipt *Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}

	doc, err := json.Marshal(receipt.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO receipts (
			id,
			owner_id,
			name,
			expected_total,
			tax,
			tip,
			participants,
			items
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query,
		receipt.ID,
		receipt.OwnerID,
		receipt.Name,
		receipt.ExpectedTotal,
		receipt.Tax,
		receipt.Tip,
		receipt.Participants,
		doc,
	).Scan(&receipt.CreatedAt)
}

// --------------------------------------------------
// Get one receipt (owner-scoped)
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*Receipt, error) {
	query := `
		SELECT id, owner_id, name, expected_total, tax, tip,
		       participants, items, COALESCE(image_url, ''), created_at
		FROM receipts
		WHERE owner_id = $1 AND id = $2
	`

	receipt := &Receipt{}
	var doc []byte

	err := r.db.QueryRow(ctx, query, ownerID, id).Scan(
		&receipt.ID,
		&receipt.OwnerID,
		&receipt.Name,
		&receipt.ExpectedTotal,
		&receipt.Tax,
		&receipt.Tip,
		&receipt.Participants,
		&doc,
		&receipt.ImageURL,
		&receipt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(doc, &receipt.Items); err != nil {
		return nil, err
	}
	return receipt, nil
}

// --------------------------------------------------
// Update receipt (full replace)
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, receipt *Receipt) error {
	doc, err := json.Marshal(receipt.Items)
	if err != nil {
		return err
	}

	cmd, err := r.db.Exec(ctx, `
		UPDATE receipts
		SET name = $1,
		    expected_total = $2,
		    tax = $3,
		    tip = $4,
		    participants = $5,
		    items = $6
		WHERE owner_id = $7 AND id = $8
	`,
		receipt.Name,
		receipt.ExpectedTotal,
		receipt.Tax,
		receipt.Tip,
		receipt.Participants,
		doc,
		receipt.OwnerID,
		receipt.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// List receipts a friend participates in
// --------------------------------------------------
func (r *PostgresRepository) ListByParticipant(ctx context.Context, ownerID, friendID string) ([]*Receipt, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, expected_total, tax, tip,
		       participants, items, COALESCE(image_url, ''), created_at
		FROM receipts
		WHERE owner_id = $1
		  AND $2 = ANY(participants)
		ORDER BY created_at DESC
	`, ownerID, friendID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Receipt
	for rows.Next() {
		receipt := &Receipt{}
		var doc []byte
		if err := rows.Scan(
			&receipt.ID,
			&receipt.OwnerID,
			&receipt.Name,
			&receipt.ExpectedTotal,
			&receipt.Tax,
			&receipt.Tip,
			&receipt.Participants,
			&doc,
			&receipt.ImageURL,
			&receipt.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(doc, &receipt.Items); err != nil {
			return nil, err
		}
		list = append(list, receipt)
	}
	return list, rows.Err()
}

// --------------------------------------------------
// Attach uploaded receipt image
// --------------------------------------------------
func (r *PostgresRepository) SetImageURL(ctx context.Context, ownerID, id, url string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE receipts
		SET image_url = $1
		WHERE owner_id = $2 AND id = $3
	`, url, ownerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
