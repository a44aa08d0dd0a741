package postgres

import (
	"context"
	"database/sql"
	"strings"

	"poke-pets/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Create(ctx context.Context, it inventory.BerryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO berry_items (id, user_id, berry_id, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		it.ID,
		it.UserID,
		it.BerryID,
		it.CreatedAt,
	)
	return err
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (inventory.BerryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return inventory.BerryItem{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, berry_id, created_at
		FROM berry_items
		WHERE id = $1
	`, id)

	var it inventory.BerryItem
	if err := row.Scan(&it.ID, &it.UserID, &it.BerryID, &it.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return inventory.BerryItem{}, ErrNotFound
		}
		return inventory.BerryItem{}, err
	}
	return it, nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM berry_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) ListByUser(ctx context.Context, userID string) ([]inventory.BerryItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, berry_id, created_at
		FROM berry_items
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.BerryItem, 0)
	for rows.Next() {
		var it inventory.BerryItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.BerryID, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
