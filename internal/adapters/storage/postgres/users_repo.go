package postgres

import (
	"context"
	"database/sql"
	"strings"

	"poke-pets/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, updated_at = $5
		WHERE id = $1
	`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, ErrNotFound
	}
	return r.getWhere(ctx, `id = $1`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getWhere(ctx, `username = $1`, username)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getWhere(ctx, `email = $1`, email)
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	// pets, berry_items y seen_species caen por ON DELETE CASCADE
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) AddSeenSpecies(ctx context.Context, userID string, speciesID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO seen_species (user_id, species_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, species_id) DO NOTHING
	`, userID, speciesID)
	return err
}

func (r *UsersRepo) ListSeenSpecies(ctx context.Context, userID string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT species_id FROM seen_species WHERE user_id = $1 ORDER BY species_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *UsersRepo) getWhere(ctx context.Context, where string, arg any) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE `+where, arg)

	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
