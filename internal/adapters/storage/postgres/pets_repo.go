package postgres

import (
	"context"
	"database/sql"
	"strings"

	"poke-pets/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id, nickname, species_id,
			hunger, happiness,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.OwnerUserID,
		p.Nickname,
		p.SpeciesID,
		int(p.Hunger),
		int(p.Happiness),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			nickname = $2,
			hunger = $3,
			happiness = $4,
			updated_at = $5
		WHERE id = $1
	`,
		p.ID,
		p.Nickname,
		int(p.Hunger),
		int(p.Happiness),
		p.UpdatedAt,
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

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, nickname, species_id, hunger, happiness, created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, nickname, species_id, hunger, happiness, created_at, updated_at
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) CountByOwner(ctx context.Context, ownerUserID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pets WHERE owner_user_id = $1`, ownerUserID,
	).Scan(&n)
	return n, err
}

func (r *PetsRepo) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pets WHERE nickname = $1)`, nickname,
	).Scan(&exists)
	return exists, err
}

func (r *PetsRepo) ListAny(ctx context.Context, limit int) ([]pets.Pet, error) {
	if limit <= 0 {
		limit = 15
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, nickname, species_id, hunger, happiness, created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) AddTastedBerry(ctx context.Context, petID string, berryID int) error {
	// insert idempotente (add-if-absent del berrydex)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasted_berries (pet_id, berry_id)
		VALUES ($1, $2)
		ON CONFLICT (pet_id, berry_id) DO NOTHING
	`, petID, berryID)
	return err
}

func (r *PetsRepo) ListTastedBerries(ctx context.Context, petID string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT berry_id FROM tasted_berries WHERE pet_id = $1 ORDER BY berry_id ASC
	`, petID)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var hunger, happiness int
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Nickname,
		&p.SpeciesID,
		&hunger,
		&happiness,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	p.Hunger = pets.Stat(hunger)
	p.Happiness = pets.Stat(happiness)
	return p, nil
}

func scanPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
