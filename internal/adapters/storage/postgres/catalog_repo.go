package postgres

import (
	"context"
	"database/sql"

	"poke-pets/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) CountSpecies(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM species`)
}

func (r *CatalogRepo) CountBerries(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM berries`)
}

func (r *CatalogRepo) CountTypes(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM type_profiles`)
}

func (r *CatalogRepo) InsertSpecies(ctx context.Context, s catalog.Species) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO species (id, name, sprite_url, type_name)
		VALUES ($1,$2,$3,$4)
	`, s.ID, s.Name, s.SpriteURL, s.Type)
	return err
}

func (r *CatalogRepo) InsertBerry(ctx context.Context, b catalog.Berry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO berries (id, name, img_url)
		VALUES ($1,$2,$3)
	`, b.ID, b.Name, b.ImageURL)
	return err
}

func (r *CatalogRepo) InsertType(ctx context.Context, t catalog.TypeProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO type_profiles (name, fav_berry_id, least_fav_berry_id)
		VALUES ($1,$2,$3)
	`, t.Name, t.FavoriteBerryID, t.LeastFavoriteBerryID)
	return err
}

func (r *CatalogRepo) GetSpecies(ctx context.Context, id int) (catalog.Species, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, sprite_url, type_name FROM species WHERE id = $1
	`, id)

	var s catalog.Species
	if err := row.Scan(&s.ID, &s.Name, &s.SpriteURL, &s.Type); err != nil {
		if err == sql.ErrNoRows {
			return catalog.Species{}, ErrNotFound
		}
		return catalog.Species{}, err
	}
	return s, nil
}

func (r *CatalogRepo) ListSpecies(ctx context.Context) ([]catalog.Species, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, sprite_url, type_name FROM species ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSpeciesRows(rows)
}

func (r *CatalogRepo) GetBerry(ctx context.Context, id int) (catalog.Berry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, img_url FROM berries WHERE id = $1
	`, id)

	var b catalog.Berry
	if err := row.Scan(&b.ID, &b.Name, &b.ImageURL); err != nil {
		if err == sql.ErrNoRows {
			return catalog.Berry{}, ErrNotFound
		}
		return catalog.Berry{}, err
	}
	return b, nil
}

func (r *CatalogRepo) ListBerries(ctx context.Context) ([]catalog.Berry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, img_url FROM berries ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Berry, 0)
	for rows.Next() {
		var b catalog.Berry
		if err := rows.Scan(&b.ID, &b.Name, &b.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) GetType(ctx context.Context, name string) (catalog.TypeProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, fav_berry_id, least_fav_berry_id FROM type_profiles WHERE name = $1
	`, name)

	var t catalog.TypeProfile
	if err := row.Scan(&t.Name, &t.FavoriteBerryID, &t.LeastFavoriteBerryID); err != nil {
		if err == sql.ErrNoRows {
			return catalog.TypeProfile{}, ErrNotFound
		}
		return catalog.TypeProfile{}, err
	}
	return t, nil
}

func (r *CatalogRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}

func scanSpeciesRows(rows *sql.Rows) ([]catalog.Species, error) {
	out := make([]catalog.Species, 0)
	for rows.Next() {
		var s catalog.Species
		if err := rows.Scan(&s.ID, &s.Name, &s.SpriteURL, &s.Type); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
