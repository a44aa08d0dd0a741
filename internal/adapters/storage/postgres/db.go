package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea las tablas si no existen (bootstrap de dev, sin migraciones).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username VARCHAR(20) NOT NULL UNIQUE,
			email VARCHAR(50) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS species (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			sprite_url TEXT NOT NULL,
			type_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS type_profiles (
			name TEXT PRIMARY KEY,
			fav_berry_id INTEGER NOT NULL,
			least_fav_berry_id INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS berries (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			img_url TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pets (
			id TEXT PRIMARY KEY,
			owner_user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			nickname VARCHAR(30) NOT NULL UNIQUE,
			species_id INTEGER NOT NULL,
			hunger INTEGER NOT NULL,
			happiness INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS seen_species (
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			species_id INTEGER NOT NULL,
			PRIMARY KEY (user_id, species_id)
		)`,
		`CREATE TABLE IF NOT EXISTS tasted_berries (
			pet_id TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
			berry_id INTEGER NOT NULL,
			PRIMARY KEY (pet_id, berry_id)
		)`,
		`CREATE TABLE IF NOT EXISTS berry_items (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			berry_id INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
