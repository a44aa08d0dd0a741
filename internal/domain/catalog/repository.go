package catalog

import "context"

type Repository interface {
	// Counts para decidir si hay que sembrar (SeedIfEmpty).
	CountSpecies(ctx context.Context) (int, error)
	CountBerries(ctx context.Context) (int, error)
	CountTypes(ctx context.Context) (int, error)

	InsertSpecies(ctx context.Context, s Species) error
	InsertBerry(ctx context.Context, b Berry) error
	InsertType(ctx context.Context, t TypeProfile) error

	GetSpecies(ctx context.Context, id int) (Species, error)
	ListSpecies(ctx context.Context) ([]Species, error)

	GetBerry(ctx context.Context, id int) (Berry, error)
	ListBerries(ctx context.Context) ([]Berry, error)

	GetType(ctx context.Context, name string) (TypeProfile, error)
}
