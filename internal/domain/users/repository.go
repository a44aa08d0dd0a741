package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// Delete borra el usuario. Las filas dependientes (pets, items, seen-set)
	// caen por cascade en el adapter.
	Delete(ctx context.Context, id string) error

	// Seen-set (pokedex del usuario): insert idempotente.
	AddSeenSpecies(ctx context.Context, userID string, speciesID int) error
	ListSeenSpecies(ctx context.Context, userID string) ([]int, error)
}
