package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	Delete(ctx context.Context, id string) error

	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
	CountByOwner(ctx context.Context, ownerUserID string) (int, error)

	// NicknameExists es global: los apodos son únicos entre TODAS las mascotas.
	NicknameExists(ctx context.Context, nickname string) (bool, error)

	// ListAny: vitrina de mascotas ajenas (página /pets original).
	ListAny(ctx context.Context, limit int) ([]Pet, error)

	// Tasted-set (berrydex de la mascota): insert idempotente.
	AddTastedBerry(ctx context.Context, petID string, berryID int) error
	ListTastedBerries(ctx context.Context, petID string) ([]int, error)
}
