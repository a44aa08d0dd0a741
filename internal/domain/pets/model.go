package pets

import "time"

// MaxRoster es el tope de mascotas concurrentes por usuario.
const MaxRoster = 12

// Pet es una mascota adoptada. SpeciesID es inmutable post-adopción.
type Pet struct {
	ID          string
	OwnerUserID string

	Nickname  string // único global, 1..30 chars
	SpeciesID int

	Hunger    Stat
	Happiness Stat

	CreatedAt time.Time
	UpdatedAt time.Time
}
