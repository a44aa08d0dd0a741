package actions

import (
	"poke-pets/internal/domain/catalog"
	"poke-pets/internal/domain/inventory"
	"poke-pets/internal/domain/pets"
)

type FeedOutcome string

const (
	FeedNotHungry     FeedOutcome = "not_hungry"
	FeedSnackEaten    FeedOutcome = "snack"
	FeedFavorite      FeedOutcome = "favorite"
	FeedLeastFavorite FeedOutcome = "least_favorite"
	FeedNeutral       FeedOutcome = "neutral"
)

type PlayOutcome string

const (
	PlayPlayed    PlayOutcome = "played"
	PlayTooHungry PlayOutcome = "too_hungry"
)

type ForageOutcome string

const (
	ForageFound    ForageOutcome = "found"
	ForageNothing  ForageOutcome = "nothing"
	ForageTooTired ForageOutcome = "too_tired"
)

// FeedResult es el resultado de feed snack / feed berry.
// Pet trae los stats posteriores a la acción (o intactos si fue rechazo).
type FeedResult struct {
	Outcome FeedOutcome
	Pet     pets.Pet
	Message string
}

type PlayResult struct {
	Outcome PlayOutcome
	Pet     pets.Pet

	// AlreadyHappy es informativo: happiness ya estaba en 100 antes de jugar.
	// No bloquea la acción.
	AlreadyHappy bool
	Message      string
}

type ForageResult struct {
	Outcome ForageOutcome
	Pet     pets.Pet

	// Solo en outcome "found".
	Berry *catalog.Berry
	Item  *inventory.BerryItem

	Message string
}
