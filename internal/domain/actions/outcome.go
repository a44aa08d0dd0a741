package actions

import (
	"math/rand/v2"

	"poke-pets/internal/domain/catalog"
)

// Die tira dados uniformes. El roll es inyectable para tests deterministas.
type Die struct {
	roll func(n int) int // uniforme en [0,n)
}

func NewDie() *Die {
	return &Die{roll: rand.IntN}
}

// Roll devuelve un entero uniforme en [1, maxInclusive].
func (d *Die) Roll(maxInclusive int) int {
	if maxInclusive <= 1 {
		return 1
	}
	return d.roll(maxInclusive) + 1
}

// ForageRoll es el resultado crudo del randomizer de forrajeo.
type ForageRoll struct {
	Found   bool
	BerryID int
}

// AttemptForage: d100 < 10 => fracaso (10%); si no, un d10 decide
// directamente el id de berry. El seed del catálogo garantiza ids 1..10.
func (d *Die) AttemptForage() ForageRoll {
	if d.Roll(100) < 10 {
		return ForageRoll{}
	}
	return ForageRoll{Found: true, BerryID: d.Roll(10)}
}

// BerryMatch clasifica una berry contra las preferencias del tipo de la especie.
type BerryMatch string

const (
	MatchFavorite      BerryMatch = "favorite"
	MatchLeastFavorite BerryMatch = "least_favorite"
	MatchNeutral       BerryMatch = "neutral"
)

// ClassifyBerry compara el id de la berry con el perfil del tipo.
func ClassifyBerry(tp catalog.TypeProfile, berryID int) BerryMatch {
	switch berryID {
	case tp.FavoriteBerryID:
		return MatchFavorite
	case tp.LeastFavoriteBerryID:
		return MatchLeastFavorite
	default:
		return MatchNeutral
	}
}
