package catalog

import "fmt"

// Species es data de referencia inmutable: una criatura adoptable.
// Los IDs son estables (1..N) y vienen del catálogo externo.
type Species struct {
	ID        int
	Name      string
	SpriteURL string
	Type      string // nombre de TypeProfile
}

// DexID devuelve el id con padding estilo pokedex ("001").
func (s Species) DexID() string {
	return padDexID(s.ID)
}

// TypeProfile define, por tipo de especie, qué berry ama y cuál odia.
type TypeProfile struct {
	Name                 string
	FavoriteBerryID      int
	LeastFavoriteBerryID int
}

// Berry es data de referencia inmutable: una clase de berry.
type Berry struct {
	ID       int
	Name     string
	ImageURL string
}

func padDexID(id int) string {
	return fmt.Sprintf("%03d", id)
}
