package speciesdata

import "context"

// SpeciesData es lo mínimo que necesitamos del catálogo externo.
type SpeciesData struct {
	ID          int
	Name        string
	SpriteURL   string
	PrimaryType string
}

// Source provee especies por id estable (import one-shot al inicio).
type Source interface {
	Fetch(ctx context.Context, id int) (SpeciesData, error)
}
