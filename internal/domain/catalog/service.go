package catalog

import (
	"context"
	"errors"
	"math/rand/v2"

	"poke-pets/internal/platform/logger"
	"poke-pets/internal/ports/speciesdata"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	log  logger.Logger

	// pick elige un índice aleatorio en [0,n). Inyectable en tests.
	pick func(n int) int
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		pick: rand.IntN,
	}
}

// SeedOptions controla el import de especies externas.
type SeedOptions struct {
	Species    speciesdata.Source // nil => no importar especies
	SpeciesMax int                // cuántos ids (1..max) pedir al source
}

// SeedIfEmpty siembra berries, types y especies solo si sus tablas están vacías.
// Idempotente: se invoca una vez al arranque, nunca por request.
func (s *Service) SeedIfEmpty(ctx context.Context, opts SeedOptions) error {
	n, err := s.repo.CountBerries(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for i, b := range seedBerries {
			b.ID = i + 1
			if err := s.repo.InsertBerry(ctx, b); err != nil {
				return err
			}
		}
		s.log.Info("seeded berries", map[string]any{"count": len(seedBerries)})
	}

	n, err = s.repo.CountTypes(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, t := range seedTypes {
			if err := s.repo.InsertType(ctx, t); err != nil {
				return err
			}
		}
		s.log.Info("seeded type profiles", map[string]any{"count": len(seedTypes)})
	}

	n, err = s.repo.CountSpecies(ctx)
	if err != nil {
		return err
	}
	if n == 0 && opts.Species != nil && opts.SpeciesMax > 0 {
		imported := 0
		for id := 1; id <= opts.SpeciesMax; id++ {
			data, err := opts.Species.Fetch(ctx, id)
			if err != nil {
				// Import one-shot: si el API externo falla a mitad, preferimos
				// arrancar con catálogo parcial antes que no arrancar.
				s.log.Warn("species import aborted", map[string]any{"id": id, "error": err.Error()})
				break
			}
			sp := Species{
				ID:        data.ID,
				Name:      data.Name,
				SpriteURL: data.SpriteURL,
				Type:      data.PrimaryType,
			}
			if err := s.repo.InsertSpecies(ctx, sp); err != nil {
				return err
			}
			imported++
		}
		s.log.Info("seeded species", map[string]any{"count": imported})
	}

	return nil
}

func (s *Service) GetSpecies(ctx context.Context, id int) (Species, error) {
	if id <= 0 {
		return Species{}, ErrInvalidInput
	}
	return s.repo.GetSpecies(ctx, id)
}

func (s *Service) ListSpecies(ctx context.Context) ([]Species, error) {
	return s.repo.ListSpecies(ctx)
}

// RandomAdoptables devuelve hasta count especies al azar (centro de adopción).
func (s *Service) RandomAdoptables(ctx context.Context, count int) ([]Species, error) {
	if count <= 0 {
		return nil, ErrInvalidInput
	}

	all, err := s.repo.ListSpecies(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) <= count {
		return all, nil
	}

	// Fisher-Yates parcial sobre una copia.
	out := make([]Species, len(all))
	copy(out, all)
	for i := 0; i < count; i++ {
		j := i + s.pick(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:count], nil
}

func (s *Service) GetBerry(ctx context.Context, id int) (Berry, error) {
	if id <= 0 {
		return Berry{}, ErrInvalidInput
	}
	return s.repo.GetBerry(ctx, id)
}

func (s *Service) ListBerries(ctx context.Context) ([]Berry, error) {
	return s.repo.ListBerries(ctx)
}

func (s *Service) GetTypeProfile(ctx context.Context, name string) (TypeProfile, error) {
	if name == "" {
		return TypeProfile{}, ErrInvalidInput
	}
	return s.repo.GetType(ctx, name)
}
