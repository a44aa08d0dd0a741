package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"poke-pets/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrRosterFull    = errors.New("roster full")
	ErrNicknameTaken = errors.New("nickname taken")
)

// SpeciesCatalog es lo que pets necesita del catálogo (evita acoplar al Service entero).
type SpeciesCatalog interface {
	GetSpecies(ctx context.Context, id int) (catalog.Species, error)
}

// SeenLog registra especies vistas por un usuario (lo implementa users.Service).
// Interface local para evitar ciclo de imports pets <-> users.
type SeenLog interface {
	AddSeen(ctx context.Context, userID string, speciesID int) error
}

type Service struct {
	repo    Repository
	species SpeciesCatalog
	seen    SeenLog
	now     func() time.Time
}

func NewService(repo Repository, species SpeciesCatalog, seen SeenLog) *Service {
	return &Service{
		repo:    repo,
		species: species,
		seen:    seen,
		now:     time.Now,
	}
}

type AdoptInput struct {
	SpeciesID int
	Nickname  string
}

// Adopt crea una mascota con stats por defecto.
// Precondiciones en orden: roster lleno, apodo tomado (unicidad global).
func (s *Service) Adopt(ctx context.Context, ownerUserID string, in AdoptInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	nickname := strings.TrimSpace(in.Nickname)

	if ownerUserID == "" {
		return Pet{}, ErrInvalidInput
	}
	if nickname == "" || len(nickname) > 30 {
		return Pet{}, ErrInvalidInput
	}
	if in.SpeciesID <= 0 {
		return Pet{}, ErrInvalidInput
	}

	sp, err := s.species.GetSpecies(ctx, in.SpeciesID)
	if err != nil {
		return Pet{}, ErrNotFound
	}

	n, err := s.repo.CountByOwner(ctx, ownerUserID)
	if err != nil {
		return Pet{}, err
	}
	if n >= MaxRoster {
		return Pet{}, ErrRosterFull
	}

	taken, err := s.repo.NicknameExists(ctx, nickname)
	if err != nil {
		return Pet{}, err
	}
	if taken {
		return Pet{}, ErrNicknameTaken
	}

	// Seen-set primero, pet después (mismo orden que el flujo original).
	// Best-effort secuencial, sin transacción que los ate.
	if err := s.seen.AddSeen(ctx, ownerUserID, sp.ID); err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Nickname:    nickname,
		SpeciesID:   sp.ID,
		Hunger:      DefaultStat,
		Happiness:   DefaultStat,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Release borra la mascota definitivamente. Solo el dueño puede.
func (s *Service) Release(ctx context.Context, petID, actorUserID string) error {
	p, err := s.GetOwned(ctx, petID, actorUserID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

// GetOwned resuelve la mascota y valida que actorUserID sea el dueño.
func (s *Service) GetOwned(ctx context.Context, petID, actorUserID string) (Pet, error) {
	if strings.TrimSpace(actorUserID) == "" {
		return Pet{}, ErrForbidden
	}
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != actorUserID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Showcase devuelve mascotas de cualquier usuario (página pública).
func (s *Service) Showcase(ctx context.Context, limit int) ([]Pet, error) {
	if limit <= 0 {
		limit = 15
	}
	return s.repo.ListAny(ctx, limit)
}

// ApplyStats persiste los stats ya mutados de una mascota.
func (s *Service) ApplyStats(ctx context.Context, p Pet) (Pet, error) {
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// AddTasted registra una berry en el berrydex de la mascota (idempotente).
func (s *Service) AddTasted(ctx context.Context, petID string, berryID int) error {
	if strings.TrimSpace(petID) == "" || berryID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.AddTastedBerry(ctx, petID, berryID)
}

func (s *Service) ListTasted(ctx context.Context, petID string) ([]int, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListTastedBerries(ctx, petID)
}
