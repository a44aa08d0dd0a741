package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"poke-pets/internal/domain/pets"
)

type petsRepo struct {
	mu     sync.RWMutex
	byID   map[string]pets.Pet
	tasted map[string]map[int]struct{} // petID -> berryIDs
}

func NewPetsRepo() *petsRepo {
	return &petsRepo{
		byID:   make(map[string]pets.Pet),
		tasted: make(map[string]map[int]struct{}),
	}
}

var _ pets.Repository = (*petsRepo)(nil)

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.tasted, id) // cascade del berrydex
	return nil
}

func (r *petsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petsRepo) CountByOwner(ctx context.Context, ownerUserID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			n++
		}
	}
	return n, nil
}

func (r *petsRepo) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (r *petsRepo) ListAny(ctx context.Context, limit int) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *petsRepo) AddTastedBerry(ctx context.Context, petID string, berryID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[petID]; !exists {
		return ErrNotFound
	}
	set, ok := r.tasted[petID]
	if !ok {
		set = make(map[int]struct{})
		r.tasted[petID] = set
	}
	set[berryID] = struct{}{} // idempotente
	return nil
}

func (r *petsRepo) ListTastedBerries(ctx context.Context, petID string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int, 0, len(r.tasted[petID]))
	for id := range r.tasted[petID] {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}

// deleteByOwner es el cascade que en Postgres hacen las FKs.
func (r *petsRepo) deleteByOwner(ownerUserID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			delete(r.byID, id)
			delete(r.tasted, id)
		}
	}
}
