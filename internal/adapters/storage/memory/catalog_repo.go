package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"poke-pets/internal/domain/catalog"
)

var (
	ErrNotFound = errors.New("not found")
)

type catalogRepo struct {
	mu      sync.RWMutex
	species map[int]catalog.Species
	berries map[int]catalog.Berry
	types   map[string]catalog.TypeProfile
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		species: make(map[int]catalog.Species),
		berries: make(map[int]catalog.Berry),
		types:   make(map[string]catalog.TypeProfile),
	}
}

func (r *catalogRepo) CountSpecies(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.species), nil
}

func (r *catalogRepo) CountBerries(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.berries), nil
}

func (r *catalogRepo) CountTypes(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types), nil
}

func (r *catalogRepo) InsertSpecies(ctx context.Context, s catalog.Species) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID <= 0 {
		return errors.New("species id required")
	}
	if _, exists := r.species[s.ID]; exists {
		return errors.New("species already exists")
	}
	r.species[s.ID] = s
	return nil
}

func (r *catalogRepo) InsertBerry(ctx context.Context, b catalog.Berry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID <= 0 {
		return errors.New("berry id required")
	}
	if _, exists := r.berries[b.ID]; exists {
		return errors.New("berry already exists")
	}
	r.berries[b.ID] = b
	return nil
}

func (r *catalogRepo) InsertType(ctx context.Context, t catalog.TypeProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.Name == "" {
		return errors.New("type name required")
	}
	if _, exists := r.types[t.Name]; exists {
		return errors.New("type already exists")
	}
	r.types[t.Name] = t
	return nil
}

func (r *catalogRepo) GetSpecies(ctx context.Context, id int) (catalog.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.species[id]
	if !ok {
		return catalog.Species{}, ErrNotFound
	}
	return s, nil
}

func (r *catalogRepo) ListSpecies(ctx context.Context) ([]catalog.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Species, 0, len(r.species))
	for _, s := range r.species {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *catalogRepo) GetBerry(ctx context.Context, id int) (catalog.Berry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.berries[id]
	if !ok {
		return catalog.Berry{}, ErrNotFound
	}
	return b, nil
}

func (r *catalogRepo) ListBerries(ctx context.Context) ([]catalog.Berry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Berry, 0, len(r.berries))
	for _, b := range r.berries {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *catalogRepo) GetType(ctx context.Context, name string) (catalog.TypeProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return catalog.TypeProfile{}, ErrNotFound
	}
	return t, nil
}
