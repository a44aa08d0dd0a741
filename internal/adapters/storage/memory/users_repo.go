package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"poke-pets/internal/domain/users"
)

type usersRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
	seen map[string]map[int]struct{} // userID -> speciesIDs

	// cascade: repos hermanos a limpiar al borrar un usuario.
	pets *petsRepo
	inv  *inventoryRepo
}

// NewUsersRepo crea el repo de usuarios. pets/inv pueden ser nil (tests);
// si vienen, Delete hace cascade como lo harían las FKs en Postgres.
func NewUsersRepo(pets *petsRepo, inv *inventoryRepo) users.Repository {
	return &usersRepo{
		byID: make(map[string]users.User),
		seen: make(map[string]map[int]struct{}),
		pets: pets,
		inv:  inv,
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	for _, other := range r.byID {
		if other.Username == u.Username {
			return errors.New("username already exists")
		}
		if other.Email == u.Email {
			return errors.New("email already exists")
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *usersRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return users.User{}, ErrNotFound
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, ErrNotFound
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, exists := r.byID[id]; !exists {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.seen, id)
	r.mu.Unlock()

	// cascade fuera del lock propio (cada repo tiene el suyo)
	if r.pets != nil {
		r.pets.deleteByOwner(id)
	}
	if r.inv != nil {
		r.inv.deleteByUser(id)
	}
	return nil
}

func (r *usersRepo) AddSeenSpecies(ctx context.Context, userID string, speciesID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[userID]; !exists {
		return ErrNotFound
	}
	set, ok := r.seen[userID]
	if !ok {
		set = make(map[int]struct{})
		r.seen[userID] = set
	}
	set[speciesID] = struct{}{} // idempotente
	return nil
}

func (r *usersRepo) ListSeenSpecies(ctx context.Context, userID string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int, 0, len(r.seen[userID]))
	for id := range r.seen[userID] {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}
