package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"poke-pets/internal/domain/inventory"
)

type inventoryRepo struct {
	mu   sync.RWMutex
	byID map[string]inventory.BerryItem
}

func NewInventoryRepo() *inventoryRepo {
	return &inventoryRepo{
		byID: make(map[string]inventory.BerryItem),
	}
}

var _ inventory.Repository = (*inventoryRepo)(nil)

func (r *inventoryRepo) Create(ctx context.Context, it inventory.BerryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("item id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("item already exists")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (inventory.BerryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return inventory.BerryItem{}, ErrNotFound
	}
	return it, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *inventoryRepo) ListByUser(ctx context.Context, userID string) ([]inventory.BerryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.BerryItem, 0)
	for _, it := range r.byID {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// deleteByUser: cascade al borrar la cuenta.
func (r *inventoryRepo) deleteByUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, it := range r.byID {
		if it.UserID == userID {
			delete(r.byID, id)
		}
	}
}
