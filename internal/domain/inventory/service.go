package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Add mete una berry nueva al inventario del usuario (forrajeo exitoso).
func (s *Service) Add(ctx context.Context, userID string, berryID int) (BerryItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || berryID <= 0 {
		return BerryItem{}, ErrInvalidInput
	}

	it := BerryItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		BerryID:   berryID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return BerryItem{}, err
	}
	return it, nil
}

// GetOwned resuelve el item y valida que pertenezca a actorUserID.
func (s *Service) GetOwned(ctx context.Context, itemID, actorUserID string) (BerryItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return BerryItem{}, ErrInvalidInput
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return BerryItem{}, ErrNotFound
	}
	if it.UserID != actorUserID {
		return BerryItem{}, ErrForbidden
	}
	return it, nil
}

// Consume borra el item (comido por la mascota).
func (s *Service) Consume(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, itemID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]BerryItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}
