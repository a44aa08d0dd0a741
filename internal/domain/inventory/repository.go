package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it BerryItem) error
	GetByID(ctx context.Context, id string) (BerryItem, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]BerryItem, error)
}
