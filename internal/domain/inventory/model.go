package inventory

import "time"

// BerryItem es una berry concreta en el inventario de un usuario.
// Multiset: un usuario puede tener varias del mismo BerryID.
type BerryItem struct {
	ID      string
	UserID  string
	BerryID int

	CreatedAt time.Time
}
