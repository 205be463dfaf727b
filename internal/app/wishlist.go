package app

import (
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/scentry/internal/models"
	"github.com/julianstephens/scentry/internal/pricing"
)

// Wishlist returns a snapshot of the wishlist in insertion order. Entries
// whose name is missing from the price fixture are included; rendering layers
// present those as "no price data" rows.
func (a *App) Wishlist() []models.WishlistEntry {
	out := make([]models.WishlistEntry, len(a.wishlist))
	copy(out, a.wishlist)
	return out
}

// AddWish inserts a wishlist entry for name. Duplicate names are rejected
// with an exact match, mirroring how entries are keyed.
func (a *App) AddWish(name string) (models.WishlistEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.WishlistEntry{}, &ValidationError{Reason: "fragrance name must not be empty"}
	}
	for _, entry := range a.wishlist {
		if entry.Name == name {
			return models.WishlistEntry{}, &DuplicateError{Name: name}
		}
	}

	now := a.now()
	entry := models.WishlistEntry{
		ID:            uuid.New().String(),
		Name:          name,
		AddedAt:       now,
		LastCheckedAt: now,
	}
	a.wishlist = append(a.wishlist, entry)

	if err := a.store.SaveWishlist(a.wishlist); err != nil {
		return models.WishlistEntry{}, err
	}
	return entry, nil
}

// RemoveWish deletes the wishlist entry at index.
func (a *App) RemoveWish(index int) (models.WishlistEntry, error) {
	if index < 0 || index >= len(a.wishlist) {
		return models.WishlistEntry{}, &IndexError{Index: index, Length: len(a.wishlist)}
	}

	removed := a.wishlist[index]
	a.wishlist = append(a.wishlist[:index], a.wishlist[index+1:]...)

	if err := a.store.SaveWishlist(a.wishlist); err != nil {
		return models.WishlistEntry{}, err
	}
	return removed, nil
}

// AvailableWishOptions lists fixture fragrances not yet wishlisted, in
// fixture order. Derived on demand, never stored.
func (a *App) AvailableWishOptions() []string {
	listed := make(map[string]bool, len(a.wishlist))
	for _, entry := range a.wishlist {
		listed[entry.Name] = true
	}

	var options []string
	for _, name := range pricing.Names() {
		if !listed[name] {
			options = append(options, name)
		}
	}
	return options
}
