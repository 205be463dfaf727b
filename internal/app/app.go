// Package app owns the application's shared mutable state: the fragrance
// library, wishlist, weekly planner, recently-added list, and user profile.
// All mutation goes through App methods; rendering layers only read snapshots.
// Every mutation is written through to storage before the method returns.
package app

import (
	"fmt"
	"time"

	"github.com/julianstephens/scentry/internal/models"
	"github.com/julianstephens/scentry/internal/storage"
)

// App is the state-consistency core. It is not safe for concurrent use; the
// CLI and TUI drive it from a single goroutine.
type App struct {
	store storage.Provider

	library  []string
	wishlist []models.WishlistEntry
	planner  map[string]string
	recent   []models.RecentEntry
	profile  models.Profile

	now func() time.Time
}

// New loads every collection from the store. Corrupt entries have already
// been replaced by empty defaults at the storage layer, so a load error here
// means the store itself is unusable.
func New(store storage.Provider) (*App, error) {
	a := &App{store: store, now: time.Now}

	var err error
	if a.library, err = store.GetLibrary(); err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	if a.wishlist, err = store.GetWishlist(); err != nil {
		return nil, fmt.Errorf("loading wishlist: %w", err)
	}
	if a.planner, err = store.GetPlanner(); err != nil {
		return nil, fmt.Errorf("loading planner: %w", err)
	}
	if a.recent, err = store.GetRecent(); err != nil {
		return nil, fmt.Errorf("loading recent list: %w", err)
	}
	if a.profile, err = store.GetProfile(); err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if a.planner == nil {
		a.planner = make(map[string]string)
	}

	return a, nil
}

// ResetAll clears every persisted key and all in-memory collections. This is
// the only destructive operation; there is no undo.
func (a *App) ResetAll() error {
	if err := a.store.Reset(); err != nil {
		return err
	}
	a.library = nil
	a.wishlist = nil
	a.planner = make(map[string]string)
	a.recent = nil
	a.profile = models.Profile{}
	return nil
}
