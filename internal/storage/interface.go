package storage

import "github.com/julianstephens/scentry/internal/models"

// Provider persists the application's collections. Each collection is stored
// under its own key and persisted independently: callers of a cascading
// mutation must save every affected collection themselves.
//
// A corrupt stored value never surfaces as an error; the affected collection
// loads as its empty default.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections
	GetLibrary() ([]string, error)
	SaveLibrary([]string) error
	GetWishlist() ([]models.WishlistEntry, error)
	SaveWishlist([]models.WishlistEntry) error
	GetPlanner() (map[string]string, error)
	SavePlanner(map[string]string) error
	GetRecent() ([]models.RecentEntry, error)
	SaveRecent([]models.RecentEntry) error
	GetAnswers() (map[string]string, error)
	SaveAnswers(map[string]string) error
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Reset removes every key the application owns.
	Reset() error

	// Utils
	GetConfigPath() string
}
