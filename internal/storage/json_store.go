package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/logger"
	"github.com/julianstephens/scentry/internal/models"
)

const schemaVersion = 1

// envelope wraps every persisted collection so a future schema change can be
// detected before decoding the payload.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type meta struct {
	Version int `json:"version"`
}

// JSONStore keeps one JSON file per collection key next to the config file,
// so each collection round-trips independently.
type JSONStore struct {
	path   string
	loaded bool
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) dir() string {
	return filepath.Dir(s.path)
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.dir(), key+".json")
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	data, err := json.MarshalIndent(meta{Version: schemaVersion}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage metadata: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage metadata: %w", err)
	}

	s.loaded = true
	return nil
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'scentry init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}
	s.loaded = true
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save(key string, value any) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	data, err := json.MarshalIndent(envelope{Version: schemaVersion, Data: payload}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	if err := os.WriteFile(s.keyPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// load decodes a collection into dest. A missing, corrupt, or wrong-version
// file leaves dest at its zero value: the entry is treated as absent rather
// than propagating a parse error to the caller.
func (s *JSONStore) load(key string, dest any) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logger.Warn("discarding corrupt collection", "key", key, "err", err)
		return nil
	}
	if env.Version != schemaVersion {
		logger.Warn("discarding collection with unknown schema version", "key", key, "version", env.Version)
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		logger.Warn("discarding corrupt collection", "key", key, "err", err)
		return nil
	}
	return nil
}

func (s *JSONStore) GetLibrary() ([]string, error) {
	var library []string
	if err := s.load(constants.KeyLibrary, &library); err != nil {
		return nil, err
	}
	return library, nil
}

func (s *JSONStore) SaveLibrary(library []string) error {
	return s.save(constants.KeyLibrary, library)
}

func (s *JSONStore) GetWishlist() ([]models.WishlistEntry, error) {
	var wishlist []models.WishlistEntry
	if err := s.load(constants.KeyWishlist, &wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

func (s *JSONStore) SaveWishlist(wishlist []models.WishlistEntry) error {
	return s.save(constants.KeyWishlist, wishlist)
}

func (s *JSONStore) GetPlanner() (map[string]string, error) {
	planner := make(map[string]string)
	if err := s.load(constants.KeyPlanner, &planner); err != nil {
		return nil, err
	}
	if planner == nil {
		planner = make(map[string]string)
	}
	return planner, nil
}

func (s *JSONStore) SavePlanner(planner map[string]string) error {
	return s.save(constants.KeyPlanner, planner)
}

func (s *JSONStore) GetRecent() ([]models.RecentEntry, error) {
	var recent []models.RecentEntry
	if err := s.load(constants.KeyRecent, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

func (s *JSONStore) SaveRecent(recent []models.RecentEntry) error {
	return s.save(constants.KeyRecent, recent)
}

func (s *JSONStore) GetAnswers() (map[string]string, error) {
	answers := make(map[string]string)
	if err := s.load(constants.KeyAnswers, &answers); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = make(map[string]string)
	}
	return answers, nil
}

func (s *JSONStore) SaveAnswers(answers map[string]string) error {
	return s.save(constants.KeyAnswers, answers)
}

func (s *JSONStore) GetProfile() (models.Profile, error) {
	profile := models.Profile{Theme: constants.DefaultTheme}
	if err := s.load(constants.KeyProfile, &profile); err != nil {
		return models.Profile{}, err
	}
	if profile.Theme == "" {
		profile.Theme = constants.DefaultTheme
	}
	return profile, nil
}

func (s *JSONStore) SaveProfile(profile models.Profile) error {
	return s.save(constants.KeyProfile, profile)
}

func (s *JSONStore) Reset() error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	keys := []string{
		constants.KeyLibrary,
		constants.KeyWishlist,
		constants.KeyPlanner,
		constants.KeyRecent,
		constants.KeyAnswers,
		constants.KeyProfile,
	}
	for _, key := range keys {
		if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}

// GetConfigPath returns the path to the storage metadata file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple scentry processes that share the same config path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
