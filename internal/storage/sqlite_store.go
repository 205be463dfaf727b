package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/logger"
	"github.com/julianstephens/scentry/internal/models"
)

// SQLiteStore persists each collection in its own table. The schema has a
// single version; Init creates it directly and records the version in
// schema_version.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS library (
	position INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS wishlist (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	added_at TEXT NOT NULL,
	last_checked_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS planner (
	day TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS recent (
	position INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	added_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS answers (
	question TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS profile (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return fmt.Errorf("failed to check schema version: %w", err)
	}
	if count == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'scentry init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("unsupported schema version %d (expected %d)", version, schemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// replaceAll rewrites a whole table inside one transaction, preserving the
// caller's ordering via the position column.
func (s *SQLiteStore) replaceAll(table string, insert string, rows [][]any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return err
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func parseInstant(value, table string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logger.Warn("discarding corrupt timestamp", "table", table, "value", value)
		return time.Time{}
	}
	return t
}

func (s *SQLiteStore) GetLibrary() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM library ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var library []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		library = append(library, name)
	}
	return library, rows.Err()
}

func (s *SQLiteStore) SaveLibrary(library []string) error {
	rows := make([][]any, len(library))
	for i, name := range library {
		rows[i] = []any{i, name}
	}
	return s.replaceAll("library", "INSERT INTO library (position, name) VALUES (?, ?)", rows)
}

func (s *SQLiteStore) GetWishlist() ([]models.WishlistEntry, error) {
	rows, err := s.db.Query("SELECT id, name, added_at, last_checked_at FROM wishlist ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wishlist []models.WishlistEntry
	for rows.Next() {
		var entry models.WishlistEntry
		var addedAt, lastCheckedAt string
		if err := rows.Scan(&entry.ID, &entry.Name, &addedAt, &lastCheckedAt); err != nil {
			return nil, err
		}
		entry.AddedAt = parseInstant(addedAt, "wishlist")
		entry.LastCheckedAt = parseInstant(lastCheckedAt, "wishlist")
		wishlist = append(wishlist, entry)
	}
	return wishlist, rows.Err()
}

func (s *SQLiteStore) SaveWishlist(wishlist []models.WishlistEntry) error {
	rows := make([][]any, len(wishlist))
	for i, entry := range wishlist {
		rows[i] = []any{
			i, entry.ID, entry.Name,
			entry.AddedAt.UTC().Format(time.RFC3339),
			entry.LastCheckedAt.UTC().Format(time.RFC3339),
		}
	}
	return s.replaceAll("wishlist",
		"INSERT INTO wishlist (position, id, name, added_at, last_checked_at) VALUES (?, ?, ?, ?, ?)", rows)
}

func (s *SQLiteStore) GetPlanner() (map[string]string, error) {
	rows, err := s.db.Query("SELECT day, name FROM planner")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planner := make(map[string]string)
	for rows.Next() {
		var day, name string
		if err := rows.Scan(&day, &name); err != nil {
			return nil, err
		}
		planner[day] = name
	}
	return planner, rows.Err()
}

func (s *SQLiteStore) SavePlanner(planner map[string]string) error {
	rows := make([][]any, 0, len(planner))
	for day, name := range planner {
		rows = append(rows, []any{day, name})
	}
	return s.replaceAll("planner", "INSERT INTO planner (day, name) VALUES (?, ?)", rows)
}

func (s *SQLiteStore) GetRecent() ([]models.RecentEntry, error) {
	rows, err := s.db.Query("SELECT name, added_at FROM recent ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []models.RecentEntry
	for rows.Next() {
		var entry models.RecentEntry
		var addedAt string
		if err := rows.Scan(&entry.Name, &addedAt); err != nil {
			return nil, err
		}
		entry.Timestamp = parseInstant(addedAt, "recent")
		recent = append(recent, entry)
	}
	return recent, rows.Err()
}

func (s *SQLiteStore) SaveRecent(recent []models.RecentEntry) error {
	rows := make([][]any, len(recent))
	for i, entry := range recent {
		rows[i] = []any{i, entry.Name, entry.Timestamp.UTC().Format(time.RFC3339)}
	}
	return s.replaceAll("recent", "INSERT INTO recent (position, name, added_at) VALUES (?, ?, ?)", rows)
}

func (s *SQLiteStore) GetAnswers() (map[string]string, error) {
	rows, err := s.db.Query("SELECT question, value FROM answers")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make(map[string]string)
	for rows.Next() {
		var question, value string
		if err := rows.Scan(&question, &value); err != nil {
			return nil, err
		}
		answers[question] = value
	}
	return answers, rows.Err()
}

func (s *SQLiteStore) SaveAnswers(answers map[string]string) error {
	rows := make([][]any, 0, len(answers))
	for question, value := range answers {
		rows = append(rows, []any{question, value})
	}
	return s.replaceAll("answers", "INSERT INTO answers (question, value) VALUES (?, ?)", rows)
}

func (s *SQLiteStore) GetProfile() (models.Profile, error) {
	rows, err := s.db.Query("SELECT key, value FROM profile")
	if err != nil {
		return models.Profile{}, err
	}
	defer rows.Close()

	profile := models.Profile{Theme: constants.DefaultTheme}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Profile{}, err
		}
		switch key {
		case "gender":
			profile.Gender = models.Gender(value)
		case "theme":
			profile.Theme = value
		case "onboarding_complete":
			profile.OnboardingComplete = value == "true"
		case "questionnaire_complete":
			profile.QuestionnaireComplete = value == "true"
		}
	}
	return profile, rows.Err()
}

func (s *SQLiteStore) SaveProfile(profile models.Profile) error {
	rows := [][]any{
		{"gender", string(profile.Gender)},
		{"theme", profile.Theme},
		{"onboarding_complete", strconv.FormatBool(profile.OnboardingComplete)},
		{"questionnaire_complete", strconv.FormatBool(profile.QuestionnaireComplete)},
	}
	return s.replaceAll("profile", "INSERT INTO profile (key, value) VALUES (?, ?)", rows)
}

func (s *SQLiteStore) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"library", "wishlist", "planner", "recent", "answers", "profile"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
