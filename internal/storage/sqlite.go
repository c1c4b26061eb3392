// Package storage provides SQLite-based persistence for the discovery
// journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for journal persistence.
type Store struct {
	db *sql.DB
}

// DiscoveryEntry is one visited star system. Systems are keyed by galaxy
// seed and coordinates, so revisiting a system never duplicates its entry.
type DiscoveryEntry struct {
	ID         int64
	GalaxySeed string
	X, Y       int
	Name       string
	Class      string
	Planets    int
	Starbase   bool
	VisitedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS discoveries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			galaxy_seed TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			name TEXT NOT NULL,
			class TEXT NOT NULL,
			planets INTEGER NOT NULL DEFAULT 0,
			starbase INTEGER NOT NULL DEFAULT 0,
			visited_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(galaxy_seed, x, y)
		);
		CREATE INDEX IF NOT EXISTS idx_discoveries_seed ON discoveries(galaxy_seed);
		CREATE INDEX IF NOT EXISTS idx_discoveries_recent ON discoveries(galaxy_seed, visited_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordDiscovery journals a visited system. Revisits are silently
// ignored; the first visit wins. Returns true if a new row was written.
func (s *Store) RecordDiscovery(e DiscoveryEntry) (bool, error) {
	starbase := 0
	if e.Starbase {
		starbase = 1
	}
	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO discoveries (galaxy_seed, x, y, name, class, planets, starbase)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.GalaxySeed, e.X, e.Y, e.Name, e.Class, e.Planets, starbase,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record discovery: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n > 0, nil
}

// Discoveries retrieves the journal for a galaxy, most recent first.
// A limit of 0 or less returns everything.
func (s *Store) Discoveries(galaxySeed string, limit int) ([]DiscoveryEntry, error) {
	query := `SELECT id, galaxy_seed, x, y, name, class, planets, starbase, visited_at
		 FROM discoveries
		 WHERE galaxy_seed = ?
		 ORDER BY visited_at DESC, id DESC`
	args := []any{galaxySeed}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query discoveries: %w", err)
	}
	defer rows.Close()

	var entries []DiscoveryEntry
	for rows.Next() {
		var e DiscoveryEntry
		var starbase int
		var visitedAt any
		if err := rows.Scan(&e.ID, &e.GalaxySeed, &e.X, &e.Y, &e.Name, &e.Class,
			&e.Planets, &starbase, &visitedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Starbase = starbase != 0

		// Parse the datetime - handle both time.Time and string
		switch v := visitedAt.(type) {
		case time.Time:
			e.VisitedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.VisitedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountDiscoveries returns the number of journaled systems for a galaxy.
func (s *Store) CountDiscoveries(galaxySeed string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM discoveries WHERE galaxy_seed = ?",
		galaxySeed,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count discoveries: %w", err)
	}
	return n, nil
}

// HasVisited reports whether a system is already journaled.
func (s *Store) HasVisited(galaxySeed string, x, y int) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM discoveries WHERE galaxy_seed = ? AND x = ? AND y = ?",
		galaxySeed, x, y,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query discovery: %w", err)
	}
	return n > 0, nil
}

// ClearDiscoveries deletes the journal for a galaxy.
func (s *Store) ClearDiscoveries(galaxySeed string) error {
	_, err := s.db.Exec("DELETE FROM discoveries WHERE galaxy_seed = ?", galaxySeed)
	if err != nil {
		return fmt.Errorf("storage: cannot clear discoveries: %w", err)
	}
	return nil
}
