// Package store provides the SQLite item archive for Radar.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abelbrown/radar/internal/feeds"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// SourceStat summarizes one source's archive footprint.
type SourceStat struct {
	Name        string
	ItemCount   int
	LastFetched time.Time
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		source_name TEXT NOT NULL,
		title TEXT NOT NULL,
		summary TEXT,
		url TEXT UNIQUE,
		author TEXT,
		published_at DATETIME NOT NULL,
		fetched_at DATETIME NOT NULL,
		score INTEGER DEFAULT 0,
		primary_cat TEXT DEFAULT 'misc'
	);

	CREATE INDEX IF NOT EXISTS idx_items_published ON items(published_at DESC);
	CREATE INDEX IF NOT EXISTS idx_items_source ON items(source_name);
	CREATE INDEX IF NOT EXISTS idx_items_primary ON items(primary_cat);

	CREATE TABLE IF NOT EXISTS sources (
		name TEXT PRIMARY KEY,
		last_fetched_at DATETIME,
		item_count INTEGER DEFAULT 0,
		error_count INTEGER DEFAULT 0,
		last_error TEXT
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveItems saves or updates items, returns count of new items.
func (s *Store) SaveItems(items []feeds.Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO items (id, source_name, title, summary, url, author, published_at, fetched_at, score, primary_cat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			score = excluded.score,
			primary_cat = excluded.primary_cat,
			fetched_at = excluded.fetched_at
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	newCount := 0
	for _, item := range items {
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM items WHERE id = ?", item.ID).Scan(&exists); err != nil {
			return 0, err
		}

		_, err := stmt.Exec(
			item.ID, item.SourceName, item.Title, item.Summary,
			item.URL, item.Author, item.Published, item.Fetched,
			item.Score, string(item.Primary),
		)
		if err != nil {
			return 0, fmt.Errorf("save item %s: %w", item.ID, err)
		}
		if exists == 0 {
			newCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return newCount, nil
}

// TouchSource records a fetch outcome for a source.
func (s *Store) TouchSource(name string, itemCount int, fetchErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	errText := ""
	errBump := 0
	if fetchErr != nil {
		errText = fetchErr.Error()
		errBump = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO sources (name, last_fetched_at, item_count, error_count, last_error)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			last_fetched_at = excluded.last_fetched_at,
			item_count = item_count + excluded.item_count,
			error_count = error_count + ?,
			last_error = excluded.last_error
	`, name, time.Now(), itemCount, errBump, errText, errBump)
	return err
}

// CountAllItems returns the total number of archived items.
func (s *Store) CountAllItems() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n)
	return n, err
}

// SourceStats returns per-source archive statistics, largest first.
func (s *Store) SourceStats() ([]SourceStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT source_name, COUNT(*), MAX(fetched_at)
		FROM items GROUP BY source_name ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []SourceStat
	for rows.Next() {
		var st SourceStat
		var last sql.NullTime
		if err := rows.Scan(&st.Name, &st.ItemCount, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			st.LastFetched = last.Time
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// CountByCategory returns archived item counts per primary category.
func (s *Store) CountByCategory() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT primary_cat, COUNT(*) FROM items GROUP BY primary_cat")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		out[cat] = n
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
