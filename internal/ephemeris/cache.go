package ephemeris

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Cache is an Adapter decorator that memoizes provider responses in a
// local SQLite database. Ephemeris runs are the one expensive, potentially
// remote step of a chart request; the same birth moment is frequently
// recomputed with different section selections, so a hit skips the
// provider entirely. Chart results themselves are never persisted.
type Cache struct {
	next Adapter
	db   *sql.DB
	mu   sync.Mutex
}

// NewCache opens (creating if needed) the cache database at path and wraps
// the given provider.
func NewCache(next Adapter, path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ephemeris cache: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ephemeris cache: %w", err)
	}
	const schema = `
	CREATE TABLE IF NOT EXISTS snapshots (
		moment     TEXT NOT NULL,
		kind       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (moment, kind)
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ephemeris cache: %w", err)
	}
	return &Cache{next: next, db: db}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) lookup(moment, kind string, into any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var payload string
	err := c.db.QueryRow(
		`SELECT payload FROM snapshots WHERE moment = ? AND kind = ?`,
		moment, kind).Scan(&payload)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(payload), into) == nil
}

func (c *Cache) put(moment, kind string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// Cache writes are best effort; a failed insert only costs a re-fetch.
	_, _ = c.db.Exec(
		`INSERT OR REPLACE INTO snapshots (moment, kind, payload) VALUES (?, ?, ?)`,
		moment, kind, string(raw))
}

func (c *Cache) Snapshot(ctx context.Context, m BirthMoment) (*Snapshot, error) {
	var snap Snapshot
	if c.lookup(m.Key(), "positions", &snap) {
		return &snap, nil
	}
	fresh, err := c.next.Snapshot(ctx, m)
	if err != nil {
		return nil, err
	}
	c.put(m.Key(), "positions", fresh)
	return fresh, nil
}

func (c *Cache) SunTimes(ctx context.Context, m BirthMoment) (SunTimes, error) {
	var st SunTimes
	if c.lookup(m.Key(), "sun_times", &st) {
		return st, nil
	}
	fresh, err := c.next.SunTimes(ctx, m)
	if err != nil {
		return SunTimes{}, err
	}
	c.put(m.Key(), "sun_times", fresh)
	return fresh, nil
}
