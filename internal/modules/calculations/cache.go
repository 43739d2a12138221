// Package calculations persists computed calculator results so identical
// inputs are served without recomputation.
package calculations

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache is a key/value result store with per-entry expiry.
// Values are encoded with msgpack.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
	log zerolog.Logger
}

// NewCache creates a cache whose entries live for ttl
func NewCache(db *sql.DB, ttl time.Duration, log zerolog.Logger) *Cache {
	return &Cache{
		db:  db,
		ttl: ttl,
		now: time.Now,
		log: log.With().Str("component", "calculation_cache").Logger(),
	}
}

// Get decodes the live entry for key into dest. Expired entries count as missing.
func (c *Cache) Get(key string, dest interface{}) (bool, error) {
	var value []byte
	var expiresAt int64
	err := c.db.QueryRow("SELECT value, expires_at FROM cache WHERE key = ?", key).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}

	if c.now().Unix() >= expiresAt {
		return false, nil
	}

	if err := msgpack.Unmarshal(value, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key for the cache TTL
func (c *Cache) Set(key string, value interface{}) error {
	return c.SetWithExpiry(key, value, c.now().Add(c.ttl))
}

// SetWithExpiry stores value under key until expiresAt
func (c *Cache) SetWithExpiry(key string, value interface{}, expiresAt time.Time) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	_, err = c.db.Exec(`
		INSERT INTO cache (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, key, data, expiresAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// Delete removes a cache entry
func (c *Cache) Delete(key string) error {
	_, err := c.db.Exec("DELETE FROM cache WHERE key = ?", key)
	return err
}

// DeleteByPrefix removes all cache entries whose key starts with prefix
func (c *Cache) DeleteByPrefix(prefix string) (int64, error) {
	result, err := c.db.Exec("DELETE FROM cache WHERE key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteExpired removes every expired entry and returns how many were removed
func (c *Cache) DeleteExpired() (int64, error) {
	result, err := c.db.Exec("DELETE FROM cache WHERE expires_at <= ?", c.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired cache entries: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		c.log.Debug().Int64("removed", removed).Msg("Expired cache entries removed")
	}
	return removed, nil
}

// Count returns the number of stored entries, expired or not
func (c *Cache) Count() (int64, error) {
	var n int64
	err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&n)
	return n, err
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
