package scheduler

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/database"
	testingpkg "github.com/sameer10342432/realestate-tools/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	removed int64
	err     error
	calls   int
}

func (c *fakeCleaner) DeleteExpired() (int64, error) {
	c.calls++
	return c.removed, c.err
}

func TestCacheCleanupJob(t *testing.T) {
	cleaner := &fakeCleaner{removed: 4}
	job := NewCacheCleanupJob(cleaner, zerolog.Nop())

	assert.Equal(t, "cache_cleanup", job.Name())
	require.NoError(t, job.Run())
	assert.Equal(t, 1, cleaner.calls)

	cleaner.err = errors.New("database is locked")
	assert.ErrorContains(t, job.Run(), "database is locked")
}

func TestWALCheckpointJob(t *testing.T) {
	reportsDB, cleanupReports := testingpkg.NewTestDB(t, database.NameReports)
	defer cleanupReports()
	cacheDB, cleanupCache := testingpkg.NewTestDB(t, database.NameCache)
	defer cleanupCache()

	_, err := reportsDB.Conn().Exec(
		"INSERT INTO reports (id, kind, label, input, result, created_at) VALUES ('r1', 'moving', '', '{}', '{}', 0)",
	)
	require.NoError(t, err)

	job := NewWALCheckpointJob([]*database.DB{reportsDB, nil, cacheDB}, zerolog.Nop())
	assert.Equal(t, "wal_checkpoint", job.Name())
	require.NoError(t, job.Run())

	stats, err := reportsDB.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.WALSizeBytes, "TRUNCATE empties the WAL")
}

func TestWALCheckpointJob_ClosedDatabase(t *testing.T) {
	db, cleanup := testingpkg.NewTestDB(t, database.NameReports)
	defer cleanup()
	require.NoError(t, db.Close())

	job := NewWALCheckpointJob([]*database.DB{db}, zerolog.Nop())
	assert.Error(t, job.Run())
}
