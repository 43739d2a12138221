package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/database"
)

// ExpiredEntryCleaner removes expired cache entries
type ExpiredEntryCleaner interface {
	DeleteExpired() (int64, error)
}

// CacheCleanupJob deletes expired projection results from the cache database
type CacheCleanupJob struct {
	cache ExpiredEntryCleaner
	log   zerolog.Logger
}

// NewCacheCleanupJob creates a new CacheCleanupJob
func NewCacheCleanupJob(cache ExpiredEntryCleaner, log zerolog.Logger) *CacheCleanupJob {
	return &CacheCleanupJob{
		cache: cache,
		log:   log.With().Str("job", "cache_cleanup").Logger(),
	}
}

// Name returns the job name
func (j *CacheCleanupJob) Name() string {
	return "cache_cleanup"
}

// Run executes the cache cleanup job
func (j *CacheCleanupJob) Run() error {
	removed, err := j.cache.DeleteExpired()
	if err != nil {
		return fmt.Errorf("failed to delete expired cache entries: %w", err)
	}

	j.log.Info().Int64("removed", removed).Msg("Cache cleanup completed")
	return nil
}

// walWarnFrames is the WAL size (in frames) above which a warning is logged
const walWarnFrames = 1000

// WALCheckpointJob checkpoints and truncates the WAL of each database
type WALCheckpointJob struct {
	databases []*database.DB
	log       zerolog.Logger
}

// NewWALCheckpointJob creates a new WALCheckpointJob. Nil databases are skipped.
func NewWALCheckpointJob(databases []*database.DB, log zerolog.Logger) *WALCheckpointJob {
	return &WALCheckpointJob{
		databases: databases,
		log:       log.With().Str("job", "wal_checkpoint").Logger(),
	}
}

// Name returns the job name
func (j *WALCheckpointJob) Name() string {
	return "wal_checkpoint"
}

// Run executes the WAL checkpoint job. A failing database does not stop the others.
func (j *WALCheckpointJob) Run() error {
	checked := 0
	failed := 0

	for _, db := range j.databases {
		if db == nil {
			continue
		}

		// PRAGMA wal_checkpoint returns: busy, log, checkpointed
		var busy, frames, checkpointed int
		err := db.Conn().QueryRow("PRAGMA wal_checkpoint(PASSIVE)").Scan(&busy, &frames, &checkpointed)
		if err != nil {
			j.log.Warn().Err(err).Str("database", db.Name()).Msg("Failed to check WAL checkpoint")
			failed++
			continue
		}

		if frames > walWarnFrames {
			j.log.Warn().
				Str("database", db.Name()).
				Int("wal_frames", frames).
				Int("checkpointed", checkpointed).
				Msg("WAL file is large")
		}

		if err := db.WALCheckpoint("TRUNCATE"); err != nil {
			j.log.Warn().Err(err).Str("database", db.Name()).Msg("WAL checkpoint failed")
			failed++
			continue
		}

		checked++
	}

	j.log.Info().
		Int("checkpointed", checked).
		Int("failed", failed).
		Msg("WAL checkpoint completed")

	if failed > 0 {
		return fmt.Errorf("WAL checkpoint failed for %d database(s)", failed)
	}
	return nil
}
