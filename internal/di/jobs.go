// Package di provides dependency injection for scheduler jobs.
package di

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/config"
	"github.com/sameer10342432/realestate-tools/internal/reliability"
	"github.com/sameer10342432/realestate-tools/internal/scheduler"
)

// Job schedules (cron with seconds)
const (
	CacheCleanupSchedule  = "0 */15 * * * *" // Every 15 minutes
	WALCheckpointSchedule = "0 0 * * * *"    // Hourly
)

// RegisterJobs creates the maintenance jobs and registers them with the scheduler.
// Returns JobInstances for manual triggering via API.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	if container == nil || container.Scheduler == nil {
		return nil, fmt.Errorf("scheduler must be initialized first")
	}

	instances := &JobInstances{
		CacheCleanup:  scheduler.NewCacheCleanupJob(container.CalculationCache, log),
		WALCheckpoint: scheduler.NewWALCheckpointJob(container.Databases(), log),
	}

	if err := container.Scheduler.AddJob(CacheCleanupSchedule, instances.CacheCleanup); err != nil {
		return nil, err
	}
	if err := container.Scheduler.AddJob(WALCheckpointSchedule, instances.WALCheckpoint); err != nil {
		return nil, err
	}

	if container.BackupService != nil {
		instances.Backup = reliability.NewBackupJob(container.BackupService, log)
		if err := container.Scheduler.AddJob(cfg.Backup.Schedule, instances.Backup); err != nil {
			return nil, err
		}
	}

	log.Info().Int("jobs", len(instances.All())).Msg("Jobs registered")
	return instances, nil
}
