package jobqueue

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/Bryanx275/trafeek-admin/app/repository"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/statistics"
)

// processAuditPurgeJob trims audit entries past the retention window
func (q *Queue) processAuditPurgeJob(job *Job) error {
	payload, err := AuditPurgeJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid audit purge payload: %w", err)
	}
	if payload.RetentionDays <= 0 {
		return fmt.Errorf("invalid retention window: %d days", payload.RetentionDays)
	}

	repos := repository.GetGlobalRepositories()
	removed, err := repos.Audit.PurgeOlderThan(time.Duration(payload.RetentionDays) * 24 * time.Hour)
	if err != nil {
		return err
	}

	if removed > 0 {
		// The cached counters now overcount
		statistics.ResetCacheUpdateTimer()
	}

	log.Infof("[JobQueue] Audit purge removed %d entries older than %d days", removed, payload.RetentionDays)
	return nil
}
