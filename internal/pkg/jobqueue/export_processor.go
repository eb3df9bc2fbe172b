package jobqueue

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/cache"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/exportarchive"
)

// processExportArchiveJob uploads a staged CSV export to the archive bucket.
// The controller stages the CSV bytes in Redis before enqueuing; the staging
// key dies with the upload so exports never accumulate in the cache.
func (q *Queue) processExportArchiveJob(ctx context.Context, job *Job) error {
	payload, err := ExportArchiveJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid export archive payload: %w", err)
	}

	config, err := exportarchive.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load archive config: %w", err)
	}
	if !config.IsEnabled() {
		log.Infof("[JobQueue] Export archive disabled, skipping job %s", job.ID)
		_ = q.client.Del(ctx, payload.StageKey).Err()
		return nil
	}

	data, err := cache.GetBytes(payload.StageKey)
	if err != nil {
		return fmt.Errorf("staged export %s not found: %w", payload.StageKey, err)
	}

	client, err := exportarchive.NewClient(config)
	if err != nil {
		return fmt.Errorf("failed to create archive client: %w", err)
	}

	objectKey := config.GetObjectKey(payload.Kind, payload.FileName, job.CreatedAt)
	result, err := client.Upload(ctx, objectKey, data)
	if err != nil {
		return err
	}

	// Staged bytes are only needed once
	if err := q.client.Del(ctx, payload.StageKey).Err(); err != nil {
		log.Warnf("[JobQueue] Failed to drop staged export %s: %v", payload.StageKey, err)
	}

	log.Infof("[JobQueue] Archived %s export requested by %s: s3://%s/%s (%d bytes)",
		payload.Kind, payload.AdminEmail, result.BucketName, result.ObjectKey, result.Size)
	return nil
}
