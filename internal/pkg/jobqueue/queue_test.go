package jobqueue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/cache"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
)

// TestNewQueue tests the queue constructor
func TestNewQueue(t *testing.T) {
	tests := []struct {
		name            string
		workers         int
		expectedWorkers int
	}{
		{"Valid worker count", 5, 5},
		{"Zero workers", 0, 3},
		{"Negative workers", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := NewQueue(tt.workers)

			assert.NotNil(t, queue)
			assert.Equal(t, tt.expectedWorkers, queue.workers)
			assert.NotNil(t, queue.workerPool)
			assert.Equal(t, tt.expectedWorkers, cap(queue.workerPool))
			assert.NotNil(t, queue.stopCh)
			assert.False(t, queue.running)
		})
	}
}

func TestConstants(t *testing.T) {
	// Test Redis key constants
	assert.Equal(t, "job:", JobKeyPrefix)
	assert.Equal(t, "job_queue", JobQueueKey)
	assert.Equal(t, "job_processing", JobProcessingKey)
	assert.Equal(t, "job_stats", JobStatsKey)

	// Test job settings constants
	assert.Equal(t, 3, DefaultMaxRetries)
	assert.Equal(t, 24*time.Hour, JobTTL)
}

// TestQueue_EnqueueAndFetch exercises the enqueue path against a real Redis
func TestQueue_EnqueueAndFetch(t *testing.T) {
	host, port, password := resolveTestRedis(t)
	configureTestCache(host, port, password)
	resetJobQueueRedis(t)
	t.Cleanup(func() { resetJobQueueRedis(t) })

	queue := NewQueue(1)
	ctx := context.Background()

	payload := AuditPurgeJobPayload{RetentionDays: 30}
	job, err := queue.EnqueueJob(JobTypeAuditPurge, payload.ToMap())
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)
	assert.Equal(t, JobStatusPending, job.Status)

	size, err := queue.GetQueueSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	stored, err := queue.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobTypeAuditPurge, stored.Type)
	assert.Equal(t, JobStatusPending, stored.Status)

	stats, err := queue.GetJobStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats[JobStatusPending])
}

// TestQueue_ProcessExportArchiveJob_Disabled verifies that a disabled archive
// drops the staged bytes without failing the job
func TestQueue_ProcessExportArchiveJob_Disabled(t *testing.T) {
	host, port, password := resolveTestRedis(t)
	configureTestCache(host, port, password)
	resetJobQueueRedis(t)
	t.Cleanup(func() { resetJobQueueRedis(t) })

	env.Env["EXPORT_ARCHIVE_ENABLED"] = "false"
	t.Cleanup(func() { delete(env.Env, "EXPORT_ARCHIVE_ENABLED") })

	stageKey := "export_stage:test-disabled"
	require.NoError(t, cache.Set(stageKey, "id,type\n1,flood\n", time.Minute))

	payload := ExportArchiveJobPayload{
		Kind:       "reports",
		FileName:   "reports_test.csv",
		StageKey:   stageKey,
		AdminEmail: "admin@trafeek.app",
		Size:       16,
	}
	job := &Job{
		ID:        "test-export-job",
		Type:      JobTypeExportArchive,
		Status:    JobStatusPending,
		Payload:   payload.ToMap(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	queue := NewQueue(1)
	err := queue.processExportArchiveJob(context.Background(), job)
	require.NoError(t, err)

	_, err = cache.Get(stageKey)
	assert.Error(t, err, "staged bytes should be dropped when the archive is disabled")
}
