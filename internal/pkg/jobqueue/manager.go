package jobqueue

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	metrics "github.com/Bryanx275/trafeek-admin/internal/pkg/metrics/counter"
)

// Manager manages the global job queue and background tasks
type Manager struct {
	queue              *Queue
	purgeTicker        *time.Ticker
	counterFlushTicker *time.Ticker
	stopCh             chan struct{}
	wg                 sync.WaitGroup
	mu                 sync.Mutex
	running            bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global job queue manager (singleton)
func GetManager() *Manager {
	managerOnce.Do(func() {
		workerCount := env.GetEnvInt("JOBQUEUE_WORKERS", 3)

		globalManager = &Manager{
			queue:  NewQueue(workerCount),
			stopCh: make(chan struct{}),
		}
	})
	return globalManager
}

// GetQueue returns the managed job queue
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// Start starts the job queue and background tasks
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so manager can be restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[JobQueue Manager] Starting job queue and background tasks")

	// Start the job queue
	m.queue.Start()

	// Audit retention sweep - configurable interval
	purgeInterval := env.GetEnvDuration("AUDIT_PURGE_INTERVAL_HOURS", time.Hour, 24*time.Hour)
	m.purgeTicker = time.NewTicker(purgeInterval)
	m.wg.Add(1)
	go m.purgeWorker()

	// Start counter flush worker (Redis -> DB) every 30 seconds
	m.counterFlushTicker = time.NewTicker(30 * time.Second)
	m.wg.Add(1)
	go m.counterFlushWorker()

	log.Info("[JobQueue Manager] Started successfully")
}

// Stop stops the job queue and background tasks
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[JobQueue Manager] Stopping job queue and background tasks...")

	if m.purgeTicker != nil {
		m.purgeTicker.Stop()
	}
	if m.counterFlushTicker != nil {
		m.counterFlushTicker.Stop()
	}

	// Signal workers to stop
	close(m.stopCh)
	m.stopCh = nil
	m.running = false

	// Wait for background workers to finish
	m.wg.Wait()

	// Stop the job queue
	m.queue.Stop()

	log.Info("[JobQueue Manager] Stopped successfully")
}

// purgeWorker periodically enqueues an audit purge so the trail stays inside
// the retention window
func (m *Manager) purgeWorker() {
	defer m.wg.Done()
	retention := env.GetEnvInt("AUDIT_RETENTION_DAYS", 90)
	log.Infof("[JobQueue Manager] Started audit purge worker (retention: %d days)", retention)

	for {
		select {
		case <-m.stopCh:
			log.Info("[JobQueue Manager] Audit purge worker stopping")
			return
		case <-m.purgeTicker.C:
			payload := AuditPurgeJobPayload{RetentionDays: retention}
			if _, err := m.queue.EnqueueJob(JobTypeAuditPurge, payload.ToMap()); err != nil {
				log.Errorf("[JobQueue Manager] Error enqueuing audit purge: %v", err)
			}
		}
	}
}

// counterFlushWorker periodically flushes pending counters from Redis to DB
func (m *Manager) counterFlushWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			log.Info("[JobQueue Manager] Counter flush worker stopping")
			return
		case <-m.counterFlushTicker.C:
			if err := metrics.FlushAll(); err != nil {
				log.Errorf("[JobQueue Manager] Counter flush error: %v", err)
			}
		}
	}
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}
