package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypeExportArchive JobType = "export_archive"
	JobTypeAuditPurge    JobType = "audit_purge"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// ExportArchiveJobPayload contains the payload for export archive jobs.
// The CSV bytes are staged in Redis by the controller; the job only carries
// the staging key so the job record itself stays small.
type ExportArchiveJobPayload struct {
	Kind       string `json:"kind"` // "reports", "rider-performance" or "reports-filtered"
	FileName   string `json:"file_name"`
	StageKey   string `json:"stage_key"`
	AdminEmail string `json:"admin_email"`
	Size       int64  `json:"size"`
}

// ToMap converts the payload to a map for storage
func (p ExportArchiveJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"kind":        p.Kind,
		"file_name":   p.FileName,
		"stage_key":   p.StageKey,
		"admin_email": p.AdminEmail,
		"size":        p.Size,
	}
}

// FromMap creates a payload from a map
func ExportArchiveJobPayloadFromMap(data map[string]interface{}) (*ExportArchiveJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload ExportArchiveJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// AuditPurgeJobPayload contains the payload for audit purge jobs
type AuditPurgeJobPayload struct {
	RetentionDays int `json:"retention_days"`
}

// ToMap converts the payload to a map for storage
func (p AuditPurgeJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"retention_days": p.RetentionDays,
	}
}

// FromMap creates a payload from a map
func AuditPurgeJobPayloadFromMap(data map[string]interface{}) (*AuditPurgeJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload AuditPurgeJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// IsRetryable checks if the job can be retried
func (j *Job) IsRetryable() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// MarkAsProcessing updates the job status to processing
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.UpdatedAt = now
	j.ProcessedAt = &now
}

// MarkAsCompleted updates the job status to completed
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.UpdatedAt = now
	j.CompletedAt = &now
	j.ErrorMsg = ""
}

// MarkAsFailed updates the job status to failed
func (j *Job) MarkAsFailed(errorMsg string) {
	j.Status = JobStatusFailed
	j.UpdatedAt = time.Now()
	j.ErrorMsg = errorMsg
	j.RetryCount++
}

// MarkAsRetrying updates the job status to retrying
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}
