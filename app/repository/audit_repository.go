package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

// auditRepository implements the AuditRepository interface
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository instance
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create writes one trail entry
func (r *auditRepository) Create(entry *models.AuditEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return r.db.Create(entry).Error
}

// FindRecent retrieves the newest entries across all admins
func (r *auditRepository) FindRecent(limit int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// FindByAdmin retrieves the newest entries of one admin
func (r *auditRepository) FindByAdmin(adminID string, limit int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	err := r.db.Where("admin_id = ?", adminID).
		Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// CountByAction aggregates the trail per action for the summary widget
func (r *auditRepository) CountByAction() ([]models.AuditActionCount, error) {
	var counts []models.AuditActionCount
	err := r.db.Model(&models.AuditEntry{}).
		Select("action, COUNT(*) as count").
		Group("action").
		Order("count DESC").
		Find(&counts).Error
	return counts, err
}

// PurgeOlderThan deletes entries past the retention age and reports how many
func (r *auditRepository) PurgeOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditEntry{})
	return result.RowsAffected, result.Error
}
