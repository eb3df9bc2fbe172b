package models

import "time"

// ExportStat accumulates how often each export kind has been downloaded.
// Increments buffer in Redis and flush here in batches.
type ExportStat struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Kind          string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"kind"`
	DownloadCount int64     `gorm:"not null;default:0" json:"download_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}
