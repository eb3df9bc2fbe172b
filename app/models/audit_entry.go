package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	AuditActionReportDelete  = "report_delete"
	AuditActionCommentAdd    = "comment_add"
	AuditActionCommentDelete = "comment_delete"
	AuditActionUserSuspend   = "user_suspend"
	AuditActionUserUnsuspend = "user_unsuspend"
	AuditActionUserDelete    = "user_delete"
	AuditActionExport        = "export"

	AuditTargetReport  = "report"
	AuditTargetComment = "comment"
	AuditTargetUser    = "user"
	AuditTargetExport  = "export"
)

// AuditEntry is the locally persisted record of one admin mutation. It is the
// only entity this application owns; everything else belongs to the backend.
type AuditEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AdminID    string    `gorm:"type:varchar(64);index;not null" json:"admin_id" validate:"required"`
	AdminEmail string    `gorm:"type:varchar(200);not null" json:"admin_email" validate:"required,email"`
	Action     string    `gorm:"type:varchar(50);index;not null" json:"action" validate:"required"`
	TargetType string    `gorm:"type:varchar(50);not null" json:"target_type" validate:"required"`
	TargetID   string    `gorm:"type:varchar(64)" json:"target_id"`
	Detail     string    `gorm:"type:text" json:"detail"`
	AdminIP    string    `gorm:"type:varchar(64)" json:"admin_ip"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (e *AuditEntry) Validate() error {
	v := validator.New()

	return v.Struct(e)
}

// AuditActionCount is the grouped result behind the audit summary widgets.
type AuditActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}
