package viewmodel

import (
	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/utils"
)

var auditActionLabels = map[string]string{
	models.AuditActionReportDelete:  "Report deleted",
	models.AuditActionCommentAdd:    "Comment added",
	models.AuditActionCommentDelete: "Comment deleted",
	models.AuditActionUserSuspend:   "User suspended",
	models.AuditActionUserUnsuspend: "Suspension lifted",
	models.AuditActionUserDelete:    "User deleted",
	models.AuditActionExport:        "Export downloaded",
}

// AuditRow contains all information needed for displaying one audit entry.
type AuditRow struct {
	Entry       models.AuditEntry
	ActionLabel string
	AvatarURL   string
}

// ActionLabel resolves the display label for an audit action; raw action
// strings pass through so unknown history still renders.
func ActionLabel(action string) string {
	if label, ok := auditActionLabels[action]; ok {
		return label
	}
	return action
}

// BuildAuditRows maps audit entries into table rows.
func BuildAuditRows(entries []models.AuditEntry) []AuditRow {
	rows := make([]AuditRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, AuditRow{
			Entry:       entry,
			ActionLabel: ActionLabel(entry.Action),
			AvatarURL:   utils.GetGravatarURL(entry.AdminEmail, 48),
		})
	}
	return rows
}
