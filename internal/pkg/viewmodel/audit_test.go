package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Report deleted", ActionLabel(models.AuditActionReportDelete))
	assert.Equal(t, "Export downloaded", ActionLabel(models.AuditActionExport))
	assert.Equal(t, "legacy_action", ActionLabel("legacy_action"), "unknown actions pass through so old history still renders")
}

func TestBuildAuditRows(t *testing.T) {
	entries := []models.AuditEntry{
		{AdminID: "a1", AdminEmail: "admin@trafeek.app", Action: models.AuditActionUserSuspend, TargetType: models.AuditTargetUser, TargetID: "u7"},
	}

	rows := BuildAuditRows(entries)
	require.Len(t, rows, 1)
	assert.Equal(t, "User suspended", rows[0].ActionLabel)
	assert.Contains(t, rows[0].AvatarURL, "gravatar.com/avatar/")
}
