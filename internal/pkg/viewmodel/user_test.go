package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func TestBuildUserRows(t *testing.T) {
	users := []models.User{
		{ID: "u1", Email: "admin@trafeek.app", Name: "Eleni", Role: models.ROLE_ADMIN},
		{ID: "u2", Email: "rider@trafeek.app", Role: models.ROLE_FREE, Suspended: true, SuspensionReason: "spam reports"},
	}

	rows := BuildUserRows(users, "u1")
	require.Len(t, rows, 2)

	assert.True(t, rows[0].IsSelf, "the acting admin's own row is marked")
	assert.Equal(t, "Eleni", rows[0].DisplayName)
	assert.Equal(t, "active", rows[0].StatusLabel)

	assert.False(t, rows[1].IsSelf)
	assert.Equal(t, "rider@trafeek.app", rows[1].DisplayName)
	assert.Equal(t, "suspended", rows[1].StatusLabel)
	assert.Contains(t, rows[1].AvatarURL, "gravatar.com/avatar/")
}
