package viewmodel

import (
	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/utils"
)

// UserRow contains all information needed for displaying an account in the
// user management table.
type UserRow struct {
	User        models.User
	DisplayName string
	StatusLabel string
	AvatarURL   string
	// IsSelf marks the acting admin's own account; suspend and delete are
	// disabled for it.
	IsSelf bool
}

// BuildUserRows maps accounts into table rows. actingAdminID marks the
// caller's own row.
func BuildUserRows(users []models.User, actingAdminID string) []UserRow {
	rows := make([]UserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, UserRow{
			User:        user,
			DisplayName: user.DisplayName(),
			StatusLabel: user.StatusLabel(),
			AvatarURL:   utils.GetGravatarURL(user.Email, 64),
			IsSelf:      user.ID == actingAdminID,
		})
	}
	return rows
}
