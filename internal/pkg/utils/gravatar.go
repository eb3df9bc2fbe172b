package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GetGravatarURL generates a Gravatar URL for the given email address.
// Used for the avatar bubbles in the admin tables; "mp" gives a neutral
// placeholder for addresses without a Gravatar account.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = 80
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
