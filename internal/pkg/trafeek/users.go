package trafeek

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

// Users fetches platform accounts, filtered server-side by search text and/or
// role. Empty filters return everything.
func (c *Client) Users(ctx context.Context, token, search, role string) ([]models.User, error) {
	query := url.Values{}
	if search = strings.TrimSpace(search); search != "" {
		query.Set("search", search)
	}
	if role = strings.TrimSpace(role); role != "" {
		query.Set("role", role)
	}

	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.request(ctx, http.MethodGet, "/admin/users", token, query, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// SuspendUser blocks an account. The reason is stored and shown to the user
// by the platform.
func (c *Client) SuspendUser(ctx context.Context, token, userID, reason string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	in := map[string]string{"reason": strings.TrimSpace(reason)}
	path := fmt.Sprintf("/admin/users/%s/suspend", url.PathEscape(userID))
	return c.request(ctx, http.MethodPost, path, token, nil, in, nil)
}

// UnsuspendUser lifts a suspension.
func (c *Client) UnsuspendUser(ctx context.Context, token, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	path := fmt.Sprintf("/admin/users/%s/unsuspend", url.PathEscape(userID))
	return c.request(ctx, http.MethodPost, path, token, nil, nil, nil)
}

// DeleteUser removes an account permanently.
func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	path := fmt.Sprintf("/admin/users/%s", url.PathEscape(userID))
	return c.request(ctx, http.MethodDelete, path, token, nil, nil, nil)
}
