package trafeek

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

// LoginResult is the payload of a successful credential exchange.
type LoginResult struct {
	Token string               `json:"token"`
	User  models.AdminIdentity `json:"user"`
}

// Login exchanges email/password for a bearer token plus the account identity.
// The backend issues tokens for any valid account; admin-role enforcement is
// the caller's job.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	in := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.request(ctx, http.MethodPost, "/auth/login", "", nil, in, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return nil, errors.New("login response missing token")
	}
	return &out, nil
}

// Me returns the identity the token belongs to. Any failure here counts as a
// failed validation for session purposes.
func (c *Client) Me(ctx context.Context, token string) (*models.AdminIdentity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("access token is required")
	}

	var out models.AdminIdentity
	if err := c.request(ctx, http.MethodGet, "/auth/me", token, nil, nil, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.ID) == "" {
		return nil, errors.New("identity response missing id")
	}
	return &out, nil
}

// TokenExpiry reads the exp claim off the backend-issued JWT without
// verifying the signature. The backend is the verifier; we only need the
// lifetime for session housekeeping. The second return is false when the
// token is not a JWT or carries no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
