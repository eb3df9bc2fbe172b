package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "cloudflare header wins",
			headers: map[string]string{
				"CF-Connecting-IP": "203.0.113.7",
				"X-Forwarded-For":  "198.51.100.1",
				"X-Real-IP":        "192.0.2.9",
			},
			want: "203.0.113.7",
		},
		{
			name:    "forwarded list uses the first entry",
			headers: map[string]string{"X-Forwarded-For": " 198.51.100.1 , 10.0.0.2, 10.0.0.3"},
			want:    "198.51.100.1",
		},
		{
			name:    "real ip as last header fallback",
			headers: map[string]string{"X-Real-IP": "192.0.2.9"},
			want:    "192.0.2.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/probe", func(c *fiber.Ctx) error {
				return c.SendString(GetClientIP(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			body, readErr := io.ReadAll(resp.Body)
			require.NoError(t, readErr)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestBackendMessage(t *testing.T) {
	apiErr := &trafeek.APIError{Status: fiber.StatusBadGateway, Message: "backend unavailable"}
	assert.Equal(t, "backend unavailable", backendMessage(fmt.Errorf("listing reports: %w", apiErr)))

	blank := &trafeek.APIError{Status: fiber.StatusUnprocessableEntity}
	assert.Equal(t, "The backend rejected the request. Please try again.", backendMessage(blank))

	assert.Equal(t, "The backend did not respond. Please try again.", backendMessage(errors.New("dial tcp: i/o timeout")))
}
