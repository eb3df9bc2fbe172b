package trafeek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
)

const (
	defaultAPIBaseURL = "https://api.trafeek.app"

	// Upper bounds on response bodies we buffer. Exports can be large, JSON
	// payloads should not be.
	maxJSONResponseBytes = 4 << 20
	maxCSVResponseBytes  = 64 << 20
)

// Client talks to the Trafeek backend. It holds no credential state; every
// authenticated call takes the bearer token explicitly.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
}

func NewClientFromEnv() *Client {
	return &Client{
		BaseURL: strings.TrimRight(env.GetEnv("TRAFEEK_API_URL", defaultAPIBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: env.GetEnvDuration("TRAFEEK_API_TIMEOUT", time.Second, 15*time.Second),
		},
	}
}

// APIError is a backend-rejected request: a non-2xx response with whatever
// message the backend put in its error payload.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trafeek api error: status=%d message=%s", e.Status, e.Message)
}

// UserMessage returns the backend message, or a generic fallback suitable for
// showing to the operator.
func (e *APIError) UserMessage() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return "The backend rejected the request. Please try again."
}

// IsAuthFailure reports whether the backend refused the credential itself.
func (e *APIError) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = strings.TrimSpace(payload.Message)
		if msg == "" {
			msg = strings.TrimSpace(payload.Error)
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > 300 {
			msg = msg[:300]
		}
	}
	return &APIError{Status: status, Message: msg}
}

// request performs one JSON round trip. token may be empty for public
// endpoints, in/out may be nil when there is no body to send/decode.
func (c *Client) request(ctx context.Context, method, path, token string, query url.Values, in, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("trafeek %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxJSONResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, payload)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("trafeek %s %s: decoding response failed: %w", method, path, err)
	}
	return nil
}

// requestRaw performs one round trip and returns the body verbatim. Used for
// the CSV export endpoints, which do not speak JSON.
func (c *Client) requestRaw(ctx context.Context, path, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, application/octet-stream")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trafeek GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("trafeek GET %s: reading body failed: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, payload)
	}
	return payload, nil
}
