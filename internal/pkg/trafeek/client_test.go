package trafeek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Bryanx275/trafeek-admin/app/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if in["email"] != "staff@trafeek.app" || in["password"] != "secret" {
			t.Fatalf("unexpected credentials: %v", in)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  map[string]string{"id": "a1", "email": "staff@trafeek.app", "role": "admin", "sub_role": "moderator"},
		})
	})

	res, err := client.Login(context.Background(), "staff@trafeek.app", "secret")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if res.Token != "tok-123" {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if !res.User.IsAdmin() || res.User.SubRole != models.SUBROLE_MODERATOR {
		t.Fatalf("unexpected identity: %+v", res.User)
	}
}

func TestLogin_BackendRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "staff@trafeek.app", "wrong")
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "invalid credentials" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if !apiErr.IsAuthFailure() {
		t.Fatalf("expected auth failure classification")
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	client := &Client{BaseURL: "http://unused", HTTPClient: http.DefaultClient}
	if _, err := client.Login(context.Background(), "", "pw"); err == nil {
		t.Fatalf("expected error for empty email")
	}
	if _, err := client.Login(context.Background(), "a@b.c", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestMe_SendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "a1", "email": "staff@trafeek.app", "role": "admin"})
	})

	identity, err := client.Me(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "a1" || !identity.IsAdmin() {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestReports_CategoryQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/reports" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "accident" {
			t.Fatalf("unexpected type filter %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"reports": []map[string]any{
				{"id": "r1", "type": "accident", "description": "crash on main st", "upvotes": 3},
				{"id": "r2", "type": "accident", "description": "minor collision"},
			},
		})
	})

	reports, err := client.Reports(context.Background(), "tok", "accident")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != "r1" || reports[0].Upvotes != 3 {
		t.Fatalf("unexpected first report: %+v", reports[0])
	}
	if reports[1].Upvotes != 0 {
		t.Fatalf("missing upvotes should decode as 0, got %d", reports[1].Upvotes)
	}
}

func TestAddReportComment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reports/r9/comment" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["text"] != "please add a photo" {
			t.Fatalf("unexpected body: %v", in)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"comment": map[string]any{"id": "c5", "author_id": "a1", "text": in["text"]},
		})
	})

	comment, err := client.AddReportComment(context.Background(), "tok", "r9", "please add a photo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ID != "c5" {
		t.Fatalf("expected persisted comment id, got %+v", comment)
	}
}

func TestDeleteReport_RequiresID(t *testing.T) {
	client := &Client{BaseURL: "http://unused", HTTPClient: http.DefaultClient}
	if err := client.DeleteReport(context.Background(), "tok", " "); err == nil {
		t.Fatalf("expected error for blank report id")
	}
}

func TestExportReportsCSV_RawPassthrough(t *testing.T) {
	payload := "id,type,description\r\nr1,flood,road flooded\r\n"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/export/reports" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(payload))
	})

	data, err := client.ExportReportsCSV(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != payload {
		t.Fatalf("export bytes were altered: %q", string(data))
	}
}

func TestAPIError_UserMessageFallback(t *testing.T) {
	withMsg := &APIError{Status: 422, Message: "reason is required"}
	if withMsg.UserMessage() != "reason is required" {
		t.Fatalf("expected backend message to pass through")
	}
	blank := &APIError{Status: 500}
	if blank.UserMessage() == "" {
		t.Fatalf("expected generic fallback for empty message")
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	got, ok := TokenExpiry(signed)
	if !ok {
		t.Fatalf("expected expiry to be readable")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry mismatch: got %v want %v", got, exp)
	}

	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Fatalf("expected failure for opaque token")
	}
}
