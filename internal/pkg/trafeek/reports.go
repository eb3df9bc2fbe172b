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

// Reports fetches the moderation list, optionally narrowed to one category.
// The backend returns reports newest first; we keep its order.
func (c *Client) Reports(ctx context.Context, token, category string) ([]models.Report, error) {
	query := url.Values{}
	if category = strings.TrimSpace(category); category != "" {
		query.Set("type", category)
	}

	var out struct {
		Reports []models.Report `json:"reports"`
	}
	if err := c.request(ctx, http.MethodGet, "/admin/reports", token, query, nil, &out); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

// DeleteReport removes a report permanently.
func (c *Client) DeleteReport(ctx context.Context, token, reportID string) error {
	if strings.TrimSpace(reportID) == "" {
		return errors.New("report id is required")
	}
	path := fmt.Sprintf("/admin/reports/%s", url.PathEscape(reportID))
	return c.request(ctx, http.MethodDelete, path, token, nil, nil, nil)
}

// DeleteReportComment removes one comment from a report.
func (c *Client) DeleteReportComment(ctx context.Context, token, reportID, commentID string) error {
	if strings.TrimSpace(reportID) == "" || strings.TrimSpace(commentID) == "" {
		return errors.New("report id and comment id are required")
	}
	path := fmt.Sprintf("/admin/reports/%s/comments/%s", url.PathEscape(reportID), url.PathEscape(commentID))
	return c.request(ctx, http.MethodDelete, path, token, nil, nil, nil)
}

// AddReportComment posts a staff comment on a report and returns the persisted
// comment (with its backend-assigned id).
func (c *Client) AddReportComment(ctx context.Context, token, reportID, text string) (*models.Comment, error) {
	if strings.TrimSpace(reportID) == "" {
		return nil, errors.New("report id is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("comment text is required")
	}

	in := map[string]string{"text": text}
	var out struct {
		Comment models.Comment `json:"comment"`
	}
	path := fmt.Sprintf("/reports/%s/comment", url.PathEscape(reportID))
	if err := c.request(ctx, http.MethodPost, path, token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Comment, nil
}
