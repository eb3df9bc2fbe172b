package trafeek

import (
	"context"
)

// ExportReportsCSV downloads the backend's full report export. The payload is
// raw CSV bytes, passed through to the browser untouched.
func (c *Client) ExportReportsCSV(ctx context.Context, token string) ([]byte, error) {
	return c.requestRaw(ctx, "/admin/export/reports", token)
}

// ExportRiderPerformanceCSV downloads the backend's rider performance export.
func (c *Client) ExportRiderPerformanceCSV(ctx context.Context, token string) ([]byte, error) {
	return c.requestRaw(ctx, "/admin/export/rider-performance", token)
}
