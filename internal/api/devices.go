package api

import (
	"context"
	"net/http"
	"net/url"
)

const (
	deviceQueryPath   = "/devices/queries/devices/v1"
	deviceDetailsPath = "/devices/entities/devices/v2"
)

// QueryDevices returns device IDs matching an optional FQL filter.
func (c *Client) QueryDevices(ctx context.Context, filter string, limit int) ([]byte, error) {
	return c.do(ctx, http.MethodGet, deviceQueryPath, queryParams(filter, limit), nil)
}

// GetDeviceDetails returns full records for the given device IDs, sent as
// repeated ids query parameters.
func (c *Client) GetDeviceDetails(ctx context.Context, ids []string) ([]byte, error) {
	q := url.Values{"ids": ids}
	return c.do(ctx, http.MethodGet, deviceDetailsPath, q, nil)
}
