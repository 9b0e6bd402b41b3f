package api

import (
	"context"
	"net/http"
)

const (
	detectQueryPath   = "/detects/queries/detects/v1"
	detectDetailsPath = "/detects/entities/summaries/GET/v1"
)

// QueryDetections returns detection IDs matching an optional FQL filter.
// The filter is forwarded verbatim.
func (c *Client) QueryDetections(ctx context.Context, filter string, limit int) ([]byte, error) {
	return c.do(ctx, http.MethodGet, detectQueryPath, queryParams(filter, limit), nil)
}

// GetDetectionDetails returns full summaries for the given detection IDs.
// The platform takes the IDs in a POST body for this resource.
func (c *Client) GetDetectionDetails(ctx context.Context, ids []string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, detectDetailsPath, nil, map[string]any{"ids": ids})
}
