package api

import (
	"context"
	"net/http"
)

const (
	incidentQueryPath   = "/incidents/queries/incidents/v1"
	incidentDetailsPath = "/incidents/entities/incidents/GET/v1"
)

// QueryIncidents returns incident IDs matching an optional FQL filter.
func (c *Client) QueryIncidents(ctx context.Context, filter string, limit int) ([]byte, error) {
	return c.do(ctx, http.MethodGet, incidentQueryPath, queryParams(filter, limit), nil)
}

// GetIncidentDetails returns full records for the given incident IDs.
// The platform takes the IDs in a POST body for this resource.
func (c *Client) GetIncidentDetails(ctx context.Context, ids []string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, incidentDetailsPath, nil, map[string]any{"ids": ids})
}
