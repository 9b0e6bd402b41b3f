package api

import (
	"context"
	"net/http"
	"strings"
)

const indicatorSearchPath = "/intel/combined/indicators/v1"

// SearchIndicators searches threat-intelligence indicators. Types and values
// are serialized as comma-joined query parameters when present.
func (c *Client) SearchIndicators(ctx context.Context, types, values []string, limit int) ([]byte, error) {
	q := queryParams("", limit)
	if len(types) > 0 {
		q.Set("types", strings.Join(types, ","))
	}
	if len(values) > 0 {
		q.Set("values", strings.Join(values, ","))
	}
	return c.do(ctx, http.MethodGet, indicatorSearchPath, q, nil)
}
