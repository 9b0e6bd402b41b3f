package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/diogo/falconmcp/internal/config"
	apierrors "github.com/diogo/falconmcp/internal/errors"
)

func newTestClient(doer *MockDoer) *Client {
	cfg := &config.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      "https://falcon.test",
	}
	return NewClient(cfg, WithHTTPClient(doer))
}

// scripted prepends a successful token exchange to the given responses.
func scripted(responses ...MockResponse) *MockDoer {
	all := append([]MockResponse{{Status: 200, Body: tokenBody}}, responses...)
	return &MockDoer{Responses: all}
}

func TestDoSendsBearer(t *testing.T) {
	doer := scripted(MockResponse{Status: 200, Body: `{"resources":[]}`})
	c := newTestClient(doer)

	if _, err := c.do(context.Background(), http.MethodGet, "/devices/queries/devices/v1", nil, nil); err != nil {
		t.Fatalf("do() unexpected error: %v", err)
	}

	if len(doer.Requests) != 2 {
		t.Fatalf("do() issued %d requests, want token exchange plus call", len(doer.Requests))
	}

	req := doer.Requests[1]
	if got := req.Header.Get("Authorization"); got != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
}

func TestDoQueryPassthrough(t *testing.T) {
	doer := scripted(MockResponse{Status: 200, Body: `{"resources":[]}`})
	c := newTestClient(doer)

	_, err := c.QueryDevices(context.Background(), `platform_name:'Windows'`, 10)
	if err != nil {
		t.Fatalf("QueryDevices() unexpected error: %v", err)
	}

	req := doer.Requests[1]
	if req.URL.Path != "/devices/queries/devices/v1" {
		t.Errorf("path = %q", req.URL.Path)
	}

	rawQuery := req.URL.RawQuery
	if !strings.Contains(rawQuery, "limit=10") {
		t.Errorf("query = %q, missing limit=10", rawQuery)
	}
	// The filter travels URL-encoded and uninterpreted.
	if !strings.Contains(rawQuery, "filter="+url.QueryEscape(`platform_name:'Windows'`)) {
		t.Errorf("query = %q, missing encoded filter", rawQuery)
	}
	if got := req.URL.Query().Get("filter"); got != `platform_name:'Windows'` {
		t.Errorf("decoded filter = %q, want original", got)
	}
}

func TestDoErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		response   MockResponse
		wantStatus int
		wantInside string
	}{
		{
			name:       "remote error message extracted",
			response:   MockResponse{Status: 403, Body: `{"errors":[{"code":403,"message":"access denied, scope not granted"}]}`},
			wantStatus: 403,
			wantInside: "scope not granted",
		},
		{
			name:       "status text fallback",
			response:   MockResponse{Status: 502, Body: `not json`},
			wantStatus: 502,
			wantInside: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := scripted(tt.response)
			c := newTestClient(doer)

			_, err := c.do(context.Background(), http.MethodGet, "/detects/queries/detects/v1", nil, nil)
			if err == nil {
				t.Fatal("do() expected error but got none")
			}

			var apiErr *apierrors.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("do() error type = %T, want *APIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(err.Error(), tt.wantInside) {
				t.Errorf("error = %q, missing %q", err.Error(), tt.wantInside)
			}
		})
	}
}

func TestDoAuthFailureShortCircuits(t *testing.T) {
	doer := &MockDoer{Responses: []MockResponse{{Status: 401, Body: `{"errors":[{"message":"bad credentials"}]}`}}}
	c := newTestClient(doer)

	_, err := c.do(context.Background(), http.MethodGet, "/devices/queries/devices/v1", nil, nil)
	if err == nil {
		t.Fatal("do() expected error but got none")
	}
	if !errors.Is(err, apierrors.ErrAuthFailed) {
		t.Errorf("do() error = %v, want ErrAuthFailed match", err)
	}
	// The operation request itself is never sent without a valid token.
	if len(doer.Requests) != 1 {
		t.Errorf("do() issued %d requests, want only the failed exchange", len(doer.Requests))
	}
}

func TestRemoteMessage(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"falcon errors array", `{"errors":[{"code":404,"message":"resource not found"}]}`, 404, "resource not found"},
		{"oauth error_description", `{"error":"invalid_client","error_description":"client unknown"}`, 401, "client unknown"},
		{"empty body", ``, 500, "Internal Server Error"},
		{"unknown status", ``, 599, "status 599"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := remoteMessage([]byte(tt.body), tt.status); got != tt.want {
				t.Errorf("remoteMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
