package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// MockFalcon is a mock implementation of FalconAPI for testing
type MockFalcon struct {
	// Mock return values
	Response []byte
	Err      error

	// Call counters/recorders
	Calls        []string
	LastFilter   string
	LastLimit    int
	LastIDs      []string
	LastTypes    []string
	LastValues   []string
	LastDeviceID string
	LastCommand  string
	LastArgs     string
}

// Ensure MockFalcon implements FalconAPI
var _ FalconAPI = (*MockFalcon)(nil)

func (m *MockFalcon) QueryDetections(ctx context.Context, filter string, limit int) ([]byte, error) {
	m.Calls = append(m.Calls, "QueryDetections")
	m.LastFilter, m.LastLimit = filter, limit
	return m.Response, m.Err
}

func (m *MockFalcon) GetDetectionDetails(ctx context.Context, ids []string) ([]byte, error) {
	m.Calls = append(m.Calls, "GetDetectionDetails")
	m.LastIDs = ids
	return m.Response, m.Err
}

func (m *MockFalcon) QueryDevices(ctx context.Context, filter string, limit int) ([]byte, error) {
	m.Calls = append(m.Calls, "QueryDevices")
	m.LastFilter, m.LastLimit = filter, limit
	return m.Response, m.Err
}

func (m *MockFalcon) GetDeviceDetails(ctx context.Context, ids []string) ([]byte, error) {
	m.Calls = append(m.Calls, "GetDeviceDetails")
	m.LastIDs = ids
	return m.Response, m.Err
}

func (m *MockFalcon) QueryIncidents(ctx context.Context, filter string, limit int) ([]byte, error) {
	m.Calls = append(m.Calls, "QueryIncidents")
	m.LastFilter, m.LastLimit = filter, limit
	return m.Response, m.Err
}

func (m *MockFalcon) GetIncidentDetails(ctx context.Context, ids []string) ([]byte, error) {
	m.Calls = append(m.Calls, "GetIncidentDetails")
	m.LastIDs = ids
	return m.Response, m.Err
}

func (m *MockFalcon) SearchIndicators(ctx context.Context, types, values []string, limit int) ([]byte, error) {
	m.Calls = append(m.Calls, "SearchIndicators")
	m.LastTypes, m.LastValues, m.LastLimit = types, values, limit
	return m.Response, m.Err
}

func (m *MockFalcon) RunCommand(ctx context.Context, deviceID, command, arguments string) ([]byte, error) {
	m.Calls = append(m.Calls, "RunCommand")
	m.LastDeviceID, m.LastCommand, m.LastArgs = deviceID, command, arguments
	return m.Response, m.Err
}

// MockDoer is a scripted transport for exercising the client without a
// network. Responses are consumed in order; the last one repeats.
type MockDoer struct {
	Responses []MockResponse
	Requests  []*http.Request
	Bodies    []string

	next int
}

// MockResponse is one scripted transport exchange.
type MockResponse struct {
	Status int
	Body   string
	Err    error
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)

	var body string
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	m.Bodies = append(m.Bodies, body)

	if len(m.Responses) == 0 {
		return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewReader(nil))}, nil
	}

	r := m.Responses[m.next]
	if m.next < len(m.Responses)-1 {
		m.next++
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return &http.Response{
		StatusCode: r.Status,
		Body:       io.NopCloser(bytes.NewReader([]byte(r.Body))),
		Header:     make(http.Header),
	}, nil
}
