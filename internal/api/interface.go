package api

import "context"

// FalconAPI is the surface the operation layer depends on. *Client is the
// production implementation; MockFalcon substitutes for it in tests.
type FalconAPI interface {
	QueryDetections(ctx context.Context, filter string, limit int) ([]byte, error)
	GetDetectionDetails(ctx context.Context, ids []string) ([]byte, error)
	QueryDevices(ctx context.Context, filter string, limit int) ([]byte, error)
	GetDeviceDetails(ctx context.Context, ids []string) ([]byte, error)
	QueryIncidents(ctx context.Context, filter string, limit int) ([]byte, error)
	GetIncidentDetails(ctx context.Context, ids []string) ([]byte, error)
	SearchIndicators(ctx context.Context, types, values []string, limit int) ([]byte, error)
	RunCommand(ctx context.Context, deviceID, command, arguments string) ([]byte, error)
}

// Ensure Client implements FalconAPI
var _ FalconAPI = (*Client)(nil)
