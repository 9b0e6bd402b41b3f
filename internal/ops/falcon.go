package ops

import (
	"context"

	"github.com/diogo/falconmcp/internal/api"
)

// defaultLimit applies to every list-returning operation when the host
// supplies no limit argument.
const defaultLimit = 50

// falconOp binds one operation schema to a call against the Falcon API.
type falconOp struct {
	name        string
	description string
	params      []Param
	run         func(ctx context.Context, client api.FalconAPI, args Args) ([]byte, error)
	client      api.FalconAPI
}

func (o *falconOp) Name() string        { return o.name }
func (o *falconOp) Description() string { return o.description }
func (o *falconOp) Params() []Param     { return o.params }

func (o *falconOp) Execute(ctx context.Context, args Args) ([]byte, error) {
	return o.run(ctx, o.client, args)
}

// shared param declarations
var (
	filterParam = Param{
		Name:        "filter",
		Description: "FQL filter expression, passed through to the platform verbatim",
		Type:        TypeString,
	}
	limitParam = Param{
		Name:        "limit",
		Description: "Maximum number of results to return",
		Type:        TypeInt,
		Default:     defaultLimit,
	}
)

func idsParam(what string) Param {
	return Param{
		Name:        "ids",
		Description: "List of " + what + " IDs to look up",
		Type:        TypeStringList,
		Required:    true,
	}
}

// RegisterFalconOps registers the full operation set over the given client.
func RegisterFalconOps(reg *Registry, client api.FalconAPI) error {
	defs := []*falconOp{
		{
			name:        "list_detections",
			description: "List detections, optionally narrowed by an FQL filter. Returns detection IDs for use with get_detection_details.",
			params:      []Param{filterParam, limitParam},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.QueryDetections(ctx, args.String("filter"), args.Int("limit", defaultLimit))
			},
		},
		{
			name:        "get_detection_details",
			description: "Get full summaries for one or more detection IDs.",
			params:      []Param{idsParam("detection")},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.GetDetectionDetails(ctx, args.StringSlice("ids"))
			},
		},
		{
			name:        "list_devices",
			description: "List managed devices, optionally narrowed by an FQL filter. Returns device IDs for use with get_device_details.",
			params:      []Param{filterParam, limitParam},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.QueryDevices(ctx, args.String("filter"), args.Int("limit", defaultLimit))
			},
		},
		{
			name:        "get_device_details",
			description: "Get full records for one or more device IDs.",
			params:      []Param{idsParam("device")},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.GetDeviceDetails(ctx, args.StringSlice("ids"))
			},
		},
		{
			name:        "list_incidents",
			description: "List incidents, optionally narrowed by an FQL filter. Returns incident IDs for use with get_incident_details.",
			params:      []Param{filterParam, limitParam},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.QueryIncidents(ctx, args.String("filter"), args.Int("limit", defaultLimit))
			},
		},
		{
			name:        "get_incident_details",
			description: "Get full records for one or more incident IDs.",
			params:      []Param{idsParam("incident")},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.GetIncidentDetails(ctx, args.StringSlice("ids"))
			},
		},
		{
			name:        "search_indicators",
			description: "Search threat-intelligence indicators of compromise by type and value.",
			params: []Param{
				{
					Name:        "types",
					Description: "Indicator types to match, e.g. domain, ip_address, hash_sha256",
					Type:        TypeStringList,
				},
				{
					Name:        "values",
					Description: "Indicator values to match",
					Type:        TypeStringList,
				},
				limitParam,
			},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.SearchIndicators(ctx, args.StringSlice("types"), args.StringSlice("values"), args.Int("limit", defaultLimit))
			},
		},
		{
			name:        "run_remote_command",
			description: "Execute a real-time-response command on a managed device. Opens a session, runs the command, and tears the session down.",
			params: []Param{
				{
					Name:        "device_id",
					Description: "Agent ID of the target device",
					Type:        TypeString,
					Required:    true,
				},
				{
					Name:        "command",
					Description: "Base RTR command to execute, e.g. ps, netstat, ls",
					Type:        TypeString,
					Required:    true,
				},
				{
					Name:        "arguments",
					Description: "Optional argument string appended to the command",
					Type:        TypeString,
				},
			},
			run: func(ctx context.Context, c api.FalconAPI, args Args) ([]byte, error) {
				return c.RunCommand(ctx, args.String("device_id"), args.String("command"), args.String("arguments"))
			},
		},
	}

	for _, def := range defs {
		def.client = client
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}
