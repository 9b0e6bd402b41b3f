// Package mcp bridges the operation registry onto the Model Context Protocol
// so a host agent can list and invoke the Falcon operations as tools.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/diogo/falconmcp/internal/ops"
)

// ServerName identifies this adapter toward MCP hosts.
const ServerName = "falconmcp"

// NewServer builds an MCP server exposing one tool per registered operation.
func NewServer(d *ops.Dispatcher, version string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions(
			"falconmcp exposes CrowdStrike Falcon operations: detection and "+
				"incident lookup, device inventory, indicator search, and "+
				"real-time-response command execution. List operations return IDs "+
				"that feed the matching details operation.",
		),
	)

	for _, op := range d.Registry().List() {
		s.AddTool(toolFromOperation(op), handler(d, op.Name(), logger))
	}
	return s
}

// Serve runs the MCP server on stdio until the host closes the stream.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// toolFromOperation translates an operation schema into an MCP tool
// declaration.
func toolFromOperation(op ops.Operation) mcp.Tool {
	toolOpts := []mcp.ToolOption{mcp.WithDescription(op.Description())}

	for _, p := range op.Params() {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch p.Type {
		case ops.TypeInt:
			if def, ok := p.Default.(int); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(float64(def)))
			}
			toolOpts = append(toolOpts, mcp.WithNumber(p.Name, propOpts...))
		case ops.TypeStringList:
			propOpts = append(propOpts, mcp.Items(map[string]any{"type": "string"}))
			toolOpts = append(toolOpts, mcp.WithArray(p.Name, propOpts...))
		default:
			toolOpts = append(toolOpts, mcp.WithString(p.Name, propOpts...))
		}
	}

	return mcp.NewTool(op.Name(), toolOpts...)
}

// handler adapts one operation to the MCP tool-call contract. Failures come
// back as error-flagged results, never as protocol errors.
func handler(d *ops.Dispatcher, name string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := d.Invoke(ctx, name, request.GetArguments())

		logger.InfoContext(ctx, "tool call",
			"tool", name,
			"invocation_id", res.InvocationID,
			"error", res.IsError,
		)

		if res.IsError {
			return mcp.NewToolResultError(res.Text), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}
