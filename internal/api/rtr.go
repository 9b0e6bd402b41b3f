package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/falconmcp/internal/errors"
)

const (
	rtrSessionPath = "/real-time-response/entities/sessions/v1"
	rtrCommandPath = "/real-time-response/entities/command/v1"

	// sessionOrigin tags sessions created by this adapter on the remote side.
	sessionOrigin = "falconmcp"
)

// RunCommand executes one real-time-response command against a managed
// device: session creation, command execution, session teardown.
//
// Sessions are billed resources on the remote side, so every successful
// creation is matched by exactly one teardown attempt regardless of the
// command outcome. The teardown result itself never reaches the caller.
func (c *Client) RunCommand(ctx context.Context, deviceID, command, arguments string) ([]byte, error) {
	sessionID, err := c.initSession(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	// Teardown must run even when the command's context was cancelled.
	defer c.deleteSession(context.WithoutCancel(ctx), sessionID)

	out, err := c.executeCommand(ctx, sessionID, command, arguments)
	if err != nil {
		return nil, apierrors.NewCommandError(sessionID, err)
	}
	return out, nil
}

// initSession opens an RTR session on the device and extracts its identifier.
func (c *Client) initSession(ctx context.Context, deviceID string) (string, error) {
	body := map[string]any{
		"device_id": deviceID,
		"origin":    sessionOrigin,
	}
	resp, err := c.do(ctx, http.MethodPost, rtrSessionPath, nil, body)
	if err != nil {
		return "", apierrors.NewSessionError(deviceID, err.Error())
	}

	sessionID := gjson.GetBytes(resp, "resources.0.session_id").String()
	if sessionID == "" {
		return "", apierrors.NewSessionError(deviceID, "response contains no session_id")
	}
	return sessionID, nil
}

// executeCommand runs the command inside an established session. When an
// arguments string was supplied the full command line is "<command> <arguments>".
func (c *Client) executeCommand(ctx context.Context, sessionID, command, arguments string) ([]byte, error) {
	commandString := command
	if arguments != "" {
		commandString = command + " " + arguments
	}
	body := map[string]any{
		"base_command":   command,
		"command_string": commandString,
		"session_id":     sessionID,
	}
	return c.do(ctx, http.MethodPost, rtrCommandPath, nil, body)
}

// deleteSession tears down an RTR session. Teardown is advisory cleanup: a
// failure here is logged and dropped so it can never mask the command result.
func (c *Client) deleteSession(ctx context.Context, sessionID string) {
	q := url.Values{"session_id": {sessionID}}
	if _, err := c.do(ctx, http.MethodDelete, rtrSessionPath, q, nil); err != nil {
		c.log.DebugContext(ctx, "rtr session teardown failed", "session_id", sessionID, "error", err)
	}
}
