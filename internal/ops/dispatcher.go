package ops

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	apierrors "github.com/diogo/falconmcp/internal/errors"
)

// Result is the envelope returned to the host agent for every invocation.
// Failures are carried inside it; Invoke never lets anything escape.
type Result struct {
	// InvocationID correlates the result with log lines for this call.
	InvocationID string

	// IsError flags a textual error payload.
	IsError bool

	// Text is the pretty-printed remote JSON on success, or a structured
	// error payload on failure.
	Text string
}

// Dispatcher validates and routes invocations to registered operations.
type Dispatcher struct {
	reg *Registry
	log *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(reg *Registry, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{reg: reg, log: log}
}

// Registry returns the dispatcher's operation registry.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// Invoke runs one named operation. Arguments are validated against the
// operation's schema before any network call; every failure is converted
// into an error-flagged Result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, raw map[string]any) *Result {
	id := uuid.NewString()

	op, ok := d.reg.Get(name)
	if !ok {
		return d.fail(ctx, id, name, fmt.Errorf("unknown operation %q", name))
	}

	args := Args(raw)
	if args == nil {
		args = Args{}
	}
	if err := validate(op, args); err != nil {
		return d.fail(ctx, id, name, err)
	}

	body, err := op.Execute(ctx, args)
	if err != nil {
		return d.fail(ctx, id, name, err)
	}

	d.log.DebugContext(ctx, "operation completed", "operation", name, "invocation_id", id)
	return &Result{InvocationID: id, Text: prettyJSON(body)}
}

// validate enforces required arguments and applies defaults in place.
func validate(op Operation, args Args) error {
	for _, p := range op.Params() {
		_, present := args[p.Name]

		switch {
		case p.Required && !present:
			return apierrors.NewValidationError(p.Name, "required argument is missing")
		case p.Required && p.Type == TypeString && args.String(p.Name) == "":
			return apierrors.NewValidationError(p.Name, "must be a non-empty string")
		case p.Required && p.Type == TypeStringList && len(args.StringSlice(p.Name)) == 0:
			return apierrors.NewValidationError(p.Name, "must be a non-empty list of strings")
		case !present && p.Default != nil:
			args[p.Name] = p.Default
		}
	}
	return nil
}

// fail converts an error into the standard error-flagged result envelope.
// The payload carries enough remote detail (status plus message) to diagnose
// without log inspection.
func (d *Dispatcher) fail(ctx context.Context, id, name string, err error) *Result {
	d.log.WarnContext(ctx, "operation failed", "operation", name, "invocation_id", id, "error", err)

	payload := map[string]any{
		"success":       false,
		"operation":     name,
		"error":         err.Error(),
		"invocation_id": id,
	}
	text, mErr := json.MarshalIndent(payload, "", "  ")
	if mErr != nil {
		text = []byte(fmt.Sprintf("operation %s failed: %v", name, err))
	}
	return &Result{InvocationID: id, IsError: true, Text: string(text)}
}

// prettyJSON indents a remote JSON body for readability. Payloads that are
// not valid JSON are forwarded untouched.
func prettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
