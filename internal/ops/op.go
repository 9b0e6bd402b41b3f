// Package ops provides the operation dispatcher: a closed set of named,
// schema-validated operations exposed to the host agent, each mapping to one
// or more calls against the Falcon API.
package ops

import "context"

// ParamType describes an argument's wire type.
type ParamType string

const (
	TypeString     ParamType = "string"
	TypeInt        ParamType = "integer"
	TypeStringList ParamType = "array"
)

// Param declares one argument of an operation's schema.
type Param struct {
	// Name is the argument key as supplied by the host agent.
	Name string

	// Description is the human-readable argument documentation.
	Description string

	// Type is the expected wire type.
	Type ParamType

	// Required arguments must be present and non-empty; the dispatcher
	// rejects the invocation before any network call otherwise.
	Required bool

	// Default is applied for absent optional arguments. Only meaningful
	// for TypeInt today.
	Default any
}

// Operation is one named unit of work exposed to the host agent.
type Operation interface {
	// Name returns the unique identifier for this operation.
	Name() string

	// Description returns a human-readable description of what this
	// operation does, surfaced to the host agent for tool selection.
	Description() string

	// Params returns the argument schema the dispatcher validates against.
	Params() []Param

	// Execute runs the operation and returns the raw remote JSON body.
	// Argument presence has already been validated by the dispatcher.
	Execute(ctx context.Context, args Args) ([]byte, error)
}

// Args is the argument mapping of one invocation, with typed accessors for
// the loosely-typed values arriving from the host protocol.
type Args map[string]any

// String returns a string argument, or "" when absent or not a string.
func (a Args) String(key string) string {
	if s, ok := a[key].(string); ok {
		return s
	}
	return ""
}

// Int returns an integer argument, or def when absent. JSON numbers arrive
// as float64 and are accepted.
func (a Args) Int(key string, def int) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// StringSlice returns a string-list argument. Lists arrive from the host
// protocol as []any; non-string elements are dropped.
func (a Args) StringSlice(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
