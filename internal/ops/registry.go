package ops

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the closed set of operations exposed to the host agent.
// It is safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops: make(map[string]Operation),
	}
}

// Register adds an operation to the registry. Registering a nil operation,
// an empty name, or a duplicate name is an error.
func (r *Registry) Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}
	name := op.Name()
	if name == "" {
		return fmt.Errorf("cannot register operation with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("operation %q already registered", name)
	}
	r.ops[name] = op
	return nil
}

// Get retrieves an operation by name.
func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.ops[name]
	return op, ok
}

// List returns all registered operations sorted by name, for stable tool
// listings toward the host agent.
func (r *Registry) List() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Count returns the number of registered operations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ops)
}
