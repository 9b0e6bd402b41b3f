package ops

import (
	"context"
	"testing"
)

// stubOp is a minimal Operation for registry tests.
type stubOp struct {
	name string
}

func (s *stubOp) Name() string        { return s.name }
func (s *stubOp) Description() string { return "stub" }
func (s *stubOp) Params() []Param     { return nil }
func (s *stubOp) Execute(ctx context.Context, args Args) ([]byte, error) {
	return []byte(`{}`), nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&stubOp{name: "alpha"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}

	t.Run("duplicate name", func(t *testing.T) {
		if err := r.Register(&stubOp{name: "alpha"}); err == nil {
			t.Error("Register() expected error for duplicate name")
		}
	})

	t.Run("nil operation", func(t *testing.T) {
		if err := r.Register(nil); err == nil {
			t.Error("Register() expected error for nil operation")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if err := r.Register(&stubOp{name: ""}); err == nil {
			t.Error("Register() expected error for empty name")
		}
	})
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubOp{name: "alpha"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	if op, ok := r.Get("alpha"); !ok || op.Name() != "alpha" {
		t.Errorf("Get(alpha) = %v, %v", op, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		if err := r.Register(&stubOp{name: name}); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", name, err)
		}
	}

	got := r.List()
	want := []string{"alpha", "mike", "zulu"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d operations, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].Name(), name)
		}
	}
}
