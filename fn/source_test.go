package fn

import (
	"slices"
	"testing"
)

func TestFindByNameCaseInsensitive(t *testing.T) {
	src := NewMapSource(Builtins()...)
	for _, name := range []string{"upper", "UPPER", "Upper", "uppercase", "UpperCase"} {
		fns := src.FindByName(name)
		if len(fns) == 0 {
			t.Errorf("%q: not found", name)
			continue
		}
		if fns[0].Name() != "upper" {
			t.Errorf("%q: resolved %q", name, fns[0].Name())
		}
	}
}

func TestFindByNameUnknown(t *testing.T) {
	src := NewMapSource(Builtins()...)
	fns := src.FindByName("nosuchfunction")
	if fns == nil {
		t.Fatalf("unknown name returned nil")
	}
	if len(fns) != 0 {
		t.Fatalf("unknown name returned %d functions", len(fns))
	}
}

func TestAliasesShareRegistration(t *testing.T) {
	src := NewMapSource(Builtins()...)
	size := src.FindByName("size")
	length := src.FindByName("length")
	if len(size) == 0 || len(length) == 0 {
		t.Fatal("size/length not registered")
	}
	if size[0] != length[0] {
		t.Errorf("alias resolves to a different function")
	}
}

func TestRegistrationOrder(t *testing.T) {
	a := New("f", func(inv *Invocation) (any, error) { return "a", nil })
	b := New("F", func(inv *Invocation) (any, error) { return "b", nil })
	src := NewMapSource(a, b)
	fns := src.FindByName("f")
	if len(fns) != 2 {
		t.Fatalf("got %d registrations", len(fns))
	}
	if fns[0] != Function(a) || fns[1] != Function(b) {
		t.Errorf("registration order not preserved")
	}
}

func TestNames(t *testing.T) {
	src := NewMapSource(Builtins()...)
	names := src.Names()
	for _, want := range []string{"upper", "uppercase", "mask", "redact", "expr", "script"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
}
