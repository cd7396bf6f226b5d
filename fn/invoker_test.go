package fn

import (
	"errors"
	"testing"

	"github.com/squiggly-format/go-squiggly/parse"
)

func calls(t *testing.T, filter string) []parse.Call {
	t.Helper()
	root, err := parse.Parse([]byte("x." + filter))
	if err != nil {
		t.Fatal(err)
	}
	return root.Children[0].ValueCalls
}

type invokeTest struct {
	chain string
	input any
	out   any
	err   error
}

var invokeTests = []invokeTest{
	{chain: "upper()", input: "abc", out: "ABC"},
	{chain: "upper().reverse()", input: "abc", out: "CBA"},
	{chain: "trim().capitalize()", input: "  go  ", out: "Go"},
	{chain: "size()", input: "hello", out: int64(5)},
	{chain: "size()", input: []any{1, 2}, out: int64(2)},
	{chain: "first()", input: "go", out: "g"},
	{chain: "last()", input: []any{1, 2, 3}, out: 3},
	{chain: "default('n/a')", input: "", out: "n/a"},
	{chain: "default('n/a')", input: "x", out: "x"},
	{chain: "snake()", input: "firstName", out: "first_name"},
	{chain: "kebab()", input: "firstName", out: "first-name"},
	{chain: "camel()", input: "first_name", out: "firstName"},
	{chain: "base64()", input: "hi", out: "aGk="},
	{chain: "mask()", input: "secret", out: "******"},
	{chain: "mask('x')", input: "abc", out: "xxx"},
	{chain: "redact()", input: "ab", out: "**"},
	{chain: "nosuch()", input: "x", err: ErrUnknownFunction},
}

func TestInvoke(t *testing.T) {
	iv := NewInvoker(DefaultSource())
	for _, tst := range invokeTests {
		got, err := iv.Invoke(tst.input, nil, calls(t, tst.chain))
		if tst.err != nil {
			if !errors.Is(err, tst.err) {
				t.Errorf("%s: error %v, want %v", tst.chain, err, tst.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tst.chain, err)
			continue
		}
		if got != tst.out {
			t.Errorf("%s(%v): got %v (%T), want %v", tst.chain, tst.input, got, got, tst.out)
		}
	}
}

func TestInvokeEmptyChain(t *testing.T) {
	iv := NewInvoker(DefaultSource())
	got, err := iv.Invoke("unchanged", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "unchanged" {
		t.Errorf("got %v", got)
	}
}

func TestSourcePrecedence(t *testing.T) {
	custom := NewMapSource(New("upper", func(inv *Invocation) (any, error) {
		return "custom", nil
	}))
	iv := NewInvoker(custom, DefaultSource())
	got, err := iv.Invoke("abc", nil, calls(t, "upper()"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "custom" {
		t.Errorf("got %v, want shadowing custom function", got)
	}
}

func TestArityResolution(t *testing.T) {
	// two registrations under one name with different arities
	zero := New("pick", func(inv *Invocation) (any, error) { return "zero", nil })
	one := New("pick", func(inv *Invocation) (any, error) { return "one", nil }).WithArity(1, 1)
	iv := NewInvoker(NewMapSource(zero, one))

	got, err := iv.Invoke(nil, nil, calls(t, "pick()"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "zero" {
		t.Errorf("pick(): got %v", got)
	}
	got, err = iv.Invoke(nil, nil, calls(t, "pick(1)"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "one" {
		t.Errorf("pick(1): got %v", got)
	}
}

func TestArityMismatch(t *testing.T) {
	one := New("only", func(inv *Invocation) (any, error) {
		return len(inv.Args), nil
	}).WithArity(1, 1)
	iv := NewInvoker(NewMapSource(one))
	if _, err := iv.Invoke(nil, nil, calls(t, "only(1,2)")); !errors.Is(err, ErrArity) {
		t.Errorf("only(1,2): got %v, want ErrArity", err)
	}
	// builtins that index their arguments must reject empty calls
	iv = NewInvoker(DefaultSource())
	if _, err := iv.Invoke("", nil, calls(t, "expr()")); !errors.Is(err, ErrArity) {
		t.Errorf("expr(): got %v, want ErrArity", err)
	}
	if _, err := iv.Invoke("", nil, calls(t, "default()")); !errors.Is(err, ErrArity) {
		t.Errorf("default(): got %v, want ErrArity", err)
	}
}
