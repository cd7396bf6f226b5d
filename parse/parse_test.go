package parse

import (
	"fmt"
	"strings"
	"testing"
)

// render normalizes a parsed filter back to text for comparison.
func render(n *Node) string {
	var sb strings.Builder
	if n.Negated {
		sb.WriteString("-")
	}
	names := make([]string, len(n.Names))
	for i, name := range n.Names {
		names[i] = name.Value
	}
	sb.WriteString(strings.Join(names, "|"))
	for _, call := range n.KeyCalls {
		sb.WriteString(":" + renderCall(call))
	}
	for _, call := range n.ValueCalls {
		sb.WriteString("." + renderCall(call))
	}
	if len(n.Children) > 0 {
		kids := make([]string, len(n.Children))
		for i, child := range n.Children {
			kids[i] = render(child)
		}
		sb.WriteString("{" + strings.Join(kids, ",") + "}")
	}
	return sb.String()
}

func renderCall(c Call) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a.Value())
	}
	return c.Name + "(" + strings.Join(args, ",") + ")"
}

func renderRoot(root *Node) string {
	kids := make([]string, len(root.Children))
	for i, child := range root.Children {
		kids[i] = render(child)
	}
	return strings.Join(kids, ",")
}

type parseTest struct {
	in  string
	out string // normalized; empty means out == in
	err bool
}

var parseTests = []parseTest{
	{in: "id,name"},
	{in: "id,user{firstName,lastName}"},
	{in: "**"},
	{in: "*"},
	{in: "eco*"},
	{in: "*Time"},
	{in: "employee|manager{firstName}"},
	{in: "**,-password"},
	{in: "-user{secret}"},
	{in: "name:snake():upper()", out: "name:snake():upper()"},
	{in: "name.upper()"},
	{in: "name:camel().trim()"},
	{in: "secret.mask('x')", out: "secret.mask(x)"},
	{in: "v.default(42)", out: "v.default(42)"},
	{in: "user.name", out: "user{name}"},
	{in: "a.b.c", out: "a{b{c}}"},
	{in: "user.name.upper()", out: "user{name.upper()}"},
	{in: "'first name'{a}", out: "first name{a}"},
	{in: "a{b{c},d},e"},
	{in: "", out: ""},
	{in: "a{b", err: true},
	{in: "a{}", err: true},
	{in: ",", err: true},
	{in: "a:name", err: true},
	{in: "a:", err: true},
	{in: "f(", err: true},
	{in: "a{b,}", err: true},
}

func TestParse(t *testing.T) {
	for _, tst := range parseTests {
		root, err := Parse([]byte(tst.in))
		if tst.err {
			if err == nil {
				t.Errorf("%q: expected error, got %q", tst.in, renderRoot(root))
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tst.in, err)
			continue
		}
		want := tst.out
		if want == "" && tst.in != "" {
			want = tst.in
		}
		if got := renderRoot(root); got != want {
			t.Errorf("%q: got %q, want %q", tst.in, got, want)
		}
	}
}

func TestParseArgs(t *testing.T) {
	root, err := Parse([]byte("v.f(1,-2,3.5,true,null,'s',bare)"))
	if err != nil {
		t.Fatal(err)
	}
	calls := root.Children[0].ValueCalls
	if len(calls) != 1 {
		t.Fatalf("got %d calls", len(calls))
	}
	want := []any{int64(1), int64(-2), 3.5, true, nil, "s", "bare"}
	args := calls[0].Args
	if len(args) != len(want) {
		t.Fatalf("got %d args, want %d", len(args), len(want))
	}
	for i, a := range args {
		if a.Value() != want[i] {
			t.Errorf("arg %d: got %v (%T), want %v", i, a.Value(), a.Value(), want[i])
		}
	}
}

type nameMatchTest struct {
	name  string
	field string
	views []string
	ok    bool
	rank  int
}

var nameMatchTests = []nameMatchTest{
	{name: "id", field: "id", ok: true, rank: 4},
	{name: "id", field: "name", ok: false},
	{name: "eco*", field: "ecoSystem", ok: true, rank: 3},
	{name: "eco*", field: "economy", ok: true, rank: 3},
	{name: "eco*", field: "seco", ok: false},
	{name: "*Time", field: "createTime", ok: true, rank: 3},
	{name: "a?c", field: "abc", ok: true, rank: 3},
	{name: "*", field: "anything", ok: true, rank: 2},
	{name: "**", field: "anything", ok: true, rank: 2},
	{name: "internal", field: "secret", views: []string{"internal"}, ok: true, rank: 1},
	{name: "base", field: "name", ok: true, rank: 1},
	{name: "base", field: "secret", views: []string{"internal"}, ok: false},
}

func TestNameMatches(t *testing.T) {
	for _, tst := range nameMatchTests {
		n := newName(tst.name)
		ok, rank := n.Matches(tst.field, tst.views)
		if ok != tst.ok {
			t.Errorf("%q vs %q: got %v, want %v", tst.name, tst.field, ok, tst.ok)
			continue
		}
		if ok && rank != tst.rank {
			t.Errorf("%q vs %q: rank %d, want %d", tst.name, tst.field, rank, tst.rank)
		}
	}
}
