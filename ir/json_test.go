package ir

import (
	"errors"
	"strings"
	"testing"
)

type jsonTest struct {
	in  string
	out string // empty means out == in
	err bool
}

var jsonTests = []jsonTest{
	{in: `null`},
	{in: `true`},
	{in: `false`},
	{in: `"hello"`},
	{in: `42`},
	{in: `-3`},
	{in: `2.5`},
	{in: `1e3`, out: `1000`},
	{in: `{}`},
	{in: `[]`},
	{in: `{"a":1,"b":[true,null]}`},
	{in: `[{"x":"y"},2]`},
	{in: `{"nested":{"deep":{"deeper":[1,2,3]}}}`},
	{in: `{`, err: true},
	{in: `[1,`, err: true},
	{in: `tru`, err: true},
}

func TestJSONRoundTrip(t *testing.T) {
	for _, tst := range jsonTests {
		node, err := Decode([]byte(tst.in))
		if tst.err {
			if err == nil {
				t.Errorf("%q: expected error", tst.in)
			} else if !errors.Is(err, ErrDecode) {
				t.Errorf("%q: error %v is not ErrDecode", tst.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tst.in, err)
			continue
		}
		d, err := Encode(node)
		if err != nil {
			t.Errorf("%q: encode: %v", tst.in, err)
			continue
		}
		want := tst.out
		if want == "" {
			want = tst.in
		}
		if got := strings.TrimSpace(string(d)); got != want {
			t.Errorf("%q: got %q", tst.in, got)
		}
	}
}

func TestDecodeRead(t *testing.T) {
	node, err := DecodeRead(strings.NewReader(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Field("a"); got == nil || got.Int64 == nil || *got.Int64 != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeNumberKinds(t *testing.T) {
	node, err := Decode([]byte(`[1, 2.5, 1e2]`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Values[0].Int64 == nil {
		t.Errorf("1 should be integral")
	}
	if node.Values[1].Float64 == nil {
		t.Errorf("2.5 should be float")
	}
	if node.Values[2].Float64 == nil {
		t.Errorf("1e2 should be float")
	}
}

func TestEncodeNumberText(t *testing.T) {
	// nodes built by hand may carry only the number's source text
	node := &Node{Type: NumberType, Number: "1e3"}
	d, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(d)); got != "1e3" {
		t.Errorf("got %q", got)
	}
	if _, err := Encode(&Node{Type: NumberType}); err == nil {
		t.Errorf("empty number node should not encode")
	}
}

func TestDecodeParentLinks(t *testing.T) {
	node, err := Decode([]byte(`{"a": {"b": [10]}}`))
	if err != nil {
		t.Fatal(err)
	}
	leaf := node.Field("a").Field("b").Values[0]
	if leaf.Root() != node {
		t.Errorf("root link broken")
	}
	if leaf.Path() != "$.a.b[0]" {
		t.Errorf("path %q", leaf.Path())
	}
}
