package encode

import (
	"bytes"
	"testing"

	"github.com/squiggly-format/go-squiggly/format"
	"github.com/squiggly-format/go-squiggly/ir"

	"github.com/google/go-cmp/cmp"
)

func node(t *testing.T, in string) *ir.Node {
	t.Helper()
	n, err := ir.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(node(t, `{"a":1,"b":[true,"x"]}`), &buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": 1,
  "b": [
    true,
    "x"
  ]
}
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEncodeIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(node(t, `{"a":{}}`), &buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": {}\n}\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEncodeScalars(t *testing.T) {
	scalarTests := []struct {
		in   string
		want string
	}{
		{`null`, "null\n"},
		{`true`, "true\n"},
		{`-2`, "-2\n"},
		{`2.5`, "2.5\n"},
		{`"hi"`, "\"hi\"\n"},
		{`[]`, "[]\n"},
		{`{}`, "{}\n"},
	}
	for _, tst := range scalarTests {
		in, want := tst.in, tst.want
		var buf bytes.Buffer
		if err := Encode(node(t, in), &buf); err != nil {
			t.Fatal(err)
		}
		if buf.String() != want {
			t.Errorf("%s: got %q, want %q", in, buf.String(), want)
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(node(t, `{"a":1}`), &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("a: 1\n", buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestColorsFallback(t *testing.T) {
	colors := NewColors()
	if got := colors.Get(ir.StringType, FieldColor); got == nil {
		t.Fatal("nil color func")
	}
	// unmapped pairs fall back to identity
	if got := colors.Default("x%y"); got != "x%y" {
		t.Errorf("default mangled %q", got)
	}
}
