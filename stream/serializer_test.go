package stream

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

func marshal(t *testing.T, filter PropertyFilter, v any) string {
	t.Helper()
	var buf bytes.Buffer
	gen := NewJSONGenerator(&buf)
	s := NewSerializer(filter)
	if err := s.Serialize(v, gen); err != nil {
		t.Fatal(err)
	}
	if err := gen.Flush(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip"`
}

type person struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Secret  string  `json:"-"`
	Addr    address `json:"addr"`
	private string
}

type serializeTest struct {
	in  any
	out string
}

var serializeTests = []serializeTest{
	{in: nil, out: `null`},
	{in: "hi", out: `"hi"`},
	{in: true, out: `true`},
	{in: 42, out: `42`},
	{in: int64(-7), out: `-7`},
	{in: 2.5, out: `2.5`},
	{in: []int{1, 2, 3}, out: `[1,2,3]`},
	{in: []any{"a", nil, false}, out: `["a",null,false]`},
	{in: map[string]int{"b": 2, "a": 1}, out: `{"a":1,"b":2}`},
	{in: map[string]any{"x": []int{1}}, out: `{"x":[1]}`},
	{
		in:  person{ID: 1, Name: "ann", Secret: "s", Addr: address{City: "nyc", Zip: "10001"}, private: "p"},
		out: `{"id":1,"name":"ann","addr":{"city":"nyc","zip":"10001"}}`,
	},
	{
		in:  &person{ID: 2, Name: "bob"},
		out: `{"id":2,"name":"bob","addr":{"city":"","zip":""}}`,
	},
	{in: (*person)(nil), out: `null`},
	{in: "with \"quotes\" and\nnewline", out: `"with \"quotes\" and\nnewline"`},
}

func TestSerialize(t *testing.T) {
	for _, tst := range serializeTests {
		if got := marshal(t, nil, tst.in); got != tst.out {
			t.Errorf("%#v: got %s, want %s", tst.in, got, tst.out)
		}
	}
}

func TestSerializeTextMarshaler(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	got := marshal(t, nil, map[string]any{"at": ts})
	if !strings.Contains(got, `"2024-06-01T12:00:00Z"`) {
		t.Errorf("got %s", got)
	}
}

type embedded struct {
	Inner string `json:"inner"`
}

type outer struct {
	embedded
	Own string `json:"own"`
}

func TestSerializeEmbedded(t *testing.T) {
	got := marshal(t, nil, outer{embedded: embedded{Inner: "i"}, Own: "o"})
	want := `{"inner":"i","own":"o"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// dropFilter omits every field named in drop and passes everything else
// through unchanged.
type dropFilter struct {
	drop map[string]bool
}

func (f *dropFilter) SerializeAsField(pojo any, gen Generator, prov *Serializer, writer PropertyWriter) error {
	if f.drop[writer.Name()] {
		if !gen.CanOmitFields() {
			return prov.SerializeAsExcludedField(pojo, gen, writer)
		}
		return nil
	}
	return prov.SerializeAsIncludedField(pojo, gen, writer)
}

func (f *dropFilter) Include(writer PropertyWriter) (bool, error) {
	return !f.drop[writer.Name()], nil
}

func TestFilterConsulted(t *testing.T) {
	filter := &dropFilter{drop: map[string]bool{"name": true, "zip": true}}
	got := marshal(t, filter, person{ID: 1, Name: "ann", Addr: address{City: "nyc", Zip: "10001"}})
	want := `{"id":1,"addr":{"city":"nyc"}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFilterMapFields(t *testing.T) {
	filter := &dropFilter{drop: map[string]bool{"b": true}}
	got := marshal(t, filter, map[string]any{"a": 1, "b": 2, "c": 3})
	want := `{"a":1,"c":3}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestOutputContext(t *testing.T) {
	var buf bytes.Buffer
	gen := NewJSONGenerator(&buf)
	if gen.OutputContext() != nil {
		t.Fatal("root context not nil")
	}
	if err := gen.BeginObject(); err != nil {
		t.Fatal(err)
	}
	gen.SetCurrentValue("objval")
	if err := gen.WriteFieldName("f"); err != nil {
		t.Fatal(err)
	}
	ctx := gen.OutputContext()
	if !ctx.InObject() {
		t.Error("not in object")
	}
	if name, ok := ctx.CurrentName(); !ok || name != "f" {
		t.Errorf("current name %q %v", name, ok)
	}
	if ctx.CurrentValue() != "objval" {
		t.Errorf("current value %v", ctx.CurrentValue())
	}
	if err := gen.BeginArray(); err != nil {
		t.Fatal(err)
	}
	inner := gen.OutputContext()
	if !inner.InArray() || inner.Parent() != ctx {
		t.Error("array context chain broken")
	}
	if err := gen.EndArray(); err != nil {
		t.Fatal(err)
	}
	if err := gen.EndObject(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "" {
		// nothing flushed yet
		t.Errorf("unflushed output %q", got)
	}
	if err := gen.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"f":[]}` {
		t.Errorf("got %s", buf.String())
	}
}

func TestGeneratorMisuse(t *testing.T) {
	gen := NewJSONGenerator(&bytes.Buffer{})
	if err := gen.EndObject(); err == nil {
		t.Error("EndObject at root")
	}
	if err := gen.WriteFieldName("x"); err == nil {
		t.Error("field name at root")
	}
	if err := gen.BeginArray(); err != nil {
		t.Fatal(err)
	}
	if err := gen.EndObject(); err == nil {
		t.Error("EndObject in array")
	}
}

func TestBeanViews(t *testing.T) {
	type tagged struct {
		Pub string `json:"pub"`
		Sec string `json:"sec" squiggly:"views=internal|audit"`
	}
	var sec *BeanPropertyWriter
	for _, w := range beanWriters(reflect.TypeOf(tagged{})) {
		if w.Name() == "sec" {
			sec = w
		}
	}
	if sec == nil {
		t.Fatal("sec writer missing")
	}
	views := sec.Views()
	if len(views) != 2 || views[0] != "internal" || views[1] != "audit" {
		t.Errorf("views %v", views)
	}
}
