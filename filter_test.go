package squiggly

import (
	"bytes"
	"errors"
	"testing"

	"github.com/squiggly-format/go-squiggly/fn"
	"github.com/squiggly-format/go-squiggly/ir"
	"github.com/squiggly-format/go-squiggly/stream"
)

type user struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type account struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Password string   `json:"password"`
	User     user     `json:"user"`
	Tags     []string `json:"tags"`
}

func testAccount() account {
	return account{
		ID:       1,
		Name:     "acme",
		Password: "hunter2",
		User:     user{FirstName: "Ada", LastName: "Lovelace", Email: "ada@acme.io"},
		Tags:     []string{"a", "b"},
	}
}

type marshalTest struct {
	filter string
	out    string
}

var marshalTests = []marshalTest{
	{
		filter: "id,name",
		out:    `{"id":1,"name":"acme"}`,
	},
	{
		filter: "id,user{firstName,lastName}",
		out:    `{"id":1,"user":{"firstName":"Ada","lastName":"Lovelace"}}`,
	},
	{
		filter: "**",
		out:    `{"id":1,"name":"acme","password":"hunter2","user":{"firstName":"Ada","lastName":"Lovelace","email":"ada@acme.io"},"tags":["a","b"]}`,
	},
	{
		filter: "**,-password",
		out:    `{"id":1,"name":"acme","user":{"firstName":"Ada","lastName":"Lovelace","email":"ada@acme.io"},"tags":["a","b"]}`,
	},
	{
		filter: "user.firstName",
		out:    `{"user":{"firstName":"Ada"}}`,
	},
	{
		filter: "*Name|id,user{first*}",
		out:    `{"id":1,"user":{"firstName":"Ada"}}`,
	},
	{
		filter: "name:upper()",
		out:    `{"NAME":"acme"}`,
	},
	{
		filter: "name:snake():upper()",
		out:    `{"NAME":"acme"}`,
	},
	{
		filter: "id,password.mask()",
		out:    `{"id":1,"password":"*******"}`,
	},
	{
		filter: "id,name.upper().reverse()",
		out:    `{"id":1,"name":"EMCA"}`,
	},
	{
		filter: "",
		out:    `{"id":1,"name":"acme","password":"hunter2","user":{"firstName":"Ada","lastName":"Lovelace","email":"ada@acme.io"},"tags":["a","b"]}`,
	},
}

func TestMarshal(t *testing.T) {
	for _, tst := range marshalTests {
		d, err := Marshal(testAccount(), tst.filter)
		if err != nil {
			t.Errorf("%q: %v", tst.filter, err)
			continue
		}
		if string(d) != tst.out {
			t.Errorf("%q:\n got %s\nwant %s", tst.filter, d, tst.out)
		}
	}
}

func TestMarshalMap(t *testing.T) {
	in := map[string]any{
		"id":     7,
		"secret": "s3cret",
		"user":   map[string]any{"firstName": "Ada", "email": "a@b.c"},
	}
	d, err := Marshal(in, "id,user{firstName}")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":7,"user":{"firstName":"Ada"}}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestMarshalSliceOfStructs(t *testing.T) {
	type doc struct {
		Users []user `json:"users"`
	}
	in := doc{Users: []user{
		{FirstName: "Ada", Email: "a@b.c"},
		{FirstName: "Grace", Email: "g@b.c"},
	}}
	d, err := Marshal(in, "users{firstName}")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"users":[{"firstName":"Ada"},{"firstName":"Grace"}]}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

type vaulted struct {
	Name   string `json:"name"`
	Secret string `json:"secret" squiggly:"views=internal"`
}

func TestMarshalViews(t *testing.T) {
	in := vaulted{Name: "n", Secret: "s"}
	d, err := Marshal(in, "internal")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"secret":"s"}` {
		t.Errorf("internal view: got %s", d)
	}
	d, err = Marshal(in, "base")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"name":"n"}` {
		t.Errorf("base view: got %s", d)
	}
}

func TestMarshalViewsPerType(t *testing.T) {
	// same field names, different view tags, one shared instance: match
	// results for one type must not leak to the other through the cache
	sq := New(WithFilter("internal"))
	d, err := sq.Marshal(vaulted{Name: "n", Secret: "s"})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"secret":"s"}` {
		t.Errorf("tagged: got %s", d)
	}
	d, err = sq.Marshal(struct {
		Name   string `json:"name"`
		Secret string `json:"secret"`
	}{"n", "s"})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{}` {
		t.Errorf("untagged: got %s", d)
	}
}

func TestMarshalDisabledProvider(t *testing.T) {
	sq := New(WithContextProvider(NewStaticProvider("id").WithEnabled(false)))
	d, err := sq.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{1, "x"})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id":1,"name":"x"}` {
		t.Errorf("got %s", d)
	}
}

func TestMarshalCustomFunction(t *testing.T) {
	shout := fn.New("shout", func(inv *fn.Invocation) (any, error) {
		s, _ := inv.Input.(string)
		return s + "!", nil
	})
	sq := New(WithFilter("name.shout()"), WithFunctions(shout))
	d, err := sq.Marshal(struct {
		Name string `json:"name"`
	}{"hey"})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"name":"hey!"}` {
		t.Errorf("got %s", d)
	}
}

func TestIncludeRequiresGenerator(t *testing.T) {
	sq := New(WithFilter("id"))
	filter := NewPropertyFilter(sq)
	if _, err := filter.Include(stream.NewMapPropertyWriter("id", 1)); !errors.Is(err, ErrRequiresGenerator) {
		t.Errorf("map writer: got %v", err)
	}
	if _, err := filter.Include(nil); !errors.Is(err, ErrRequiresGenerator) {
		t.Errorf("nil writer: got %v", err)
	}
}

// slotGen is a generator whose format cannot omit fields; exclusions must
// be written as explicit nulls.
type slotGen struct {
	stream.Generator
}

func (g *slotGen) CanOmitFields() bool { return false }

func TestExcludedMarker(t *testing.T) {
	var buf bytes.Buffer
	sq := New(WithFilter("id"))
	gen := &slotGen{Generator: stream.NewJSONGenerator(&buf)}
	if err := sq.Serializer().Serialize(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{1, "x"}, gen); err != nil {
		t.Fatal(err)
	}
	if err := gen.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"id":1,"name":null}` {
		t.Errorf("got %s", got)
	}
}

func TestApply(t *testing.T) {
	node, err := ir.Decode([]byte(`{"id":1,"name":"acme","password":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	sq := New()
	res, err := sq.Apply(node, "**,-password")
	if err != nil {
		t.Fatal(err)
	}
	d, err := ir.Encode(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id":1,"name":"acme"}` {
		t.Errorf("got %s", d)
	}
	res, err = sq.Apply(node, "id,name", "id")
	if err != nil {
		t.Fatal(err)
	}
	d, err = ir.Encode(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id":1}` {
		t.Errorf("chained: got %s", d)
	}
}
