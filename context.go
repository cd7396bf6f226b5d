package squiggly

import (
	"sync"

	"github.com/squiggly-format/go-squiggly/parse"
)

// Context is the filter under which one serialization pass matches fields.
type Context struct {
	// Filter is the squiggly source text.
	Filter string
	// Node is the parsed filter.
	Node *parse.Node
}

// ContextProvider supplies the filter context for a serialization pass.
// Implementations must be safe for concurrent use.
type ContextProvider interface {
	// FilteringEnabled reports whether filtering applies at all; when
	// false every field is included unchanged.
	FilteringEnabled() bool
	// Context returns the filter context for a document whose root is
	// root.
	Context(root any) (*Context, error)
}

// StaticProvider serves one fixed filter, parsed once.
type StaticProvider struct {
	filter  string
	enabled bool

	once sync.Once
	ctx  *Context
	err  error
}

func NewStaticProvider(filter string) *StaticProvider {
	return &StaticProvider{filter: filter, enabled: true}
}

// WithEnabled administratively enables or disables filtering.
func (p *StaticProvider) WithEnabled(v bool) *StaticProvider {
	p.enabled = v
	return p
}

func (p *StaticProvider) FilteringEnabled() bool {
	return p.enabled && p.filter != ""
}

func (p *StaticProvider) Context(root any) (*Context, error) {
	p.once.Do(func() {
		node, err := parse.Parse([]byte(p.filter))
		if err != nil {
			p.err = err
			return
		}
		p.ctx = &Context{Filter: p.filter, Node: node}
	})
	return p.ctx, p.err
}
