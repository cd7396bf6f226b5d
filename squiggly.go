package squiggly

import (
	"bytes"
	"io"

	"github.com/squiggly-format/go-squiggly/fn"
	"github.com/squiggly-format/go-squiggly/ir"
	"github.com/squiggly-format/go-squiggly/stream"
)

// Squiggly binds a context provider, a matcher, and a function invoker
// into a filtering serializer. Construct one with New and reuse it; all
// state behind it is either immutable or safe for concurrent use.
type Squiggly struct {
	provider ContextProvider
	matcher  *Matcher
	invoker  *fn.Invoker
	ser      *stream.Serializer
	sources  []fn.Source
}

type Option func(*Squiggly)

// WithFilter installs a static filter.
func WithFilter(filter string) Option {
	return func(sq *Squiggly) {
		sq.provider = NewStaticProvider(filter)
	}
}

// WithContextProvider installs a custom filter source, for callers whose
// filter varies per document or per request.
func WithContextProvider(p ContextProvider) Option {
	return func(sq *Squiggly) {
		sq.provider = p
	}
}

// WithFunctions registers extra transform functions. They resolve before
// the builtins, so a function named like a builtin shadows it.
func WithFunctions(functions ...fn.Function) Option {
	return func(sq *Squiggly) {
		sq.sources = append(sq.sources, fn.NewMapSource(functions...))
	}
}

// WithFunctionSource registers an extra function source ahead of the
// builtins.
func WithFunctionSource(source fn.Source) Option {
	return func(sq *Squiggly) {
		sq.sources = append(sq.sources, source)
	}
}

// New builds a Squiggly. Without options it serializes everything: the
// default filter is "**".
func New(opts ...Option) *Squiggly {
	sq := &Squiggly{matcher: NewMatcher()}
	for _, opt := range opts {
		opt(sq)
	}
	if sq.provider == nil {
		sq.provider = NewStaticProvider("**")
	}
	sq.sources = append(sq.sources, fn.DefaultSource())
	sq.invoker = fn.NewInvoker(sq.sources...)
	sq.ser = stream.NewSerializer(NewPropertyFilter(sq))
	return sq
}

func (sq *Squiggly) Matcher() *Matcher                { return sq.matcher }
func (sq *Squiggly) Invoker() *fn.Invoker             { return sq.invoker }
func (sq *Squiggly) ContextProvider() ContextProvider { return sq.provider }
func (sq *Squiggly) Serializer() *stream.Serializer   { return sq.ser }

// Marshal serializes v to JSON under the configured filter.
func (sq *Squiggly) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := sq.MarshalWrite(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalWrite serializes v to w as JSON under the configured filter.
func (sq *Squiggly) MarshalWrite(v any, w io.Writer) error {
	gen := stream.NewJSONGenerator(w)
	if err := sq.ser.Serialize(v, gen); err != nil {
		return err
	}
	return gen.Flush()
}

// Apply runs each filter over the document in turn and returns the
// filtered document. The receiver's matcher and functions are shared, so
// repeated filters hit warm caches.
func (sq *Squiggly) Apply(node *ir.Node, filters ...string) (*ir.Node, error) {
	res := node
	for _, filter := range filters {
		scoped := &Squiggly{
			provider: NewStaticProvider(filter),
			matcher:  sq.matcher,
			invoker:  sq.invoker,
		}
		scoped.ser = stream.NewSerializer(NewPropertyFilter(scoped))
		d, err := scoped.Marshal(res)
		if err != nil {
			return nil, err
		}
		res, err = ir.Decode(d)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Marshal serializes v to JSON under filter with the default function set.
func Marshal(v any, filter string) ([]byte, error) {
	return New(WithFilter(filter)).Marshal(v)
}
