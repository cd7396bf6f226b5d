// Package fn provides named key/value transform functions for squiggly
// filters: descriptors, the registry they are looked up in, and the
// invoker that applies call chains.
package fn

// Invocation carries the arguments of a single function application.
type Invocation struct {
	// Input is the piped value: the field name for key transforms, the
	// field value (or the owning object for map-backed fields) for value
	// transforms, or the previous function's result in a chain.
	Input any
	// Target is the object owning the field under serialization.
	Target any
	// Args are the literal arguments of the call.
	Args []any
	// Path is the document path of the field, for diagnostics and
	// scripts.
	Path string
}

// Function is a named transform. Multiple functions may share a name for
// overload-style resolution; see Source.
type Function interface {
	Name() string
	Aliases() []string
	// Arity returns the inclusive range of accepted argument counts.
	Arity() (min, max int)
	Apply(inv *Invocation) (any, error)
}

// CoreFunction is the standard Function implementation.
type CoreFunction struct {
	name    string
	aliases []string
	minArgs int
	maxArgs int
	apply   func(inv *Invocation) (any, error)
}

func New(name string, apply func(inv *Invocation) (any, error)) *CoreFunction {
	return &CoreFunction{name: name, apply: apply}
}

func (f *CoreFunction) WithAliases(aliases ...string) *CoreFunction {
	f.aliases = aliases
	return f
}

func (f *CoreFunction) WithArity(min, max int) *CoreFunction {
	f.minArgs = min
	f.maxArgs = max
	return f
}

func (f *CoreFunction) Name() string           { return f.name }
func (f *CoreFunction) Aliases() []string      { return f.aliases }
func (f *CoreFunction) Arity() (int, int)      { return f.minArgs, f.maxArgs }
func (f *CoreFunction) String() string         { return f.name }
func (f *CoreFunction) Apply(inv *Invocation) (any, error) {
	return f.apply(inv)
}
