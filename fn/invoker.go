package fn

import (
	"errors"
	"fmt"

	"github.com/squiggly-format/go-squiggly/debug"
	"github.com/squiggly-format/go-squiggly/parse"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrArity           = errors.New("wrong number of arguments")
)

// Invoker applies parsed call chains by resolving each call's name through
// its sources in order.
type Invoker struct {
	sources []Source
}

func NewInvoker(sources ...Source) *Invoker {
	return &Invoker{sources: sources}
}

// Invoke applies calls left to right, piping each result into the next
// call's input. target is the object owning the field. An empty chain
// returns input unchanged.
func (iv *Invoker) Invoke(input, target any, calls []parse.Call) (any, error) {
	return iv.InvokeAt(input, target, "", calls)
}

// InvokeAt is Invoke with a document path for diagnostics and scripts.
func (iv *Invoker) InvokeAt(input, target any, path string, calls []parse.Call) (any, error) {
	cur := input
	for i := range calls {
		call := &calls[i]
		f, err := iv.resolve(call)
		if err != nil {
			return nil, err
		}
		args := make([]any, len(call.Args))
		for j, arg := range call.Args {
			args[j] = arg.Value()
		}
		if debug.Fn() {
			debug.Logf("invoke %s(%d args) at %s\n", call.Name, len(args), path)
		}
		cur, err = f.Apply(&Invocation{
			Input:  cur,
			Target: target,
			Args:   args,
			Path:   path,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", call.Name, err)
		}
	}
	return cur, nil
}

// resolve picks the first function registered under the call's name whose
// arity accepts the call's argument count.
func (iv *Invoker) resolve(call *parse.Call) (Function, error) {
	n := len(call.Args)
	known := false
	for _, source := range iv.sources {
		for _, f := range source.FindByName(call.Name) {
			known = true
			min, max := f.Arity()
			if n >= min && (max < 0 || n <= max) {
				return f, nil
			}
		}
	}
	if known {
		return nil, fmt.Errorf("%w: %s with %d", ErrArity, call.Name, n)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, call.Name)
}
