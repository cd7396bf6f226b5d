package squiggly

import (
	"errors"
	"fmt"

	"github.com/squiggly-format/go-squiggly/debug"
	"github.com/squiggly-format/go-squiggly/parse"
	"github.com/squiggly-format/go-squiggly/stream"
)

// FilterID names the squiggly property filter when registered with a
// serializer by id.
const FilterID = "squigglyFilter"

// ErrRequiresGenerator is returned by the generator-less inclusion checks:
// squiggly matching needs the output context chain, which only a generator
// carries.
var ErrRequiresGenerator = errors.New("squiggly filtering requires a generator")

// PropertyFilter decides field inclusion during serialization by matching
// the field's document path against the active filter. It is safe for
// concurrent use.
type PropertyFilter struct {
	sq *Squiggly
}

func NewPropertyFilter(sq *Squiggly) *PropertyFilter {
	return &PropertyFilter{sq: sq}
}

// SerializeAsField writes, converts, or omits one field of pojo.
func (f *PropertyFilter) SerializeAsField(pojo any, gen stream.Generator, prov *stream.Serializer, writer stream.PropertyWriter) error {
	path := contextPath(gen.OutputContext(), writer)
	match, err := f.match(path)
	if err != nil {
		return err
	}
	if match == NeverMatch {
		if !gen.CanOmitFields() {
			return prov.SerializeAsExcludedField(pojo, gen, writer)
		}
		return nil
	}
	if !match.HasCalls() {
		return prov.SerializeAsIncludedField(pojo, gen, writer)
	}
	name := writer.Name()
	if len(match.KeyCalls) > 0 {
		out, err := f.sq.invoker.InvokeAt(name, pojo, path.String(), match.KeyCalls)
		if err != nil {
			return err
		}
		name = fmt.Sprint(out)
	}
	value := writerValue(pojo, writer)
	if len(match.ValueCalls) > 0 {
		value, err = f.sq.invoker.InvokeAt(value, pojo, path.String(), match.ValueCalls)
		if err != nil {
			return err
		}
	}
	return prov.SerializeAsConvertedField(pojo, gen, writer, name, value)
}

// Include is unsupported: without a generator there is no output context
// to build the field's path from.
func (f *PropertyFilter) Include(writer stream.PropertyWriter) (bool, error) {
	return false, ErrRequiresGenerator
}

func (f *PropertyFilter) match(path *Path) (*parse.Node, error) {
	if path.Len() == 0 {
		return AlwaysMatch, nil
	}
	if !f.sq.provider.FilteringEnabled() {
		return AlwaysMatch, nil
	}
	ctx, err := f.sq.provider.Context(path.First().Value)
	if err != nil {
		return nil, err
	}
	res := f.sq.matcher.Match(path, ctx)
	if debug.Matches() {
		debug.Logf("field %s included=%v\n", path.String(), res != NeverMatch)
	}
	return res, nil
}

// contextPath reconstructs the document path of the field under
// consideration from the generator's output context chain: the field
// itself, then each enclosing named frame. Array frames carry no name and
// contribute nothing, so elements of a collection share their container's
// path.
func contextPath(sc *stream.WriteContext, writer stream.PropertyWriter) *Path {
	if sc == nil {
		return NewPath()
	}
	var elements []PathElement
	el := PathElement{Name: writer.Name(), Value: sc.CurrentValue()}
	if bw, ok := writer.(*stream.BeanPropertyWriter); ok {
		el.Views = bw.Views()
	}
	elements = append(elements, el)
	for sc = sc.Parent(); sc != nil; sc = sc.Parent() {
		name, ok := sc.CurrentName()
		if !ok || sc.CurrentValue() == nil {
			continue
		}
		elements = append([]PathElement{{Name: name, Value: sc.CurrentValue()}}, elements...)
	}
	return NewPath(elements...)
}

func writerValue(pojo any, writer stream.PropertyWriter) any {
	switch w := writer.(type) {
	case *stream.BeanPropertyWriter:
		return w.Get(pojo)
	case *stream.MapPropertyWriter:
		return w.Value()
	default:
		return nil
	}
}
