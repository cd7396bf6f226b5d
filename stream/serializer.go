package stream

import (
	"encoding"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/squiggly-format/go-squiggly/debug"
	"github.com/squiggly-format/go-squiggly/ir"
)

// PropertyFilter decides, per object field, whether the field is written
// unchanged, converted, or omitted.
type PropertyFilter interface {
	SerializeAsField(pojo any, gen Generator, prov *Serializer, writer PropertyWriter) error
	// Include is the legacy generator-less inclusion check. It is
	// unsupported for filters that need streaming context.
	Include(writer PropertyWriter) (bool, error)
}

// Serializer walks Go values depth-first and writes them through a
// Generator, consulting the installed filter once per object field.
// A nil filter includes every field unchanged.
//
// A Serializer holds no per-call state and is safe for concurrent use when
// its filter is.
type Serializer struct {
	filter PropertyFilter
}

func NewSerializer(filter PropertyFilter) *Serializer {
	return &Serializer{filter: filter}
}

// Serialize writes v through gen. The caller flushes the generator.
func (s *Serializer) Serialize(v any, gen Generator) error {
	return s.serializeValue(v, gen)
}

func (s *Serializer) serializeValue(v any, gen Generator) error {
	if v == nil {
		return gen.WriteNull()
	}
	switch x := v.(type) {
	case *ir.Node:
		if x == nil {
			return gen.WriteNull()
		}
		return s.serializeValue(ir.ToAny(x), gen)
	case string:
		return gen.WriteString(x)
	case bool:
		return gen.WriteBool(x)
	case int:
		return gen.WriteInt(int64(x))
	case int64:
		return gen.WriteInt(x)
	case float64:
		return gen.WriteFloat(x)
	}
	if tm, ok := v.(encoding.TextMarshaler); ok {
		d, err := tm.MarshalText()
		if err != nil {
			return err
		}
		return gen.WriteString(string(d))
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return gen.WriteNull()
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return gen.WriteString(rv.String())
	case reflect.Bool:
		return gen.WriteBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return gen.WriteInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return gen.WriteInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return gen.WriteFloat(rv.Float())
	case reflect.Struct:
		return s.serializeStruct(rv, gen)
	case reflect.Map:
		return s.serializeMap(rv, gen)
	case reflect.Slice, reflect.Array:
		return s.serializeArray(rv, gen)
	default:
		return fmt.Errorf("cannot serialize %s", rv.Type())
	}
}

func (s *Serializer) serializeStruct(rv reflect.Value, gen Generator) error {
	pojo := rv.Interface()
	if debug.Serialize() {
		debug.Logf("serialize struct %s\n", rv.Type())
	}
	if err := gen.BeginObject(); err != nil {
		return err
	}
	gen.SetCurrentValue(pojo)
	for _, writer := range beanWriters(rv.Type()) {
		if err := s.field(pojo, gen, writer); err != nil {
			return err
		}
	}
	return gen.EndObject()
}

func (s *Serializer) serializeMap(rv reflect.Value, gen Generator) error {
	pojo := rv.Interface()
	if err := gen.BeginObject(); err != nil {
		return err
	}
	gen.SetCurrentValue(pojo)
	keys := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys[fmt.Sprint(iter.Key().Interface())] = iter.Value()
	}
	for _, name := range slices.Sorted(maps.Keys(keys)) {
		// map entries pass the entry value as the pojo, the way bean
		// fields pass the owning struct
		entry := keys[name].Interface()
		writer := NewMapPropertyWriter(name, entry)
		if err := s.field(entry, gen, writer); err != nil {
			return err
		}
	}
	return gen.EndObject()
}

func (s *Serializer) serializeArray(rv reflect.Value, gen Generator) error {
	if err := gen.BeginArray(); err != nil {
		return err
	}
	gen.SetCurrentValue(rv.Interface())
	for i := range rv.Len() {
		if err := s.serializeValue(rv.Index(i).Interface(), gen); err != nil {
			return err
		}
	}
	return gen.EndArray()
}

func (s *Serializer) field(pojo any, gen Generator, writer PropertyWriter) error {
	if s.filter == nil {
		return s.SerializeAsIncludedField(pojo, gen, writer)
	}
	return s.filter.SerializeAsField(pojo, gen, s, writer)
}

// SerializeAsIncludedField writes the field unchanged.
func (s *Serializer) SerializeAsIncludedField(pojo any, gen Generator, writer PropertyWriter) error {
	value, err := writerValue(pojo, writer)
	if err != nil {
		return err
	}
	if err := gen.WriteFieldName(writer.Name()); err != nil {
		return err
	}
	return s.serializeValue(value, gen)
}

// SerializeAsConvertedField writes the field under a possibly transformed
// name with a possibly recomputed value.
func (s *Serializer) SerializeAsConvertedField(pojo any, gen Generator, writer PropertyWriter, name string, value any) error {
	if err := gen.WriteFieldName(name); err != nil {
		return err
	}
	return s.serializeValue(value, gen)
}

// SerializeAsExcludedField writes an explicit excluded marker, for
// generators whose format cannot omit fields.
func (s *Serializer) SerializeAsExcludedField(pojo any, gen Generator, writer PropertyWriter) error {
	if err := gen.WriteFieldName(writer.Name()); err != nil {
		return err
	}
	return gen.WriteNull()
}

func writerValue(pojo any, writer PropertyWriter) (any, error) {
	switch w := writer.(type) {
	case *BeanPropertyWriter:
		return w.Get(pojo), nil
	case *MapPropertyWriter:
		return w.Value(), nil
	default:
		return nil, fmt.Errorf("unknown property writer %T", writer)
	}
}
