package stream

import (
	"reflect"
	"strings"
	"sync"
)

// PropertyWriter describes one field about to be serialized.
type PropertyWriter interface {
	Name() string
}

// BeanPropertyWriter is a struct-backed field with a reflect getter. The
// JSON name honors the json tag; views come from the squiggly tag:
//
//	Secret string `json:"secret" squiggly:"views=internal|audit"`
type BeanPropertyWriter struct {
	name  string
	views []string
	index []int
}

func (w *BeanPropertyWriter) Name() string {
	return w.name
}

func (w *BeanPropertyWriter) Views() []string {
	return w.views
}

// Get reads the field from pojo.
func (w *BeanPropertyWriter) Get(pojo any) any {
	v := reflect.ValueOf(pojo)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	for _, i := range w.index {
		v = v.Field(i)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}
	}
	return v.Interface()
}

// MapPropertyWriter is a map-entry-backed field.
type MapPropertyWriter struct {
	name  string
	value any
}

func NewMapPropertyWriter(name string, value any) *MapPropertyWriter {
	return &MapPropertyWriter{name: name, value: value}
}

func (w *MapPropertyWriter) Name() string {
	return w.name
}

func (w *MapPropertyWriter) Value() any {
	return w.value
}

var writerCache sync.Map // reflect.Type -> []*BeanPropertyWriter

// beanWriters returns the property writers of a struct type, cached.
func beanWriters(t reflect.Type) []*BeanPropertyWriter {
	if cached, ok := writerCache.Load(t); ok {
		return cached.([]*BeanPropertyWriter)
	}
	writers := collectWriters(t, nil)
	writerCache.Store(t, writers)
	return writers
}

func collectWriters(t reflect.Type, index []int) []*BeanPropertyWriter {
	var res []*BeanPropertyWriter
	n := t.NumField()
	for i := range n {
		f := t.Field(i)
		if f.PkgPath != "" && !(f.Anonymous && f.Type.Kind() == reflect.Struct) {
			continue
		}
		fIndex := append(append([]int{}, index...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
			res = append(res, collectWriters(f.Type, fIndex)...)
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" {
			base, _, _ := strings.Cut(tag, ",")
			if base == "-" {
				continue
			}
			if base != "" {
				name = base
			}
		}
		res = append(res, &BeanPropertyWriter{
			name:  name,
			views: tagViews(f.Tag.Get("squiggly")),
			index: fIndex,
		})
	}
	return res
}

func tagViews(tag string) []string {
	for _, opt := range strings.Split(tag, ",") {
		k, v, ok := strings.Cut(opt, "=")
		if !ok || k != "views" {
			continue
		}
		if v == "" {
			return nil
		}
		return strings.Split(v, "|")
	}
	return nil
}
