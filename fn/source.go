package fn

import "strings"

// Source resolves a function name or alias to its registered
// implementations.
type Source interface {
	// FindByName returns the functions registered under name,
	// case-insensitively. Unknown names yield an empty, never-nil slice.
	FindByName(name string) []Function
}

// MapSource is a function repo backed by a map. It is built once from a
// snapshot of functions and is immutable afterwards, so concurrent lookups
// need no locking.
type MapSource struct {
	functionMap map[string][]Function
}

// NewMapSource builds a source from the given functions. Every function is
// registered under its name and each of its aliases, lowercased;
// registration order is preserved within each name's list.
func NewMapSource(functions ...Function) *MapSource {
	functionMap := map[string][]Function{}
	add := func(name string, f Function) {
		key := strings.ToLower(name)
		functionMap[key] = append(functionMap[key], f)
	}
	for _, f := range functions {
		add(f.Name(), f)
		for _, alias := range f.Aliases() {
			add(alias, f)
		}
	}
	return &MapSource{functionMap: functionMap}
}

func (s *MapSource) FindByName(name string) []Function {
	fns := s.functionMap[strings.ToLower(name)]
	if fns == nil {
		return []Function{}
	}
	return fns
}

// Names returns the distinct lookup keys of the source, for completion and
// listings.
func (s *MapSource) Names() []string {
	res := make([]string, 0, len(s.functionMap))
	for name := range s.functionMap {
		res = append(res, name)
	}
	return res
}
