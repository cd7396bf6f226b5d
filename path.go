package squiggly

import "strings"

// PathElement is one step of the path from the document root to the field
// under consideration: the field name plus the value owning it. The
// element only observes the value; it never mutates it.
type PathElement struct {
	Name string
	// Value is the owning value read from the live serialization context.
	Value any
	// Views are the view names of the field, for the terminal element of
	// a bean-backed path.
	Views []string
}

// Path is the ordered sequence of path elements from the document root to
// the field under consideration.
type Path struct {
	elements []PathElement
	key      string
	cacheKey string
}

func NewPath(elements ...PathElement) *Path {
	names := make([]string, len(elements))
	for i := range elements {
		names[i] = elements[i].Name
	}
	p := &Path{
		elements: elements,
		key:      strings.Join(names, "."),
	}
	p.cacheKey = p.key
	if last := p.Last(); last != nil && len(last.Views) > 0 {
		p.cacheKey += "\x00" + strings.Join(last.Views, ",")
	}
	return p
}

func (p *Path) Elements() []PathElement {
	return p.elements
}

func (p *Path) Len() int {
	return len(p.elements)
}

func (p *Path) First() *PathElement {
	if len(p.elements) == 0 {
		return nil
	}
	return &p.elements[0]
}

func (p *Path) Last() *PathElement {
	if len(p.elements) == 0 {
		return nil
	}
	return &p.elements[len(p.elements)-1]
}

// CacheKey identifies the path for match caching: the name sequence plus
// the terminal element's views, which matching also consults.
func (p *Path) CacheKey() string {
	return p.cacheKey
}

func (p *Path) String() string {
	return "$." + p.key
}
