package stream

type contextKind int

const (
	objectContext contextKind = iota
	arrayContext
)

// WriteContext is one frame of the output nesting context chain. The
// generator maintains the chain as containers open and close; filters read
// it to reconstruct the path from the document root to the field under
// consideration.
type WriteContext struct {
	parent       *WriteContext
	kind         contextKind
	currentName  string
	hasName      bool
	currentValue any
	n            int
}

// Parent returns the enclosing frame, or nil at the outermost container.
func (c *WriteContext) Parent() *WriteContext {
	if c == nil {
		return nil
	}
	return c.parent
}

// CurrentName returns the field name most recently written in this frame.
// Array and root frames have no current name.
func (c *WriteContext) CurrentName() (string, bool) {
	if c == nil {
		return "", false
	}
	return c.currentName, c.hasName
}

// CurrentValue returns the value being serialized at this frame, as set by
// the serializer via Generator.SetCurrentValue.
func (c *WriteContext) CurrentValue() any {
	if c == nil {
		return nil
	}
	return c.currentValue
}

// InRoot reports the document root, where no container is open.
func (c *WriteContext) InRoot() bool {
	return c == nil
}

func (c *WriteContext) InObject() bool {
	return c != nil && c.kind == objectContext
}

func (c *WriteContext) InArray() bool {
	return c != nil && c.kind == arrayContext
}
