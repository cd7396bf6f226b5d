package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		field := node.Fields[i]
		res[field.String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		yf := FromString(key)
		yf.Parent = res
		yf.ParentIndex = i
		yf.ParentField = key
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		res.Fields[i] = yf
		res.Values[i] = y
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{}
	res.Type = ArrayType
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		y.Parent = res
		y.ParentIndex = i
		res.Values[i] = y
	}
	return res
}

// SetField sets or appends a field on an object node, keeping parent
// links consistent.
func (y *Node) SetField(name string, val *Node) *Node {
	for i, yf := range y.Fields {
		if yf.String != name {
			continue
		}
		val.Parent = y
		val.ParentIndex = i
		val.ParentField = name
		y.Values[i] = val
		return y
	}
	i := len(y.Fields)
	yf := FromString(name)
	yf.Parent = y
	yf.ParentIndex = i
	yf.ParentField = name
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = name
	y.Fields = append(y.Fields, yf)
	y.Values = append(y.Values, val)
	return y
}

// Field returns the value of the named field, or nil.
func (y *Node) Field(name string) *Node {
	for i, yf := range y.Fields {
		if yf.String == name {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks the tree rooted at y calling f twice per node, once before
// descending (isPost false) and once after (isPost true). Returning false
// from the pre-visit skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	descend, err := f(y, false)
	if err != nil {
		return err
	}
	if descend {
		for _, yv := range y.Values {
			if err := yv.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
