package ir

import (
	"fmt"
	"math"
	"strconv"
)

// FromAny converts a Go value to an IR node. Maps, slices, and scalars are
// converted structurally; anything else round-trips through the JSON codec.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 %d overflows int64", x)
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return FromInt(int64(x)), nil
		}
		return FromFloat(x), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case map[any]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = n
		}
		return FromMap(m), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	default:
		d, err := marshalAny(v)
		if err != nil {
			return nil, err
		}
		return Decode(d)
	}
}

// ToAny converts an IR node to a plain Go value (map[string]any, []any,
// string, bool, int64, float64, nil).
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
