package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/squiggly-format/go-squiggly/format"
	"github.com/squiggly-format/go-squiggly/ir"

	"github.com/goccy/go-yaml"
)

// EncState carries the options of one encoding pass.
type EncState struct {
	buf    bytes.Buffer
	format format.Format
	indent int
	Color  func(t ir.Type, a ColorAttr, s string) string
}

// Encode renders node to w in the configured format. The default is
// indented, uncolored JSON.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, Color: plainColor}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	es.value(node, 0)
	es.buf.WriteByte('\n')
	_, err := w.Write(es.buf.Bytes())
	return err
}

func plainColor(_ ir.Type, _ ColorAttr, s string) string { return s }

func (es *EncState) value(node *ir.Node, depth int) {
	switch node.Type {
	case ir.ObjectType:
		es.object(node, depth)
	case ir.ArrayType:
		es.array(node, depth)
	case ir.StringType:
		es.buf.WriteString(es.Color(ir.StringType, ValueColor, strconv.Quote(node.String)))
	case ir.NumberType:
		es.buf.WriteString(es.Color(ir.NumberType, ValueColor, numberText(node)))
	case ir.BoolType:
		es.buf.WriteString(es.Color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		es.buf.WriteString(es.Color(ir.NullType, ValueColor, "null"))
	}
}

func (es *EncState) object(node *ir.Node, depth int) {
	if len(node.Fields) == 0 {
		es.buf.WriteString(es.Color(ir.ObjectType, SepColor, "{}"))
		return
	}
	es.buf.WriteString(es.Color(ir.ObjectType, SepColor, "{"))
	for i, field := range node.Fields {
		if i > 0 {
			es.buf.WriteString(es.Color(ir.ObjectType, SepColor, ","))
		}
		es.newline(depth + 1)
		es.buf.WriteString(es.Color(ir.ObjectType, FieldColor, strconv.Quote(field.String)))
		es.buf.WriteString(es.Color(ir.ObjectType, SepColor, ": "))
		es.value(node.Values[i], depth+1)
	}
	es.newline(depth)
	es.buf.WriteString(es.Color(ir.ObjectType, SepColor, "}"))
}

func (es *EncState) array(node *ir.Node, depth int) {
	if len(node.Values) == 0 {
		es.buf.WriteString(es.Color(ir.ArrayType, SepColor, "[]"))
		return
	}
	es.buf.WriteString(es.Color(ir.ArrayType, SepColor, "["))
	for i, val := range node.Values {
		if i > 0 {
			es.buf.WriteString(es.Color(ir.ArrayType, SepColor, ","))
		}
		es.newline(depth + 1)
		es.value(val, depth+1)
	}
	es.newline(depth)
	es.buf.WriteString(es.Color(ir.ArrayType, SepColor, "]"))
}

func (es *EncState) newline(depth int) {
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", depth*es.indent))
}

func numberText(node *ir.Node) string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}
