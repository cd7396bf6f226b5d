package stream

import (
	"bufio"
	"io"
	"strconv"
	"unicode/utf8"
)

// Generator writes structural output and maintains the output context
// chain.
type Generator interface {
	BeginObject() error
	EndObject() error
	BeginArray() error
	EndArray() error
	WriteFieldName(name string) error
	WriteString(v string) error
	WriteInt(v int64) error
	WriteFloat(v float64) error
	WriteBool(v bool) error
	WriteNull() error

	// SetCurrentValue records the value being serialized in the current
	// frame, making it visible to filters via the context chain.
	SetCurrentValue(v any)
	// OutputContext returns the innermost open frame, nil at document
	// root.
	OutputContext() *WriteContext
	// CanOmitFields reports whether the output format can skip a field
	// entirely. Formats that cannot require an explicit excluded marker.
	CanOmitFields() bool
	Flush() error
}

// JSONGenerator writes compact JSON. JSON has no positional field slots,
// so CanOmitFields is true.
type JSONGenerator struct {
	w   *bufio.Writer
	ctx *WriteContext
}

func NewJSONGenerator(w io.Writer) *JSONGenerator {
	return &JSONGenerator{w: bufio.NewWriter(w)}
}

func (g *JSONGenerator) OutputContext() *WriteContext { return g.ctx }
func (g *JSONGenerator) CanOmitFields() bool          { return true }

func (g *JSONGenerator) SetCurrentValue(v any) {
	if g.ctx != nil {
		g.ctx.currentValue = v
	}
}

func (g *JSONGenerator) Flush() error {
	return g.w.Flush()
}

// beforeValue writes any separator a value needs in the current frame and
// counts the value.
func (g *JSONGenerator) beforeValue() error {
	if g.ctx == nil {
		return nil
	}
	if g.ctx.kind == arrayContext && g.ctx.n > 0 {
		if err := g.w.WriteByte(','); err != nil {
			return err
		}
	}
	g.ctx.n++
	return nil
}

func (g *JSONGenerator) BeginObject() error {
	if err := g.beforeValue(); err != nil {
		return err
	}
	if err := g.w.WriteByte('{'); err != nil {
		return err
	}
	g.ctx = &WriteContext{parent: g.ctx, kind: objectContext}
	return nil
}

func (g *JSONGenerator) EndObject() error {
	if g.ctx == nil || g.ctx.kind != objectContext {
		return &Error{Msg: "end of object outside object context"}
	}
	g.ctx = g.ctx.parent
	return g.w.WriteByte('}')
}

func (g *JSONGenerator) BeginArray() error {
	if err := g.beforeValue(); err != nil {
		return err
	}
	if err := g.w.WriteByte('['); err != nil {
		return err
	}
	g.ctx = &WriteContext{parent: g.ctx, kind: arrayContext}
	return nil
}

func (g *JSONGenerator) EndArray() error {
	if g.ctx == nil || g.ctx.kind != arrayContext {
		return &Error{Msg: "end of array outside array context"}
	}
	g.ctx = g.ctx.parent
	return g.w.WriteByte(']')
}

func (g *JSONGenerator) WriteFieldName(name string) error {
	if g.ctx == nil || g.ctx.kind != objectContext {
		return &Error{Msg: "field name outside object context"}
	}
	if g.ctx.n > 0 {
		if err := g.w.WriteByte(','); err != nil {
			return err
		}
	}
	g.ctx.n++
	g.ctx.currentName = name
	g.ctx.hasName = true
	if err := writeJSONString(g.w, name); err != nil {
		return err
	}
	return g.w.WriteByte(':')
}

// fieldValue handles separator accounting for scalar values: inside an
// object the separator was written with the field name.
func (g *JSONGenerator) fieldValue() error {
	if g.ctx == nil || g.ctx.kind != arrayContext {
		return nil
	}
	return g.beforeValue()
}

func (g *JSONGenerator) WriteString(v string) error {
	if err := g.fieldValue(); err != nil {
		return err
	}
	return writeJSONString(g.w, v)
}

func (g *JSONGenerator) WriteInt(v int64) error {
	if err := g.fieldValue(); err != nil {
		return err
	}
	_, err := g.w.WriteString(strconv.FormatInt(v, 10))
	return err
}

func (g *JSONGenerator) WriteFloat(v float64) error {
	if err := g.fieldValue(); err != nil {
		return err
	}
	_, err := g.w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	return err
}

func (g *JSONGenerator) WriteBool(v bool) error {
	if err := g.fieldValue(); err != nil {
		return err
	}
	_, err := g.w.WriteString(strconv.FormatBool(v))
	return err
}

func (g *JSONGenerator) WriteNull() error {
	if err := g.fieldValue(); err != nil {
		return err
	}
	_, err := g.w.WriteString("null")
	return err
}

const hexDigits = "0123456789abcdef"

func writeJSONString(w *bufio.Writer, s string) error {
	if err := w.WriteByte('"'); err != nil {
		return err
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' && c < utf8.RuneSelf {
			if err := w.WriteByte(c); err != nil {
				return err
			}
			i++
			continue
		}
		if c >= utf8.RuneSelf {
			r, n := utf8.DecodeRuneInString(s[i:])
			if _, err := w.WriteRune(r); err != nil {
				return err
			}
			i += n
			continue
		}
		switch c {
		case '"':
			_, _ = w.WriteString(`\"`)
		case '\\':
			_, _ = w.WriteString(`\\`)
		case '\n':
			_, _ = w.WriteString(`\n`)
		case '\r':
			_, _ = w.WriteString(`\r`)
		case '\t':
			_, _ = w.WriteString(`\t`)
		default:
			_, _ = w.WriteString(`\u00`)
			_ = w.WriteByte(hexDigits[c>>4])
			_ = w.WriteByte(hexDigits[c&0xf])
		}
		i++
	}
	return w.WriteByte('"')
}
