package ir

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode parses JSON bytes into an IR node.
func Decode(d []byte) (*Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	node, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return node, nil
}

// DecodeRead parses a JSON document from r into an IR node.
func DecodeRead(r io.Reader) (*Node, error) {
	dec := jsontext.NewDecoder(r)
	node, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return node, nil
}

// Encode renders an IR node as compact JSON bytes.
func Encode(node *Node) ([]byte, error) {
	b := bytes.NewBuffer(nil)
	if err := EncodeWrite(node, b); err != nil {
		return nil, err
	}
	// jsontext.Encoder terminates top-level values with a newline; the
	// compact byte form excludes it.
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// EncodeWrite renders an IR node as compact JSON to w.
func EncodeWrite(node *Node, w io.Writer) error {
	je := jsontext.NewEncoder(w)
	return nodeToJEnc(node, je)
}

func decodeValue(dec *jsontext.Decoder) (*Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return FromBool(tok.Bool()), nil
	case '"':
		return FromString(tok.String()), nil
	case '0':
		return numberNode(tok.String())
	case '{':
		res := &Node{Type: ObjectType}
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			key := keyTok.String()
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	case '[':
		res := &Node{Type: ArrayType}
		for dec.PeekKind() != ']' {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			val.Parent = res
			val.ParentIndex = len(res.Values)
			res.Values = append(res.Values, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func numberNode(text string) (*Node, error) {
	if !strings.ContainsAny(text, ".eE") {
		i, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			res := FromInt(i)
			res.Number = text
			return res, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	res := FromFloat(f)
	res.Number = text
	return res, nil
}

func nodeToJEnc(node *Node, je *jsontext.Encoder) error {
	switch node.Type {
	case ObjectType:
		if err := je.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, field := range node.Fields {
			val := node.Values[i]
			if err := je.WriteToken(jsontext.String(field.String)); err != nil {
				return err
			}
			if err := nodeToJEnc(val, je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndObject)
	case ArrayType:
		if err := je.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, val := range node.Values {
			if err := nodeToJEnc(val, je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndArray)

	case StringType:
		return je.WriteToken(jsontext.String(node.String))
	case NumberType:
		if node.Int64 != nil {
			return je.WriteToken(jsontext.Int(*node.Int64))
		}
		if node.Float64 != nil {
			return je.WriteToken(jsontext.Float(*node.Float64))
		}
		if node.Number != "" {
			return je.WriteValue(jsontext.Value(node.Number))
		}
		return fmt.Errorf("number node without a value")
	case BoolType:
		return je.WriteToken(jsontext.Bool(node.Bool))
	case NullType:
		return je.WriteToken(jsontext.Null)
	default:
		panic("ir type")
	}
}

func marshalAny(v any) ([]byte, error) {
	return json.Marshal(v)
}
