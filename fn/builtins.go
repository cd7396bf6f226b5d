package fn

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Builtins returns the functions available to every invoker by default.
func Builtins() []Function {
	return []Function{
		Upper(),
		Lower(),
		Trim(),
		Capitalize(),
		Reverse(),
		Size(),
		First(),
		Last(),
		Default(),
		Snake(),
		Camel(),
		Kebab(),
		Base64(),
		Mask(),
		Expr(),
	}
}

// DefaultSource returns a source holding the builtins.
func DefaultSource() *MapSource {
	return NewMapSource(Builtins()...)
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func Upper() Function {
	return New("upper", func(inv *Invocation) (any, error) {
		return strings.ToUpper(asString(inv.Input)), nil
	}).WithAliases("uppercase")
}

func Lower() Function {
	return New("lower", func(inv *Invocation) (any, error) {
		return strings.ToLower(asString(inv.Input)), nil
	}).WithAliases("lowercase")
}

func Trim() Function {
	return New("trim", func(inv *Invocation) (any, error) {
		return strings.TrimSpace(asString(inv.Input)), nil
	})
}

func Capitalize() Function {
	return New("capitalize", func(inv *Invocation) (any, error) {
		s := asString(inv.Input)
		if s == "" {
			return s, nil
		}
		r := []rune(s)
		r[0] = unicode.ToUpper(r[0])
		return string(r), nil
	})
}

func Reverse() Function {
	return New("reverse", func(inv *Invocation) (any, error) {
		r := []rune(asString(inv.Input))
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r), nil
	})
}

func Size() Function {
	return New("size", func(inv *Invocation) (any, error) {
		if inv.Input == nil {
			return int64(0), nil
		}
		v := reflect.ValueOf(inv.Input)
		switch v.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
			return int64(v.Len()), nil
		default:
			return nil, fmt.Errorf("size of %T", inv.Input)
		}
	}).WithAliases("length", "len")
}

func First() Function {
	return New("first", func(inv *Invocation) (any, error) {
		return edge(inv.Input, 0)
	})
}

func Last() Function {
	return New("last", func(inv *Invocation) (any, error) {
		return edge(inv.Input, -1)
	})
}

func edge(v any, at int) (any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if s == "" {
			return "", nil
		}
		r := []rune(s)
		if at < 0 {
			return string(r[len(r)-1]), nil
		}
		return string(r[0]), nil
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil, nil
		}
		if at < 0 {
			return rv.Index(rv.Len() - 1).Interface(), nil
		}
		return rv.Index(0).Interface(), nil
	default:
		return v, nil
	}
}

func Default() Function {
	return New("default", func(inv *Invocation) (any, error) {
		if inv.Input == nil || inv.Input == "" {
			return inv.Args[0], nil
		}
		return inv.Input, nil
	}).WithArity(1, 1)
}

func Snake() Function {
	return New("snake", func(inv *Invocation) (any, error) {
		return caseWords(asString(inv.Input), "_", false), nil
	})
}

func Kebab() Function {
	return New("kebab", func(inv *Invocation) (any, error) {
		return caseWords(asString(inv.Input), "-", false), nil
	})
}

func Camel() Function {
	return New("camel", func(inv *Invocation) (any, error) {
		return caseWords(asString(inv.Input), "", true), nil
	})
}

// caseWords splits an identifier on case boundaries, '_', and '-', then
// rejoins with sep, capitalizing non-leading words when capitalize is set.
func caseWords(s, sep string, capitalize bool) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, unicode.ToLower(r))
		default:
			cur = append(cur, r)
		}
	}
	flush()
	if capitalize {
		for i := 1; i < len(words); i++ {
			r := []rune(words[i])
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}
	return strings.Join(words, sep)
}

func Base64() Function {
	return New("base64", func(inv *Invocation) (any, error) {
		return base64.StdEncoding.EncodeToString([]byte(asString(inv.Input))), nil
	}).WithAliases("b64enc")
}

func Mask() Function {
	return New("mask", func(inv *Invocation) (any, error) {
		mask := "*"
		if len(inv.Args) > 0 {
			mask = asString(inv.Args[0])
		}
		n := len([]rune(asString(inv.Input)))
		return strings.Repeat(mask, n), nil
	}).WithAliases("redact").WithArity(0, 1)
}
