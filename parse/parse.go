// Package parse provides squiggly filter expression parsing support.
package parse

import (
	"fmt"
	"strconv"

	"github.com/squiggly-format/go-squiggly/token"
)

// Parse parses a filter expression such as "id,user{firstName,lastName}"
// into a root node whose Children are the top-level expressions.
func Parse(d []byte) (*Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	off := 0
	root := &Node{}
	if len(toks) == 0 {
		return root, nil
	}
	children, err := parseList(toks, &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w: unexpected %s", ErrParse, toks[off].String())
	}
	root.Children = children
	return root, nil
}

func parseList(toks []token.Token, pi *int) ([]*Node, error) {
	var res []*Node
	for {
		child, err := parseExpr(toks, pi)
		if err != nil {
			return nil, err
		}
		res = append(res, child)
		if *pi < len(toks) && toks[*pi].Type == token.TComma {
			*pi++
			continue
		}
		return res, nil
	}
}

func parseExpr(toks []token.Token, pi *int) (*Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: expected expression at end of filter", ErrParse)
	}
	negated := false
	if toks[*pi].Type == token.TDash {
		negated = true
		*pi++
	}
	node, err := parseSelector(toks, pi)
	if err != nil {
		return nil, err
	}
	node.Negated = negated
	return node, nil
}

func parseSelector(toks []token.Token, pi *int) (*Node, error) {
	node := &Node{}
	if err := parseNamed(toks, pi, node); err != nil {
		return nil, err
	}
	for *pi < len(toks) && toks[*pi].Type == token.TPipe {
		*pi++
		if err := parseNamed(toks, pi, node); err != nil {
			return nil, err
		}
	}
	if *pi >= len(toks) {
		return node, nil
	}
	switch toks[*pi].Type {
	case token.TDot:
		// dotted shorthand: user.name == user{name}
		*pi++
		child, err := parseSelector(toks, pi)
		if err != nil {
			return nil, err
		}
		node.Children = []*Node{child}
	case token.TLCurl:
		lcurl := &toks[*pi]
		*pi++
		children, err := parseList(toks, pi)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) || toks[*pi].Type != token.TRCurl {
			return nil, fmt.Errorf("%w: unbalanced '{' at %s", ErrParse, lcurl.Pos)
		}
		*pi++
		node.Children = children
	}
	return node, nil
}

func parseNamed(toks []token.Token, pi *int, node *Node) error {
	if *pi >= len(toks) {
		return fmt.Errorf("%w: expected name at end of filter", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TName:
		node.Names = append(node.Names, newName(t.Text))
	case token.TString:
		node.Names = append(node.Names, Name{Kind: ExactName, Value: t.Text})
	default:
		return fmt.Errorf("%w: expected name, got %s", ErrParse, t.String())
	}
	*pi++
	for *pi < len(toks) {
		switch toks[*pi].Type {
		case token.TColon:
			if !callFollows(toks, *pi+1) {
				return fmt.Errorf("%w: expected function call after ':' at %s", ErrParse, toks[*pi].Pos)
			}
			*pi++
			call, err := parseCall(toks, pi)
			if err != nil {
				return err
			}
			node.KeyCalls = append(node.KeyCalls, call)
		case token.TDot:
			if !callFollows(toks, *pi+1) {
				// dotted nesting, handled by parseSelector
				return nil
			}
			*pi++
			call, err := parseCall(toks, pi)
			if err != nil {
				return err
			}
			node.ValueCalls = append(node.ValueCalls, call)
		default:
			return nil
		}
	}
	return nil
}

func callFollows(toks []token.Token, i int) bool {
	return i+1 < len(toks) &&
		toks[i].Type == token.TName &&
		toks[i+1].Type == token.TLParen
}

func parseCall(toks []token.Token, pi *int) (Call, error) {
	t := &toks[*pi]
	if t.Type != token.TName {
		return Call{}, fmt.Errorf("%w: expected function name, got %s", ErrParse, t.String())
	}
	call := Call{Name: t.Text, Pos: t.Pos}
	*pi++
	if *pi >= len(toks) || toks[*pi].Type != token.TLParen {
		return Call{}, fmt.Errorf("%w: expected '(' after function name %q", errInternal, call.Name)
	}
	*pi++
	if *pi < len(toks) && toks[*pi].Type == token.TRParen {
		*pi++
		return call, nil
	}
	for {
		arg, err := parseArg(toks, pi)
		if err != nil {
			return Call{}, err
		}
		call.Args = append(call.Args, arg)
		if *pi >= len(toks) {
			return Call{}, fmt.Errorf("%w: unbalanced '(' in call to %q", ErrParse, call.Name)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRParen:
			*pi++
			return call, nil
		default:
			return Call{}, fmt.Errorf("%w: expected ',' or ')', got %s", ErrParse, toks[*pi].String())
		}
	}
}

func parseArg(toks []token.Token, pi *int) (Arg, error) {
	if *pi >= len(toks) {
		return Arg{}, fmt.Errorf("%w: expected argument at end of filter", ErrParse)
	}
	t := &toks[*pi]
	*pi++
	switch t.Type {
	case token.TString, token.TName:
		return Arg{Kind: StringArg, String: t.Text}, nil
	case token.TInteger:
		i, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return Arg{Kind: IntArg, Int: i}, nil
	case token.TFloat:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return Arg{Kind: FloatArg, Float: f}, nil
	case token.TTrue:
		return Arg{Kind: BoolArg, Bool: true}, nil
	case token.TFalse:
		return Arg{Kind: BoolArg, Bool: false}, nil
	case token.TNull:
		return Arg{Kind: NullArg}, nil
	default:
		return Arg{}, fmt.Errorf("%w: unexpected argument %s", ErrParse, t.String())
	}
}
