package parse

import (
	"path"
	"strings"

	"github.com/squiggly-format/go-squiggly/token"
)

type NameKind int

const (
	// ExactName matches a field by literal name.
	ExactName NameKind = iota
	// WildcardName matches a field by glob pattern ("eco*", "*Time", "a?c").
	WildcardName
	// AnyName is "*": any field at this level.
	AnyName
	// DeepName is "**": any field at any depth.
	DeepName
)

type Name struct {
	Kind  NameKind
	Value string
}

func newName(text string) Name {
	switch text {
	case "*":
		return Name{Kind: AnyName, Value: text}
	case "**":
		return Name{Kind: DeepName, Value: text}
	}
	if strings.ContainsAny(text, "*?") {
		return Name{Kind: WildcardName, Value: text}
	}
	return Name{Kind: ExactName, Value: text}
}

// Matches reports whether this name matches the field and, on a match, a
// rank used for precedence: exact > wildcard > any/deep > view.
func (n Name) Matches(field string, views []string) (bool, int) {
	switch n.Kind {
	case ExactName:
		if n.Value == field {
			return true, 4
		}
		for _, v := range views {
			if v == n.Value {
				return true, 1
			}
		}
		if n.Value == BaseView && len(views) == 0 {
			return true, 1
		}
		return false, 0
	case WildcardName:
		ok, err := path.Match(n.Value, field)
		if err != nil || !ok {
			return false, 0
		}
		return true, 3
	case AnyName, DeepName:
		return true, 2
	default:
		return false, 0
	}
}

// BaseView is the implicit view every untagged field belongs to.
const BaseView = "base"

type ArgKind int

const (
	StringArg ArgKind = iota
	IntArg
	FloatArg
	BoolArg
	NullArg
)

type Arg struct {
	Kind   ArgKind
	String string
	Int    int64
	Float  float64
	Bool   bool
}

func (a Arg) Value() any {
	switch a.Kind {
	case StringArg:
		return a.String
	case IntArg:
		return a.Int
	case FloatArg:
		return a.Float
	case BoolArg:
		return a.Bool
	default:
		return nil
	}
}

// Call is one function invocation attached to a filter node, applied to a
// field's key or value.
type Call struct {
	Name string
	Args []Arg
	Pos  *token.Pos
}

// Node is one parsed filter expression. The root node returned by Parse is
// an anonymous container whose Children are the comma-separated
// expressions.
type Node struct {
	Names      []Name
	Negated    bool
	Children   []*Node
	KeyCalls   []Call
	ValueCalls []Call
}

// HasCalls reports whether the node carries key or value transforms.
func (n *Node) HasCalls() bool {
	return len(n.KeyCalls) > 0 || len(n.ValueCalls) > 0
}

// Matches reports the best rank over the node's name alternates, 0 for no
// match.
func (n *Node) Matches(field string, views []string) int {
	best := 0
	for _, name := range n.Names {
		ok, rank := name.Matches(field, views)
		if ok && rank > best {
			best = rank
		}
	}
	return best
}

// Deep reports whether any name alternate is "**".
func (n *Node) Deep() bool {
	for _, name := range n.Names {
		if name.Kind == DeepName {
			return true
		}
	}
	return false
}
