package squiggly

import (
	"sync"

	"github.com/squiggly-format/go-squiggly/debug"
	"github.com/squiggly-format/go-squiggly/parse"
)

// AlwaysMatch is the sentinel result for unconditional inclusion.
var AlwaysMatch = &parse.Node{Names: []parse.Name{{Kind: parse.AnyName, Value: "*"}}}

// NeverMatch is the sentinel result for exclusion.
var NeverMatch = &parse.Node{}

// Matcher matches field paths against parsed filters. Results are cached
// per (filter, path cache key); the cache is safe for concurrent use.
type Matcher struct {
	cache sync.Map
}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the filter node governing the field at path, AlwaysMatch
// for inclusion without a governing node, or NeverMatch for exclusion.
func (m *Matcher) Match(path *Path, ctx *Context) *parse.Node {
	if ctx == nil || ctx.Node == nil {
		return AlwaysMatch
	}
	if path.Len() == 0 {
		return AlwaysMatch
	}
	key := ctx.Filter + "\x00" + path.CacheKey()
	if cached, ok := m.cache.Load(key); ok {
		return cached.(*parse.Node)
	}
	res := matchPath(path.Elements(), ctx.Node)
	if debug.Match() {
		debug.Logf("match %s against %q -> %v\n", path.String(), ctx.Filter, res != NeverMatch)
	}
	m.cache.Store(key, res)
	return res
}

// matchPath walks the path level by level against the filter tree.
//
// At each level the best positive candidate wins, with precedence
// exact > wildcard > * > view. A childless negated candidate matching the
// element excludes the field. A matched node without children includes the
// whole subtree beneath it, as does "**", which also stays active at
// deeper levels. A level whose candidates are all negated includes fields
// they do not match.
func matchPath(elements []PathElement, root *parse.Node) *parse.Node {
	candidates := root.Children
	var match *parse.Node
	var carry *parse.Node
	for i := range elements {
		el := &elements[i]
		if len(candidates) == 0 {
			if carry == nil {
				return NeverMatch
			}
			match = carry
			continue
		}
		var best *parse.Node
		bestRank := 0
		positives := false
		for _, cand := range candidates {
			rank := cand.Matches(el.Name, el.Views)
			if !cand.Negated {
				positives = true
			}
			if rank == 0 {
				continue
			}
			if cand.Negated {
				if len(cand.Children) == 0 {
					return NeverMatch
				}
				continue
			}
			if rank > bestRank {
				bestRank, best = rank, cand
			}
		}
		if best == nil {
			if !positives {
				// exclusion-only level: unmatched fields pass
				match, carry = AlwaysMatch, AlwaysMatch
				candidates = nextCandidates(candidates, el)
				continue
			}
			if carry == nil {
				return NeverMatch
			}
			match = carry
			candidates = nil
			continue
		}
		match = best
		if best.Deep() || (len(best.Children) == 0 && !shallowAny(best)) {
			carry = best
		}
		candidates = nextCandidates(candidates, el)
	}
	if match == nil {
		return NeverMatch
	}
	return match
}

// baseViewNode continues a shallow "*" one level down: nested objects keep
// only their base-view fields.
var baseViewNode = &parse.Node{Names: []parse.Name{{Kind: parse.ExactName, Value: parse.BaseView}}}

// shallowAny reports a childless "*" (but not "**") node.
func shallowAny(n *parse.Node) bool {
	if len(n.Children) > 0 || n.Deep() {
		return false
	}
	for _, name := range n.Names {
		if name.Kind == parse.AnyName {
			return true
		}
	}
	return false
}

// nextCandidates collects the filter nodes active one level deeper: the
// children of nodes matching the element, plus any "**" nodes themselves.
func nextCandidates(candidates []*parse.Node, el *PathElement) []*parse.Node {
	var next []*parse.Node
	for _, cand := range candidates {
		if cand.Matches(el.Name, el.Views) > 0 {
			next = append(next, cand.Children...)
			if shallowAny(cand) {
				next = append(next, baseViewNode)
			}
		}
		if cand.Deep() {
			next = append(next, cand)
		}
	}
	return next
}
