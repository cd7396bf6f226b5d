package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/squiggly-format/go-squiggly/fn"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	items := []protocol.CompletionItem{
		{
			Label:  "**",
			Kind:   protocol.CompletionItemKindValue,
			Detail: "the full object graph",
		},
		{
			Label:  "*",
			Kind:   protocol.CompletionItemKindValue,
			Detail: "all fields, base view of nested objects",
		},
	}
	for _, f := range fn.Builtins() {
		items = append(items, protocol.CompletionItem{
			Label:      f.Name(),
			Kind:       protocol.CompletionItemKindFunction,
			Detail:     fnDetail(f),
			InsertText: f.Name() + "()",
		})
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

func fnDetail(f fn.Function) string {
	min, max := f.Arity()
	var args string
	switch {
	case max == 0:
		args = "()"
	case max < 0:
		args = fmt.Sprintf("(%d+ args)", min)
	case min == max:
		args = fmt.Sprintf("(%d args)", min)
	default:
		args = fmt.Sprintf("(%d-%d args)", min, max)
	}
	res := f.Name() + args
	if aliases := f.Aliases(); len(aliases) > 0 {
		res += " aliases: " + strings.Join(aliases, ", ")
	}
	return res
}
