package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	word := wordAt(doc.content, int(params.Position.Line), int(params.Position.Character))
	if word == "" {
		return nil, nil
	}
	fns := s.source.FindByName(word)
	if len(fns) == 0 {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: fmt.Sprintf("`%s`: %s", word, fnDetail(fns[0])),
		},
	}, nil
}

func wordAt(content string, line, col int) string {
	off := lineColToOffset(content, line, col)
	if off > len(content) {
		return ""
	}
	isWord := func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '_' || c == '$'
	}
	start, end := off, off
	for start > 0 && isWord(content[start-1]) {
		start--
	}
	for end < len(content) && isWord(content[end]) {
		end++
	}
	return content[start:end]
}
