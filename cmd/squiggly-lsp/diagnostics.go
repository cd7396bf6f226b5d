package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/squiggly-format/go-squiggly/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	node    *parse.Node
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	node, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		node:    node,
		err:     err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.err != nil {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   "squiggly",
		}

		// Try to parse position from error string
		if pos := extractPosition(doc.err.Error()); pos != nil {
			diagnostic.Range = protocol.Range{
				Start: protocol.Position{
					Line:      uint32(pos.line),
					Character: uint32(pos.col),
				},
				End: protocol.Position{
					Line:      uint32(pos.line),
					Character: uint32(pos.col + 1),
				},
			}
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

type position struct {
	line int
	col  int
}

// extractPosition finds the trailing "line:col" a parse error carries, if
// any. Positions in error messages are 1-based.
func extractPosition(errMsg string) *position {
	for i := len(errMsg) - 1; i > 0; i-- {
		if errMsg[i] != ':' {
			continue
		}
		var line, col int
		if _, err := fmt.Sscanf(errMsg[i-posDigits(errMsg, i):], "%d:%d", &line, &col); err != nil {
			continue
		}
		return &position{line: line - 1, col: col - 1}
	}
	return nil
}

func posDigits(s string, i int) int {
	n := 0
	for i-n-1 >= 0 && s[i-n-1] >= '0' && s[i-n-1] <= '9' {
		n++
	}
	return n
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// Apply changes
	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// Full document replacement
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
