package main

import (
	"context"

	"github.com/signadot/styx-format/go-styx/debug"
	"github.com/signadot/styx-format/go-styx/parse"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	var params *protocol.PublishDiagnosticsParams
	s.docs.view(uri, func(d *document) {
		if d == nil {
			return
		}
		params = &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: d.diagnostics(),
		}
	})
	if params == nil || s.conn == nil {
		return
	}
	if err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, params); err != nil && debug.LSP() {
		debug.Logf("publish diagnostics %s: %v\n", uri, err)
	}
}

// diagnostics reports the parse error of d, if any, at its position.
func (d *document) diagnostics() []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	diag := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  d.err.Error(),
		Source:   "styx",
	}
	if pos, ok := parse.Position(d.err); ok {
		end := pos.Offset
		if end < len(d.content) {
			end++
		}
		diag.Range = d.rangeOf(pos.Offset, end)
	}
	return append(res, diag)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := string(params.TextDocument.URI)
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn != nil {
		return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
