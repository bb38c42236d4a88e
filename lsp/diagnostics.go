package lsp

import (
	"fmt"

	"github.com/dhamidi/calc/expr"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "calc"

// Diagnostics converts the failing lines of doc into LSP diagnostics. Each
// diagnostic covers the character the error was reported at, or is empty at
// end of line.
func Diagnostics(doc *expr.Document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, l := range doc.Lines {
		e := l.Outcome.Err
		if e == nil {
			continue
		}

		start := protocol.Position{
			Line:      protocol.UInteger(e.Pos.Line - 1),
			Character: protocol.UInteger(e.Pos.Column - 1),
		}
		end := start
		if e.Pos.Offset < len(l.Text) {
			end.Character++
		}

		severity := protocol.DiagnosticSeverityError
		source := diagnosticSource
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: e.Kind.String()},
			Source:   &source,
			Message:  fmt.Sprintf("%s: %s", e.Kind.Class(), e.Kind.Message()),
		})
	}
	return diagnostics
}

// Hover describes the line under pos: its value, or its error.
func Hover(doc *expr.Document, pos protocol.Position) *protocol.Hover {
	l := doc.LineAt(int(pos.Line) + 1)
	if l == nil {
		return nil
	}

	var text string
	if e := l.Outcome.Err; e != nil {
		text = e.Kind.Error()
	} else {
		text = fmt.Sprintf("= %d", l.Outcome.Value)
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: text,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: pos.Line, Character: 0},
			End:   protocol.Position{Line: pos.Line, Character: protocol.UInteger(len(l.Text))},
		},
	}
}
