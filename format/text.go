package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/calc/expr"
)

type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

// EncodeOutcome writes "result: N", or the error followed by the source line
// with a caret under the error column.
func (e *TextEncoder) EncodeOutcome(src string, out expr.Outcome) error {
	if out.Err == nil {
		_, err := fmt.Fprintf(e.w, "result: %d\n", out.Value)
		return err
	}
	_, err := io.WriteString(e.w, out.Err.Error()+"\n"+Caret(src, out.Err.Pos))
	return err
}

func (e *TextEncoder) EncodeDocument(doc *expr.Document) error {
	for _, l := range doc.Lines {
		if l.Outcome.Err != nil {
			if err := e.EncodeOutcome(l.Text, l.Outcome); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(e.w, "%d: %s = %d\n", l.Number, strings.Trim(l.Text, " "), l.Outcome.Value); err != nil {
			return err
		}
	}
	return nil
}

// Caret returns src and a second line pointing at pos, both indented by two
// spaces.
func Caret(src string, pos expr.Position) string {
	col := pos.Column
	if col < 1 {
		col = 1
	}
	return "  " + src + "\n  " + strings.Repeat(" ", col-1) + "^\n"
}
