package expr

import "strings"

// Line is one evaluated expression of a Document.
type Line struct {
	Number  int
	Text    string
	Outcome Outcome
}

type Document struct {
	File  string
	Lines []Line
}

// EvaluateDocument evaluates every expression line of src. Blank lines and
// lines whose first non-space character is '#' are skipped. Lines are
// numbered from the parser's start line.
func EvaluateDocument(src []byte, opts ...Option) *Document {
	base := New(opts...)
	doc := &Document{File: base.file}

	for i, text := range strings.Split(string(src), "\n") {
		text = strings.TrimSuffix(text, "\r")
		if isSkippedLine(text) {
			continue
		}
		p := *base
		p.startLine = base.startLine + i
		doc.Lines = append(doc.Lines, Line{
			Number:  p.startLine,
			Text:    text,
			Outcome: p.Evaluate(text),
		})
	}
	return doc
}

func isSkippedLine(text string) bool {
	trimmed := strings.TrimLeft(text, " ")
	return trimmed == "" || trimmed[0] == '#'
}

// Errors returns the errors of all failed lines in line order.
func (d *Document) Errors() []*Error {
	var errs []*Error
	for _, l := range d.Lines {
		if l.Outcome.Err != nil {
			errs = append(errs, l.Outcome.Err)
		}
	}
	return errs
}

func (d *Document) Failed() bool {
	return len(d.Errors()) > 0
}

// LineAt returns the evaluated line with the given number, or nil.
func (d *Document) LineAt(number int) *Line {
	for i := range d.Lines {
		if d.Lines[i].Number == number {
			return &d.Lines[i]
		}
	}
	return nil
}
