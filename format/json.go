package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/calc/expr"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

type jsonOutcome struct {
	Line       int        `json:"line,omitempty"`
	Expression string     `json:"expression"`
	Result     *int64     `json:"result,omitempty"`
	Error      *jsonError `json:"error,omitempty"`
}

type jsonError struct {
	Kind    string `json:"kind"`
	Class   string `json:"class"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
	Got     string `json:"got,omitempty"`
}

type jsonDocument struct {
	File   string        `json:"file,omitempty"`
	Lines  []jsonOutcome `json:"lines"`
	Failed int           `json:"failed"`
}

func (e *JSONEncoder) EncodeOutcome(src string, out expr.Outcome) error {
	return e.write(outcomeToJSON(src, out))
}

func (e *JSONEncoder) EncodeDocument(doc *expr.Document) error {
	jd := jsonDocument{
		File:   doc.File,
		Lines:  make([]jsonOutcome, 0, len(doc.Lines)),
		Failed: len(doc.Errors()),
	}
	for _, l := range doc.Lines {
		jo := outcomeToJSON(l.Text, l.Outcome)
		jo.Line = l.Number
		jd.Lines = append(jd.Lines, jo)
	}
	return e.write(jd)
}

func (e *JSONEncoder) write(v any) error {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func outcomeToJSON(src string, out expr.Outcome) jsonOutcome {
	jo := jsonOutcome{Expression: src}
	if out.Err == nil {
		v := out.Value
		jo.Result = &v
		return jo
	}
	jo.Error = &jsonError{
		Kind:    out.Err.Kind.String(),
		Class:   out.Err.Kind.Class(),
		Message: out.Err.Kind.Message(),
		File:    out.Err.Pos.File,
		Line:    out.Err.Pos.Line,
		Column:  out.Err.Pos.Column,
		Offset:  out.Err.Pos.Offset,
		Got:     out.Err.Got,
	}
	return jo
}
