package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/calc/expr"
)

// Encoder renders evaluation results.
type Encoder interface {
	EncodeOutcome(src string, out expr.Outcome) error
	EncodeDocument(doc *expr.Document) error
}

// Names lists the formats accepted by New.
var Names = []string{"text", "json"}

func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
