package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/calc/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEncoderOutcome(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)

	require.NoError(t, enc.EncodeOutcome("(1+2)*3-4", expr.New().Evaluate("(1+2)*3-4")))
	assert.Equal(t, "result: 5\n", buf.String())

	buf.Reset()
	require.NoError(t, enc.EncodeOutcome("1+", expr.New().Evaluate("1+")))
	assert.Equal(t, "SyntaxError: number was expected at 1:3\n  1+\n    ^\n", buf.String())
}

func TestTextEncoderDocument(t *testing.T) {
	doc := expr.EvaluateDocument([]byte("1 + 2\n(4\n"), expr.WithFile("a.calc"))

	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder(&buf).EncodeDocument(doc))

	want := "1: 1 + 2 = 3\n" +
		"SyntaxError: closing parenthesis was expected at a.calc:2:3\n" +
		"  (4\n" +
		"    ^\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONEncoderOutcome(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf)

	require.NoError(t, enc.EncodeOutcome("8/4/2", expr.New().Evaluate("8/4/2")))

	var ok map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ok))
	assert.Equal(t, "8/4/2", ok["expression"])
	assert.Equal(t, float64(1), ok["result"])
	assert.NotContains(t, ok, "error")

	buf.Reset()
	require.NoError(t, enc.EncodeOutcome("1+)", expr.New().Evaluate("1+)")))

	var failed jsonOutcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &failed))
	assert.Nil(t, failed.Result)
	require.NotNil(t, failed.Error)
	assert.Equal(t, jsonError{
		Kind:    "ExpectedNumber",
		Class:   "SyntaxError",
		Message: "number was expected",
		Line:    1,
		Column:  3,
		Offset:  2,
		Got:     ")",
	}, *failed.Error)
}

func TestJSONEncoderZeroResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).EncodeOutcome("0", expr.New().Evaluate("0")))
	assert.Contains(t, buf.String(), `"result": 0`)
}

func TestJSONEncoderDocument(t *testing.T) {
	doc := expr.EvaluateDocument([]byte("# c\n2*3\n1/0\n"), expr.WithFile("d.calc"))

	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).EncodeDocument(doc))

	var got jsonDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "d.calc", got.File)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, 2, got.Lines[0].Line)
	assert.Equal(t, int64(6), *got.Lines[0].Result)
	assert.Equal(t, 3, got.Lines[1].Line)
	assert.Equal(t, "DivisionByZero", got.Lines[1].Error.Kind)
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		enc, err := New(name, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NotNil(t, enc)
	}

	_, err := New("xml", &bytes.Buffer{})
	assert.EqualError(t, err, "unknown format: xml")
}
