package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"(1+2)*3-4"}, "result: 5\n"},
		{[]string{"8/4/2"}, "result: 1\n"},
		{[]string{"(1", "+", "2)"}, "result: 3\n"},
		{[]string{"  42  "}, "result: 42\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, "", append([]string{"eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalFailure(t *testing.T) {
	out, err := run(t, "", "eval", "1+")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "SyntaxError: number was expected at 1:3\n  1+\n    ^\n", out)

	out, err = run(t, "", "eval", "1/0")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "ArithmeticError: division by zero")
}

func TestEvalStdin(t *testing.T) {
	out, err := run(t, "2*(3+4)\r\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "result: 14\n", out)
}

func TestEvalJSON(t *testing.T) {
	out, err := run(t, "", "eval", "--format", "json", "1+2)")
	assert.ErrorIs(t, err, errFailed)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1+2)", got["expression"])
	require.Contains(t, got, "error")
	assert.Equal(t, "TrailingInput", got["error"].(map[string]any)["kind"])
}

func TestEvalParserFlags(t *testing.T) {
	out, err := run(t, "", "eval", "--allow-trailing", "1+2)")
	require.NoError(t, err)
	assert.Equal(t, "result: 3\n", out)

	out, err = run(t, "", "eval", "--max-depth", "1", "((1))")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "LimitError")

	_, err = run(t, "", "eval", "--max-depth", "0", strings.Repeat("(", 300)+"1"+strings.Repeat(")", 300))
	assert.NoError(t, err)
}

func TestEvalFile(t *testing.T) {
	path := writeFile(t, "a.calc", "# sums\n1+1\n2*(3\n")

	out, err := run(t, "", "eval", "-f", path)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "2: 1+1 = 2\n")
	assert.Contains(t, out, "SyntaxError: closing parenthesis was expected at "+path+":3:5")

	_, err = run(t, "", "eval", "-f", path, "1+1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)

	_, err = run(t, "", "eval", "-f", filepath.Join(t.TempDir(), "missing.calc"))
	assert.ErrorContains(t, err, "read file")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.calc", "1+1\n2*3\n")
	out, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": 2 expressions, 0 errors\n", out)

	bad := writeFile(t, "bad.calc", "1+1\n4/0\n")
	out, err = run(t, "", "check", good, bad)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "ArithmeticError: division by zero at "+bad+":2:2")
	assert.Contains(t, out, bad+": 2 expressions, 1 errors\n")
	assert.NotContains(t, out, "result:")
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "calc.yaml", "output:\n  format: json\nparser:\n  trailing_input: allow\n")

	out, err := run(t, "", "--config", path, "eval", "7)")
	require.NoError(t, err)
	assert.Contains(t, out, `"result": 7`)

	out, err = run(t, "", "--config", path, "eval", "--format", "text", "7")
	require.NoError(t, err)
	assert.Equal(t, "result: 7\n", out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "eval", "1")
	assert.Error(t, err)
}

func TestGrammar(t *testing.T) {
	out, err := run(t, "", "grammar", "check")
	require.NoError(t, err)
	assert.Equal(t, "calc.ebnf: ok (start Expression)\n", out)

	out, err = run(t, "", "grammar", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Expression")

	out, err = run(t, "", "grammar", "match", "(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, "accepted: (1 + 2) * 3\n", out)

	out, err = run(t, "", "grammar", "match", "1 +")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "rejected: 1 +\n", out)
}
