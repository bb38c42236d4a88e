// Package grammar holds the calculator grammar in EBNF form.
package grammar

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Filename is the name reported in grammar parse errors.
const Filename = "calc.ebnf"

// Start is the production every input is matched against.
const Start = "Expression"

//go:embed calc.ebnf
var source string

// Source returns the EBNF text of the grammar.
func Source() string {
	return source
}

func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(Filename, strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Verify parses the grammar and checks that every production is defined and
// reachable from Start.
func Verify() error {
	g, err := Load()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Accepts reports whether input is a sentence of the grammar. Spaces may
// surround any token of an upper case production.
func Accepts(g ebnf.Grammar, input string) bool {
	m := NewMatcher(g, []byte(input))
	n := m.Match(Start)
	if n < 0 {
		return false
	}
	for n < len(input) && input[n] == ' ' {
		n++
	}
	return n == len(input)
}
