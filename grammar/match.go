package grammar

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

const noMatch = -1

type memoKey struct {
	name   string
	offset int
}

// Matcher matches input against the productions of a grammar. Alternatives
// take the longest match and repetitions are greedy, which is enough for
// grammars without ambiguous prefixes.
type Matcher struct {
	grammar  ebnf.Grammar
	input    []byte
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

func NewMatcher(g ebnf.Grammar, input []byte) *Matcher {
	return &Matcher{
		grammar:  g,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Match returns the number of bytes production name matches at the start of
// the input, or -1 when it does not match.
func (m *Matcher) Match(name string) int {
	return m.matchName(name, 0)
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}

func (m *Matcher) skipSpaces(offset int) int {
	for offset < len(m.input) && m.input[offset] == ' ' {
		offset++
	}
	return offset
}

// match returns the match length of expr at offset. Inside non-lexical
// productions spaces before terminals are consumed and counted.
func (m *Matcher) match(expr ebnf.Expression, offset int, lexical bool) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		start := offset
		if !lexical {
			offset = m.skipSpaces(offset)
		}
		n := m.matchToken(e.String, offset)
		if n < 0 {
			return noMatch
		}
		return offset - start + n

	case *ebnf.Range:
		start := offset
		if !lexical {
			offset = m.skipSpaces(offset)
		}
		n := m.matchRange(e.Begin.String, e.End.String, offset)
		if n < 0 {
			return noMatch
		}
		return offset - start + n

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			n := m.match(item, pos, lexical)
			if n < 0 {
				return noMatch
			}
			pos += n
		}
		return pos - offset

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := m.match(alt, offset, lexical); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			n := m.match(e.Body, pos, lexical)
			if n <= 0 {
				break
			}
			pos += n
		}
		return pos - offset

	case *ebnf.Option:
		if n := m.match(e.Body, offset, lexical); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return m.match(e.Body, offset, lexical)

	case *ebnf.Name:
		start := offset
		if !lexical && isLexical(e.String) {
			offset = m.skipSpaces(offset)
		}
		n := m.matchName(e.String, offset)
		if n < 0 {
			return noMatch
		}
		return offset - start + n

	default:
		return noMatch
	}
}

func (m *Matcher) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := m.memo[key]; ok {
		return result
	}

	// Left recursion at the same offset cannot make progress.
	if m.visiting[key] {
		return noMatch
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = noMatch
		return noMatch
	}

	m.visiting[key] = true
	result := m.match(prod.Expr, offset, isLexical(name))
	delete(m.visiting, key)

	m.memo[key] = result
	return result
}

func (m *Matcher) matchToken(token string, offset int) int {
	if offset+len(token) > len(m.input) {
		return noMatch
	}
	if string(m.input[offset:offset+len(token)]) == token {
		return len(token)
	}
	return noMatch
}

func (m *Matcher) matchRange(begin, end string, offset int) int {
	if offset >= len(m.input) || len(begin) != 1 || len(end) != 1 {
		return noMatch
	}
	ch := m.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return noMatch
}
