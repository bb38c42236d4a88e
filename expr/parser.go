package expr

// DefaultMaxDepth bounds parenthesis nesting unless WithMaxDepth overrides it.
const DefaultMaxDepth = 256

type Option func(*Parser)

// WithFile sets the file name reported in error positions.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithStartLine sets the line number reported in error positions.
func WithStartLine(line int) Option {
	return func(p *Parser) {
		p.startLine = line
	}
}

// AllowTrailingInput disables the end-of-input check. The longest valid
// prefix is evaluated and the rest is ignored.
func AllowTrailingInput() Option {
	return func(p *Parser) {
		p.allowTrailing = true
	}
}

// WithMaxDepth limits how many parentheses may be open at once.
// Zero or a negative value removes the limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth < 0 {
			depth = 0
		}
		p.maxDepth = depth
	}
}

// Parser holds evaluation settings. It keeps no per-parse state, so one
// Parser may evaluate any number of inputs.
type Parser struct {
	file          string
	startLine     int
	allowTrailing bool
	maxDepth      int
}

func New(opts ...Option) *Parser {
	p := &Parser{
		startLine: 1,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Outcome is either a Value or an Err. Consumed is the number of bytes of
// input the parser advanced over.
type Outcome struct {
	Value    int64
	Err      *Error
	Consumed int
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Result converts the outcome into the usual value, error pair.
func (o Outcome) Result() (int64, error) {
	if o.Err != nil {
		return 0, o.Err
	}
	return o.Value, nil
}

// AllowsTrailingInput reports whether the end-of-input check is disabled.
func (p *Parser) AllowsTrailingInput() bool {
	return p.allowTrailing
}

func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

// Evaluate parses src as a single expression and computes its value.
func (p *Parser) Evaluate(src string) Outcome {
	s := &state{
		src:      src,
		file:     p.file,
		line:     p.startLine,
		maxDepth: p.maxDepth,
	}
	s.expression()
	if !p.allowTrailing {
		s.endOfInput()
	}
	return s.outcome()
}

// Evaluate is shorthand for New(opts...).Evaluate(src).Result().
func Evaluate(src string, opts ...Option) (int64, error) {
	return New(opts...).Evaluate(src).Result()
}

func (s *state) expression() {
	s.term()
	for !s.failed() {
		s.skipWhitespace()
		op := s.current()
		if op != '+' && op != '-' {
			return
		}
		lhs := s.value
		at := s.pos
		s.advance()
		s.term()
		if s.failed() {
			return
		}
		s.apply(op, lhs, s.value, at)
	}
}

func (s *state) term() {
	s.factor()
	for !s.failed() {
		s.skipWhitespace()
		op := s.current()
		if op != '*' && op != '/' {
			return
		}
		lhs := s.value
		at := s.pos
		s.advance()
		s.factor()
		if s.failed() {
			return
		}
		s.apply(op, lhs, s.value, at)
	}
}

func (s *state) factor() {
	s.skipWhitespace()
	switch c := s.current(); {
	case isDigit(c):
		s.number()
	case c == '(':
		s.group()
	default:
		s.fail(ErrExpectedNumber, s.pos)
	}
}

// number accumulates a decimal literal. Leading zeros fall out of the
// accumulation, so "007" is 7.
func (s *state) number() {
	start := s.pos
	var v int64
	for isDigit(s.current()) {
		d := int64(s.current() - '0')
		if v > (maxInt64-d)/10 {
			s.fail(ErrNumericOverflow, start)
			return
		}
		v = v*10 + d
		s.advance()
	}
	s.value = v
}

func (s *state) group() {
	open := s.pos
	if s.maxDepth > 0 && s.depth >= s.maxDepth {
		s.fail(ErrNestingTooDeep, open)
		return
	}
	s.advance()
	s.depth++
	s.expression()
	s.depth--
	if s.failed() {
		return
	}
	s.skipWhitespace()
	if s.current() != ')' {
		s.fail(ErrExpectedClosingParen, s.pos)
		return
	}
	s.advance()
}

func (s *state) endOfInput() {
	if s.failed() {
		return
	}
	s.skipWhitespace()
	if !s.atEnd() {
		s.fail(ErrTrailingInput, s.pos)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
