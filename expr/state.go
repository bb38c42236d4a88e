package expr

// state is owned by exactly one Evaluate call.
type state struct {
	src      string
	pos      int
	file     string
	line     int
	depth    int
	maxDepth int
	value    int64
	err      *Error
}

func (s *state) current() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *state) advance() {
	if s.pos < len(s.src) {
		s.pos++
	}
}

func (s *state) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *state) position(offset int) Position {
	return Position{
		File:   s.file,
		Offset: offset,
		Line:   s.line,
		Column: offset + 1,
	}
}

// fail records kind at offset unless an error is already recorded.
func (s *state) fail(kind ErrorKind, offset int) {
	if s.err != nil {
		return
	}
	e := &Error{Kind: kind, Pos: s.position(offset)}
	if kind.Class() == "SyntaxError" && offset < len(s.src) {
		e.Got = s.src[offset : offset+1]
	}
	s.err = e
}

func (s *state) failed() bool {
	return s.err != nil
}

func (s *state) skipWhitespace() {
	for s.current() == ' ' {
		s.advance()
	}
}

func (s *state) outcome() Outcome {
	if s.err != nil {
		return Outcome{Err: s.err, Consumed: s.pos}
	}
	return Outcome{Value: s.value, Consumed: s.pos}
}
