package expr

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ErrorKind classifies why an evaluation failed. It implements error so that
// errors.Is can match an *Error against a kind.
type ErrorKind int

const (
	ErrExpectedNumber ErrorKind = iota + 1
	ErrExpectedClosingParen
	ErrTrailingInput
	ErrDivisionByZero
	ErrNumericOverflow
	ErrNestingTooDeep
)

var errorKindNames = map[ErrorKind]string{
	ErrExpectedNumber:       "ExpectedNumber",
	ErrExpectedClosingParen: "ExpectedClosingParen",
	ErrTrailingInput:        "TrailingInput",
	ErrDivisionByZero:       "DivisionByZero",
	ErrNumericOverflow:      "NumericOverflow",
	ErrNestingTooDeep:       "NestingTooDeep",
}

var errorKindMessages = map[ErrorKind]string{
	ErrExpectedNumber:       "number was expected",
	ErrExpectedClosingParen: "closing parenthesis was expected",
	ErrTrailingInput:        "end of expression expected",
	ErrDivisionByZero:       "division by zero",
	ErrNumericOverflow:      "numeric overflow",
	ErrNestingTooDeep:       "parentheses nested too deeply",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Message returns the human readable description of the kind.
func (k ErrorKind) Message() string {
	if msg, ok := errorKindMessages[k]; ok {
		return msg
	}
	return "unknown error"
}

// Class groups kinds into SyntaxError, ArithmeticError and LimitError.
func (k ErrorKind) Class() string {
	switch k {
	case ErrExpectedNumber, ErrExpectedClosingParen, ErrTrailingInput:
		return "SyntaxError"
	case ErrDivisionByZero, ErrNumericOverflow:
		return "ArithmeticError"
	case ErrNestingTooDeep:
		return "LimitError"
	}
	return "Error"
}

func (k ErrorKind) Error() string {
	return k.Class() + ": " + k.Message()
}

// Error is a failed evaluation. Got holds the offending character for syntax
// errors and is empty at end of input.
type Error struct {
	Kind ErrorKind
	Pos  Position
	Got  string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s at %s", e.Kind.Error(), e.Pos)
	if e.Got != "" {
		msg += fmt.Sprintf(", got %q", e.Got)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}
