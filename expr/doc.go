// Package expr evaluates integer arithmetic expressions with a recursive-descent
// parser.
//
// # Grammar
//
//	Expression = Term { ( "+" | "-" ) Term } .
//	Term       = Factor { ( "*" | "/" ) Factor } .
//	Factor     = number | "(" Expression ")" .
//	number     = digit { digit } .
//
// Each production is a method on a single parse state. Expression calls Term,
// Term calls Factor, and Factor calls back into Expression only through
// parentheses, so recursion depth is bounded by parenthesis nesting.
//
// Values are computed while parsing; there is no intermediate tree. Both
// operator levels fold left to right, so "8-3-2" is 3 and "8/4/2" is 1.
// Division truncates toward zero.
//
// Only the space character counts as whitespace. Tabs and newlines are not
// skipped and are reported like any other unexpected character.
//
// # Cursor
//
// The state holds a cursor into the immutable source. The cursor only moves
// forward; once a character has been consumed no production looks at it
// again.
//
// # Errors
//
// The first error recorded on the state wins. After an error every production
// returns immediately without consuming input or combining values, so the
// cursor stays where the error was detected.
//
//	SyntaxError      ErrExpectedNumber, ErrExpectedClosingParen, ErrTrailingInput
//	ArithmeticError  ErrDivisionByZero, ErrNumericOverflow
//	LimitError       ErrNestingTooDeep
//
// Every *Error unwraps to its ErrorKind, so callers can test the kind with
// errors.Is:
//
//	_, err := expr.Evaluate("1/0")
//	if errors.Is(err, expr.ErrDivisionByZero) {
//	    ...
//	}
//
// # Trailing Input
//
// By default the whole input must be consumed. "1+2)" fails with
// ErrTrailingInput. With AllowTrailingInput the longest valid prefix is
// evaluated instead and Outcome.Consumed tells how far the parser got.
//
// # Documents
//
// EvaluateDocument evaluates text holding one expression per line. Blank
// lines and lines starting with '#' are skipped. Error positions carry the
// line number of the expression they belong to.
package expr
