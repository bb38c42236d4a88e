package expr

import "math"

const (
	maxInt64 = math.MaxInt64
	minInt64 = math.MinInt64
)

// apply combines lhs and rhs with op and stores the result. Faults are
// reported at the operator offset.
func (s *state) apply(op byte, lhs, rhs int64, at int) {
	var (
		v    int64
		kind ErrorKind
	)
	switch op {
	case '+':
		v, kind = add(lhs, rhs)
	case '-':
		v, kind = sub(lhs, rhs)
	case '*':
		v, kind = mul(lhs, rhs)
	case '/':
		v, kind = div(lhs, rhs)
	}
	if kind != 0 {
		s.fail(kind, at)
		return
	}
	s.value = v
}

func add(a, b int64) (int64, ErrorKind) {
	if (b > 0 && a > maxInt64-b) || (b < 0 && a < minInt64-b) {
		return 0, ErrNumericOverflow
	}
	return a + b, 0
}

func sub(a, b int64) (int64, ErrorKind) {
	if (b < 0 && a > maxInt64+b) || (b > 0 && a < minInt64+b) {
		return 0, ErrNumericOverflow
	}
	return a - b, 0
}

func mul(a, b int64) (int64, ErrorKind) {
	if a == 0 || b == 0 {
		return 0, 0
	}
	if (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return 0, ErrNumericOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrNumericOverflow
	}
	return c, 0
}

// div truncates toward zero.
func div(a, b int64) (int64, ErrorKind) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == minInt64 && b == -1 {
		return 0, ErrNumericOverflow
	}
	return a / b, 0
}
