package fixedpoint

// This file implements the overflow predicates from the original
// fixed_point.hpp's addition_overflow/subtraction_overflow/
// multiplication_overflow/division_overflow friend functions, adapted
// to Go's lack of a native signed 128-bit type by routing width-specific
// bound checks through the Coefficient interface's Cmp/Sign rather than
// operator comparisons.

// boundsOf returns the representation's two's complement minimum and
// maximum, used by every predicate below.
func boundsOf[R Coefficient[R]]() (min, max R) {
	var zero R
	switch any(zero).(type) {
	case I32:
		return any(MinI32).(R), any(MaxI32).(R)
	case I64:
		return any(MinI64).(R), any(MaxI64).(R)
	case I128:
		return any(MinI128).(R), any(MaxI128).(R)
	default:
		panic("fixedpoint: unsupported coefficient type")
	}
}

// AdditionOverflow reports whether lhs + rhs would overflow R. Mirrors
// addition_overflow: overflow can only happen when both operands share
// a sign, and the result would have to cross the bound on that side.
func AdditionOverflow[R Coefficient[R]](lhs, rhs R) bool {
	min, max := boundsOf[R]()
	switch {
	case rhs.Sign() > 0:
		return lhs.Cmp(max.Sub(rhs)) > 0
	case rhs.Sign() < 0:
		return lhs.Cmp(min.Sub(rhs)) < 0
	default:
		return false
	}
}

// SubtractionOverflow reports whether lhs - rhs would overflow R.
// Mirrors subtraction_overflow.
func SubtractionOverflow[R Coefficient[R]](lhs, rhs R) bool {
	min, max := boundsOf[R]()
	switch {
	case rhs.Sign() < 0:
		return lhs.Cmp(max.Add(rhs)) > 0
	case rhs.Sign() > 0:
		return lhs.Cmp(min.Add(rhs)) < 0
	default:
		return false
	}
}

// MultiplicationOverflow reports whether lhs * rhs would overflow R.
// Mirrors multiplication_overflow's four-way split on rhs exactly: the
// rhs == -1 case is singled out because min / -1 is itself the one
// division that overflows, so it cannot share the rhs < -1 branch's
// min/rhs comparison.
func MultiplicationOverflow[R Coefficient[R]](lhs, rhs R) bool {
	min, max := boundsOf[R]()
	switch {
	case rhs.Sign() > 0:
		return lhs.Cmp(max.Quo(rhs)) > 0 || lhs.Cmp(min.Quo(rhs)) < 0
	case rhs.Cmp(fromInt[R](-1)) == 0:
		return lhs.Cmp(min) == 0
	case rhs.Sign() < 0:
		return lhs.Cmp(min.Quo(rhs)) > 0 || lhs.Cmp(max.Quo(rhs)) < 0
	default:
		return false
	}
}

// DivisionOverflow reports whether lhs / rhs would overflow R. The only
// overflowing division in a two's complement representation is
// min / -1, since -min does not fit (mirrors division_overflow).
func DivisionOverflow[R Coefficient[R]](lhs, rhs R) bool {
	min, _ := boundsOf[R]()
	return lhs.Cmp(min) == 0 && rhs.Cmp(fromInt[R](-1)) == 0
}
