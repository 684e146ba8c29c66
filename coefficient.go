package fixedpoint

// Coefficient is implemented by the three representation widths this
// package supports: [I32], [I64], and [I128]. It is the F-bounded
// constraint that lets [FixedPoint] and the free functions in this
// package be generic over representation width while each width keeps
// its own non-generic, dense-switch power-of-base kernels on the hot
// path (see integer.go, integer64.go, integer128.go).
//
// T is always the implementing type itself; Coefficient[I64] is only
// ever satisfied by I64. This is the same self-referential pattern
// constraints like [cmp.Ordered] use to let generic code call an
// operator-shaped method set on its own type parameter.
type Coefficient[T any] interface {
	comparable

	// IsZero reports whether the coefficient is the additive identity.
	IsZero() bool

	// Sign returns -1, 0, or 1 according to the coefficient's sign.
	Sign() int

	// Neg returns -c. Neg is only well-defined when c is not the
	// representation's minimum value; callers that need the overflow
	// case covered use [SubtractionOverflow] first.
	Neg() T

	// Add returns c + other without overflow checking.
	Add(other T) T

	// Sub returns c - other without overflow checking.
	Sub(other T) T

	// Mul returns c * other without overflow checking.
	Mul(other T) T

	// Quo returns c / other truncated toward zero. Quo panics if other
	// is zero.
	Quo(other T) T

	// Rem returns c % other, the truncated-division remainder. Rem
	// panics if other is zero.
	Rem(other T) T

	// Cmp returns -1, 0, or 1 according to whether c is less than,
	// equal to, or greater than other.
	Cmp(other T) int

	// Int64 converts the coefficient to an int64, truncating silently
	// if the value does not fit.
	Int64() int64

	// String renders the coefficient in base 10, the only base a
	// coefficient's own textual form supports regardless of the
	// FixedPoint's Radix parameter (see FixedPoint.String).
	String() string
}
