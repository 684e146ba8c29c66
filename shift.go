package fixedpoint

// scaleKernels bundles the two non-generic, per-width power-of-ten
// kernels a given Coefficient type provides, so shift can stay
// generic while still calling straight into the dense switches in
// integer.go, integer64.go, and integer128.go — no array lookup, no
// runtime exponentiation, exactly per the per-width kernel rule.
type scaleKernels[R any] struct {
	divide10   func(R, int) R
	multiply10 func(R, int) R
}

func kernelsFor[R Coefficient[R]]() scaleKernels[R] {
	var zero R
	switch any(zero).(type) {
	case I32:
		return scaleKernels[R]{
			divide10:   func(v R, e int) R { return any(dividePower10_32bit(int32(any(v).(I32)), e)).(R) },
			multiply10: func(v R, e int) R { return any(multiplyPower10_32bit(int32(any(v).(I32)), e)).(R) },
		}
	case I64:
		return scaleKernels[R]{
			divide10:   func(v R, e int) R { return any(dividePower10_64bit(int64(any(v).(I64)), e)).(R) },
			multiply10: func(v R, e int) R { return any(multiplyPower10_64bit(int64(any(v).(I64)), e)).(R) },
		}
	case I128:
		return scaleKernels[R]{
			divide10:   func(v R, e int) R { return any(dividePower10_128bit(any(v).(I128), e)).(R) },
			multiply10: func(v R, e int) R { return any(multiplyPower10_128bit(any(v).(I128), e)).(R) },
		}
	default:
		panic("fixedpoint: unsupported coefficient type")
	}
}

// shift applies a change in scale to value, returning value rescaled as
// if its own scale had moved by delta. A positive delta means the value
// is being rescaled to a coarser (larger) scale, which divides the
// coefficient; a negative delta moves to a finer scale, which multiplies
// it. For Base2 this is a plain bit shift; for Base10 it goes through
// the power-of-ten kernels.
func shift[R Coefficient[R], B Radix](value R, delta int) R {
	if delta == 0 {
		return value
	}
	if radixOf[B]() == 2 {
		return shiftBinary(value, delta)
	}
	k := kernelsFor[R]()
	if delta > 0 {
		return k.divide10(value, delta)
	}
	return k.multiply10(value, -delta)
}

// shiftBinary implements the Base2 side of shift. A positive delta is an
// arithmetic right shift, not a division by a power of two: the original
// detail::right_shift<Rep, Radix::BASE_2> is a real bit shift, which
// floors toward negative infinity for a negative coefficient, while Quo
// by 2^delta would truncate toward zero instead and give the wrong
// answer for exactly that case. A negative delta (multiply by a power of
// two) has no such discrepancy, so it still goes through Mul.
func shiftBinary[R Coefficient[R]](value R, delta int) R {
	if delta > 0 {
		return arithmeticShiftRight(value, delta)
	}
	return value.Mul(ipowOf[R](2, -delta))
}

// arithmeticShiftRight shifts value right by n bits, sign-extending,
// dispatching per width the same way kernelsFor does for the decimal
// kernels.
func arithmeticShiftRight[R Coefficient[R]](value R, n int) R {
	switch v := any(value).(type) {
	case I32:
		return any(I32(int32(v) >> uint(n))).(R)
	case I64:
		return any(I64(int64(v) >> uint(n))).(R)
	case I128:
		return any(v.Shr(n)).(R)
	default:
		panic("fixedpoint: unsupported coefficient type")
	}
}

// Ipow raises B to the given non-negative exponent within the
// representation R, by squaring. Both radices take this same
// multiply-by-squaring path; Base2 has no separate bit-shift shortcut.
//
// A negative exponent panics in debug builds (see assert_debug.go),
// where it is asserted explicitly; in release builds Ipow returns 1 for
// it, the same result as an exponent of 0.
func Ipow[R Coefficient[R], B Radix](exponent int) R {
	if exponent < 0 {
		assertf(false, "fixedpoint: Ipow exponent must be non-negative, got %d", exponent)
		return oneOf[R]()
	}
	return ipowOf[R](radixOf[B](), exponent)
}

func ipowOf[R Coefficient[R]](base int, exponent int) R {
	one := oneOf[R]()
	if exponent == 0 {
		return one
	}
	b := fromInt[R](base)
	result := one
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		exponent >>= 1
	}
	return result
}

func oneOf[R Coefficient[R]]() R {
	var zero R
	switch any(zero).(type) {
	case I32:
		return any(I32(1)).(R)
	case I64:
		return any(I64(1)).(R)
	case I128:
		return any(I128FromInt64(1)).(R)
	default:
		panic("fixedpoint: unsupported coefficient type")
	}
}

func fromInt[R Coefficient[R]](v int) R {
	var zero R
	switch any(zero).(type) {
	case I32:
		return any(I32(v)).(R)
	case I64:
		return any(I64(v)).(R)
	case I128:
		return any(I128FromInt64(int64(v))).(R)
	default:
		panic("fixedpoint: unsupported coefficient type")
	}
}
