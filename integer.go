package fixedpoint

import "strconv"

// I32 is a 32-bit two's complement representation width, the narrowest
// of the three this package supports. It is appropriate for scales that
// never exceed 9 decimal digits (exp10 0 through 9 is the densest range
// that fits in an int32 without already overflowing the power itself).
type I32 int32

// MinI32 and MaxI32 are the two's complement bounds of I32, used by the
// overflow predicates in overflow.go.
const (
	MinI32 I32 = -1 << 31
	MaxI32 I32 = 1<<31 - 1
)

func (c I32) IsZero() bool     { return c == 0 }
func (c I32) Sign() int        { return sign32(int32(c)) }
func (c I32) Neg() I32         { return -c }
func (c I32) Add(other I32) I32 { return c + other }
func (c I32) Sub(other I32) I32 { return c - other }
func (c I32) Mul(other I32) I32 { return c * other }
func (c I32) Quo(other I32) I32 { return c / other }
func (c I32) Rem(other I32) I32 { return c % other }
func (c I32) Int64() int64     { return int64(c) }
func (c I32) String() string   { return strconv.FormatInt(int64(c), 10) }

func (c I32) Cmp(other I32) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

func sign32(v int32) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// dividePower10_32bit divides value by 10^exp10. Mirrors the original
// cuDF divide_power10<int32_t> switch: a dense literal switch rather than
// an array lookup or a call through pow, so the compiler can turn each
// case into a multiply-by-reciprocal instead of a real division.
func dividePower10_32bit(value int32, exp10 int) int32 {
	switch exp10 {
	case 0:
		return value
	case 1:
		return value / 10
	case 2:
		return value / 100
	case 3:
		return value / 1000
	case 4:
		return value / 10000
	case 5:
		return value / 100000
	case 6:
		return value / 1000000
	case 7:
		return value / 10000000
	case 8:
		return value / 100000000
	case 9:
		return value / 1000000000
	default:
		return 0
	}
}

// multiplyPower10_32bit multiplies value by 10^exp10, following the same
// dense-switch shape as dividePower10_32bit.
func multiplyPower10_32bit(value int32, exp10 int) int32 {
	switch exp10 {
	case 0:
		return value
	case 1:
		return value * 10
	case 2:
		return value * 100
	case 3:
		return value * 1000
	case 4:
		return value * 10000
	case 5:
		return value * 100000
	case 6:
		return value * 1000000
	case 7:
		return value * 10000000
	case 8:
		return value * 100000000
	case 9:
		return value * 1000000000
	default:
		return 0
	}
}
