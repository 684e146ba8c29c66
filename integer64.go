package fixedpoint

import "strconv"

// I64 is a 64-bit two's complement representation width, supporting
// scales up to 19 decimal digits (10^19 is the largest power of ten
// whose unsigned form still fits in 64 bits, one digit past the largest
// signed int64 can hold as a plain coefficient value).
type I64 int64

// MinI64 and MaxI64 are the two's complement bounds of I64.
const (
	MinI64 I64 = -1 << 63
	MaxI64 I64 = 1<<63 - 1
)

func (c I64) IsZero() bool     { return c == 0 }
func (c I64) Sign() int        { return sign64(int64(c)) }
func (c I64) Neg() I64         { return -c }
func (c I64) Add(other I64) I64 { return c + other }
func (c I64) Sub(other I64) I64 { return c - other }
func (c I64) Mul(other I64) I64 { return c * other }
func (c I64) Quo(other I64) I64 { return c / other }
func (c I64) Rem(other I64) I64 { return c % other }
func (c I64) Int64() int64     { return int64(c) }
func (c I64) String() string   { return strconv.FormatInt(int64(c), 10) }

func (c I64) Cmp(other I64) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

func sign64(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// tenTo19 is 10^19, one power past what a signed int64 coefficient can
// represent; multiplyPower10_64bit's case 19 computes through an
// unsigned multiply and relies on the implicit wraparound back to int64,
// as the original C++ kernel's case 19 does with an explicit unsigned
// literal (10000000000000000000ULL). dividePower10_64bit's case 19
// divides the magnitude instead, so a negative value is not read as a
// huge unsigned one.
const tenTo19 uint64 = 10000000000000000000

// dividePower10_64bit divides value by 10^exp10 for exp10 in [0, 19].
// One dense literal switch, never merged with the 32-bit or 128-bit
// variants and never rewritten as a table lookup: the switch form is
// what lets the compiler replace each division with a multiply by the
// reciprocal, and an array lookup on the divisor would force a real
// division back in.
func dividePower10_64bit(value int64, exp10 int) int64 {
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
	case 10:
		return value / 10000000000
	case 11:
		return value / 100000000000
	case 12:
		return value / 1000000000000
	case 13:
		return value / 10000000000000
	case 14:
		return value / 100000000000000
	case 15:
		return value / 1000000000000000
	case 16:
		return value / 10000000000000000
	case 17:
		return value / 100000000000000000
	case 18:
		return value / 1000000000000000000
	case 19:
		if value < 0 {
			return -int64((^uint64(value) + 1) / tenTo19)
		}
		return int64(uint64(value) / tenTo19)
	default:
		return 0
	}
}

// multiplyPower10_64bit multiplies value by 10^exp10 for exp10 in [0, 19].
func multiplyPower10_64bit(value int64, exp10 int) int64 {
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
	case 10:
		return value * 10000000000
	case 11:
		return value * 100000000000
	case 12:
		return value * 1000000000000
	case 13:
		return value * 10000000000000
	case 14:
		return value * 100000000000000
	case 15:
		return value * 1000000000000000
	case 16:
		return value * 10000000000000000
	case 17:
		return value * 100000000000000000
	case 18:
		return value * 1000000000000000000
	case 19:
		return int64(uint64(value) * tenTo19)
	default:
		return 0
	}
}
