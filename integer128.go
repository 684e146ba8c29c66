package fixedpoint

import (
	"math/big"
	"math/bits"
)

// I128 is a 128-bit two's complement representation width, the widest
// this package supports, for scales up to 38 decimal digits. Go has no
// native 128-bit integer type, so I128 stores its value as a signed high
// word and an unsigned low word, the same hi/lo split the pack's own
// fast/slow-path coefficients (govalues/decimal's fint/bint pair) use to
// keep cheap operations cheap: Add and Sub go through math/bits directly,
// while Mul, Quo, and Rem fall back to math/big, which is already the
// pack's vocabulary for anything wider than a machine word.
type I128 struct {
	hi int64
	lo uint64
}

// MinI128 and MaxI128 are the two's complement bounds of I128.
var (
	MinI128 = I128{hi: -1 << 63, lo: 0}
	MaxI128 = I128{hi: 1<<63 - 1, lo: ^uint64(0)}
)

// I128FromInt64 widens a signed 64-bit value to I128, sign-extending the
// high word.
func I128FromInt64(v int64) I128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return I128{hi: hi, lo: uint64(v)}
}

func (c I128) IsZero() bool { return c.hi == 0 && c.lo == 0 }

func (c I128) Sign() int {
	switch {
	case c.hi < 0:
		return -1
	case c.hi == 0 && c.lo == 0:
		return 0
	default:
		return 1
	}
}

func (c I128) Neg() I128 {
	lo, borrow := bits.Sub64(0, c.lo, 0)
	hi, _ := bits.Sub64(0, uint64(c.hi), borrow)
	return I128{hi: int64(hi), lo: lo}
}

func (c I128) Add(other I128) I128 {
	lo, carry := bits.Add64(c.lo, other.lo, 0)
	hi, _ := bits.Add64(uint64(c.hi), uint64(other.hi), carry)
	return I128{hi: int64(hi), lo: lo}
}

func (c I128) Sub(other I128) I128 {
	lo, borrow := bits.Sub64(c.lo, other.lo, 0)
	hi, _ := bits.Sub64(uint64(c.hi), uint64(other.hi), borrow)
	return I128{hi: int64(hi), lo: lo}
}

func (c I128) Mul(other I128) I128 {
	return fromBig(c.toBig().Mul(c.toBig(), other.toBig()))
}

func (c I128) Quo(other I128) I128 {
	if other.IsZero() {
		panic("fixedpoint: division by zero")
	}
	q := new(big.Int)
	q.Quo(c.toBig(), other.toBig())
	return fromBig(q)
}

func (c I128) Rem(other I128) I128 {
	if other.IsZero() {
		panic("fixedpoint: division by zero")
	}
	r := new(big.Int)
	r.Rem(c.toBig(), other.toBig())
	return fromBig(r)
}

// Shr returns c arithmetically shifted right by n bits (0 <= n), filling
// the vacated high bits with copies of the sign bit so the result floors
// toward negative infinity the same way a native signed right shift does,
// unlike Quo by a power of two which truncates toward zero.
func (c I128) Shr(n int) I128 {
	switch {
	case n <= 0:
		return c
	case n >= 128:
		if c.hi < 0 {
			return I128{hi: -1, lo: ^uint64(0)}
		}
		return I128{}
	case n < 64:
		lo := (c.lo >> uint(n)) | (uint64(c.hi) << uint(64-n))
		hi := c.hi >> uint(n)
		return I128{hi: hi, lo: lo}
	default:
		lo := uint64(c.hi >> uint(n-64))
		hi := int64(0)
		if c.hi < 0 {
			hi = -1
		}
		return I128{hi: hi, lo: lo}
	}
}

func (c I128) Cmp(other I128) int {
	switch {
	case c.hi != other.hi:
		if c.hi < other.hi {
			return -1
		}
		return 1
	case c.lo < other.lo:
		return -1
	case c.lo > other.lo:
		return 1
	default:
		return 0
	}
}

// Int64 returns the low 64 bits reinterpreted as a signed value,
// truncating silently if c does not fit in an int64.
func (c I128) Int64() int64 { return int64(c.lo) }

func (c I128) String() string { return c.toBig().String() }

// toBig converts c to an exact math/big representation, used only by
// the slow paths (Mul, Quo, Rem, String): the cheap paths (Add, Sub,
// Neg, Cmp) never allocate.
func (c I128) toBig() *big.Int {
	v := new(big.Int).SetUint64(c.lo)
	hi := new(big.Int).SetInt64(c.hi)
	hi.Lsh(hi, 64)
	v.Add(v, hi)
	return v
}

// fromBig narrows an arbitrary-precision value back down to I128,
// wrapping silently on overflow, mirroring the silent-wraparound
// behavior of I32/I64's native Go arithmetic.
func fromBig(v *big.Int) I128 {
	mask := new(big.Int).Lsh(big.NewInt(1), 128)
	mask.Sub(mask, big.NewInt(1))
	u := new(big.Int).And(v, mask)
	lo := new(big.Int).And(u, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(u, 64)
	result := I128{lo: lo.Uint64(), hi: int64(hi.Uint64())}
	return result
}

// pow10_128bit holds 10^20 through 10^38 as precomputed hi/lo pairs:
// values beyond 10^19 no longer fit in a uint64 low word alone, so the
// dense switches below spell each one out as a literal I128 rather than
// compute it at runtime.
var (
	pow10e20 = I128{hi: 5, lo: 7766279631452241920}
	pow10e21 = I128{hi: 54, lo: 3875820019684212736}
	pow10e22 = I128{hi: 542, lo: 1864712049423024128}
	pow10e23 = I128{hi: 5421, lo: 200376420520689664}
	pow10e24 = I128{hi: 54210, lo: 2003764205206896640}
	pow10e25 = I128{hi: 542101, lo: 1590897978359414784}
	pow10e26 = I128{hi: 5421010, lo: 15908979783594147840}
	pow10e27 = I128{hi: 54210108, lo: 11515845246265065472}
	pow10e28 = I128{hi: 542101086, lo: 4477988020393345024}
	pow10e29 = I128{hi: 5421010862, lo: 7886392056514347008}
	pow10e30 = I128{hi: 54210108624, lo: 5076944270305263616}
	pow10e31 = I128{hi: 542101086242, lo: 13875954555633532928}
	pow10e32 = I128{hi: 5421010862427, lo: 9632337040368467968}
	pow10e33 = I128{hi: 54210108624275, lo: 4089650035136921600}
	pow10e34 = I128{hi: 542101086242752, lo: 4003012203950112768}
	pow10e35 = I128{hi: 5421010862427522, lo: 3136633892082024448}
	pow10e36 = I128{hi: 54210108624275221, lo: 12919594847110692864}
	pow10e37 = I128{hi: 542101086242752217, lo: 68739955140067328}
	pow10e38 = I128{hi: 5421010862427522170, lo: 687399551400673280}
)

// dividePower10_128bit divides value by 10^exp10 for exp10 in [0, 38].
// Marked go:noinline like the original cuDF divide_power10<__int128_t>:
// the 128-bit case is bulky enough that inlining it at every call site
// would bloat callers for no benefit, unlike the 32- and 64-bit cases.
//
//go:noinline
func dividePower10_128bit(value I128, exp10 int) I128 {
	switch exp10 {
	case 0:
		return value
	case 1:
		return value.Quo(I128FromInt64(10))
	case 2:
		return value.Quo(I128FromInt64(100))
	case 3:
		return value.Quo(I128FromInt64(1000))
	case 4:
		return value.Quo(I128FromInt64(10000))
	case 5:
		return value.Quo(I128FromInt64(100000))
	case 6:
		return value.Quo(I128FromInt64(1000000))
	case 7:
		return value.Quo(I128FromInt64(10000000))
	case 8:
		return value.Quo(I128FromInt64(100000000))
	case 9:
		return value.Quo(I128FromInt64(1000000000))
	case 10:
		return value.Quo(I128FromInt64(10000000000))
	case 11:
		return value.Quo(I128FromInt64(100000000000))
	case 12:
		return value.Quo(I128FromInt64(1000000000000))
	case 13:
		return value.Quo(I128FromInt64(10000000000000))
	case 14:
		return value.Quo(I128FromInt64(100000000000000))
	case 15:
		return value.Quo(I128FromInt64(1000000000000000))
	case 16:
		return value.Quo(I128FromInt64(10000000000000000))
	case 17:
		return value.Quo(I128FromInt64(100000000000000000))
	case 18:
		return value.Quo(I128FromInt64(1000000000000000000))
	case 19:
		return value.Quo(I128{lo: tenTo19})
	case 20:
		return value.Quo(pow10e20)
	case 21:
		return value.Quo(pow10e21)
	case 22:
		return value.Quo(pow10e22)
	case 23:
		return value.Quo(pow10e23)
	case 24:
		return value.Quo(pow10e24)
	case 25:
		return value.Quo(pow10e25)
	case 26:
		return value.Quo(pow10e26)
	case 27:
		return value.Quo(pow10e27)
	case 28:
		return value.Quo(pow10e28)
	case 29:
		return value.Quo(pow10e29)
	case 30:
		return value.Quo(pow10e30)
	case 31:
		return value.Quo(pow10e31)
	case 32:
		return value.Quo(pow10e32)
	case 33:
		return value.Quo(pow10e33)
	case 34:
		return value.Quo(pow10e34)
	case 35:
		return value.Quo(pow10e35)
	case 36:
		return value.Quo(pow10e36)
	case 37:
		return value.Quo(pow10e37)
	case 38:
		return value.Quo(pow10e38)
	default:
		return I128{}
	}
}

// multiplyPower10_128bit multiplies value by 10^exp10 for exp10 in
// [0, 38]. Same dense-switch, go:noinline shape as dividePower10_128bit.
//
//go:noinline
func multiplyPower10_128bit(value I128, exp10 int) I128 {
	switch exp10 {
	case 0:
		return value
	case 1:
		return value.Mul(I128FromInt64(10))
	case 2:
		return value.Mul(I128FromInt64(100))
	case 3:
		return value.Mul(I128FromInt64(1000))
	case 4:
		return value.Mul(I128FromInt64(10000))
	case 5:
		return value.Mul(I128FromInt64(100000))
	case 6:
		return value.Mul(I128FromInt64(1000000))
	case 7:
		return value.Mul(I128FromInt64(10000000))
	case 8:
		return value.Mul(I128FromInt64(100000000))
	case 9:
		return value.Mul(I128FromInt64(1000000000))
	case 10:
		return value.Mul(I128FromInt64(10000000000))
	case 11:
		return value.Mul(I128FromInt64(100000000000))
	case 12:
		return value.Mul(I128FromInt64(1000000000000))
	case 13:
		return value.Mul(I128FromInt64(10000000000000))
	case 14:
		return value.Mul(I128FromInt64(100000000000000))
	case 15:
		return value.Mul(I128FromInt64(1000000000000000))
	case 16:
		return value.Mul(I128FromInt64(10000000000000000))
	case 17:
		return value.Mul(I128FromInt64(100000000000000000))
	case 18:
		return value.Mul(I128FromInt64(1000000000000000000))
	case 19:
		return value.Mul(I128{lo: tenTo19})
	case 20:
		return value.Mul(pow10e20)
	case 21:
		return value.Mul(pow10e21)
	case 22:
		return value.Mul(pow10e22)
	case 23:
		return value.Mul(pow10e23)
	case 24:
		return value.Mul(pow10e24)
	case 25:
		return value.Mul(pow10e25)
	case 26:
		return value.Mul(pow10e26)
	case 27:
		return value.Mul(pow10e27)
	case 28:
		return value.Mul(pow10e28)
	case 29:
		return value.Mul(pow10e29)
	case 30:
		return value.Mul(pow10e30)
	case 31:
		return value.Mul(pow10e31)
	case 32:
		return value.Mul(pow10e32)
	case 33:
		return value.Mul(pow10e33)
	case 34:
		return value.Mul(pow10e34)
	case 35:
		return value.Mul(pow10e35)
	case 36:
		return value.Mul(pow10e36)
	case 37:
		return value.Mul(pow10e37)
	case 38:
		return value.Mul(pow10e38)
	default:
		return I128{}
	}
}
