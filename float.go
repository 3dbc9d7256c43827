package signed

import (
	"math"
	"unsafe"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// floatRules contains the sign rules for IEEE-754 floats. T must be in the
// FamilyFloat family; use Floats or For rather than instantiating this
// directly.
type floatRules[T Number] struct{}

func (floatRules[T]) Family() Family { return FamilyFloat }

// Abs clears the sign bit of x. All other bits, including the payload of a
// NaN, are left alone.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(±0) = +0
//	Abs(NaN) = NaN
func (floatRules[T]) Abs(x T) T { return fabs(x) }

// AbsSub returns x-y if x > y, otherwise +0. This is C's fdim; it differs
// from math.Dim, which returns NaN for Dim(+Inf, +Inf) and Dim(-Inf, -Inf).
//
// Special cases are:
//
//	AbsSub(x, NaN) = AbsSub(NaN, x) = NaN
//	AbsSub(+Inf, +Inf) = +0
//	AbsSub(-Inf, -Inf) = +0
func (floatRules[T]) AbsSub(x, y T) T {
	if x != x {
		return x
	} else if y != y {
		return y
	} else if x > y {
		return x - y
	}
	return 0
}

// Signum returns 1 with the sign of x. Zeros are signed too, so
// Signum(+0) == +1 and Signum(-0) == -1; Signum never returns 0.
//
// Signum(NaN) returns the same NaN.
func (floatRules[T]) Signum(x T) T {
	if x != x { // x != x == isnan
		return x
	}
	return copysign(1, x)
}

// IsPositive reports whether x > 0 or x is +0. 1/+0 is +Inf and 1/-0 is -Inf,
// which is the only way to tell the zeros apart by comparison.
func (floatRules[T]) IsPositive(x T) bool { return x > 0 || 1/x == T(posInf) }

// IsNegative reports whether x < 0 or x is -0.
func (floatRules[T]) IsNegative(x T) bool { return x < 0 || 1/x == T(negInf) }

// fabs and copysign avoid float32 -> float64 -> float32 round trips, which
// quiet signalling NaNs on most hardware. There is no float32 equivalent of
// math.Abs or math.Copysign, so the sign bit is handled directly.

func fabs[T Number](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math.Float32frombits(math.Float32bits(float32(x)) &^ signBit32))
	}
	return T(math.Abs(float64(x)))
}

func copysign[T Number](mag, sign T) T {
	if unsafe.Sizeof(mag) == 4 {
		m := math.Float32bits(float32(mag)) &^ signBit32
		s := math.Float32bits(float32(sign)) & signBit32
		return T(math.Float32frombits(m | s))
	}
	return T(math.Copysign(float64(mag), float64(sign)))
}
