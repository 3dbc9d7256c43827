package signed

// intRules contains the sign rules for signed integers. T must be in the
// FamilySigned family; use Ints or For rather than instantiating this
// directly.
type intRules[T Number] struct{}

func (intRules[T]) Family() Family { return FamilySigned }

// Abs returns the absolute value of x.
//
// The absolute value of the minimum value of T can not be represented, so
// Abs wraps and returns x unchanged in that case (-math.MinInt8 == math.MinInt8).
// Use CheckedAbs if that matters.
func (r intRules[T]) Abs(x T) T {
	if r.IsNegative(x) {
		return -x
	}
	return x
}

func (intRules[T]) AbsSub(x, y T) T {
	if x <= y {
		return 0
	}
	return x - y
}

// Signum returns 1 if x > 0, -1 if x < 0 and 0 if x == 0.
func (intRules[T]) Signum(x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		// T's type set includes unsigned types, so -1 can't be a constant here:
		one := T(1)
		return -one
	}
	return 0
}

func (intRules[T]) IsPositive(x T) bool { return x > 0 }
func (intRules[T]) IsNegative(x T) bool { return x < 0 }

// uintRules contains the sign rules for unsigned integers, which are never
// negative.
type uintRules[T Number] struct{}

func (uintRules[T]) Family() Family { return FamilyUnsigned }

func (uintRules[T]) Abs(x T) T { return x }

func (uintRules[T]) AbsSub(x, y T) T {
	if x <= y {
		return 0
	}
	return x - y
}

// Signum returns 1 if x > 0, otherwise 0.
func (uintRules[T]) Signum(x T) T {
	if x > 0 {
		return 1
	}
	return 0
}

func (uintRules[T]) IsPositive(x T) bool { return x > 0 }
func (uintRules[T]) IsNegative(x T) bool { return false }

// CheckedAbs returns the absolute value of x. If x is the minimum value of T,
// the result overflows and is the same as x; inRange is set to false.
func CheckedAbs[T Signed](x T) (v T, inRange bool) {
	if x >= 0 {
		return x, true
	}
	v = -x
	return v, v >= 0
}
