package signed

// Abs returns the absolute value of x, using the rules for T's Family.
//
// Floats have their sign bit cleared and are otherwise untouched. The minimum
// value of a signed integer type overflows and is returned as-is; see
// CheckedAbs.
func Abs[T Number](x T) T {
	switch FamilyOf[T]() {
	case FamilyFloat:
		return floatRules[T]{}.Abs(x)
	case FamilySigned:
		return intRules[T]{}.Abs(x)
	default:
		return x
	}
}

// AbsSub returns the positive difference between x and y: x-y if x > y,
// otherwise 0. If T is a float and either operand is NaN, the result is NaN.
func AbsSub[T Number](x, y T) T {
	if FamilyOf[T]() == FamilyFloat {
		return floatRules[T]{}.AbsSub(x, y)
	}
	// The integer rules are the same for both families:
	if x <= y {
		return 0
	}
	return x - y
}

// Signum returns a representative of the sign of x.
//
// Integers return -1, 0 or 1. Floats return -1 or 1 according to the sign bit
// (so -0.0 gives -1) and NaN for NaN. See Sign for a three-way result that
// treats both float zeros as 0.
func Signum[T Number](x T) T {
	switch FamilyOf[T]() {
	case FamilyFloat:
		return floatRules[T]{}.Signum(x)
	case FamilySigned:
		return intRules[T]{}.Signum(x)
	default:
		return uintRules[T]{}.Signum(x)
	}
}

// IsPositive reports whether x is positive. +0.0 is positive, NaN is not.
func IsPositive[T Number](x T) bool {
	if FamilyOf[T]() == FamilyFloat {
		return floatRules[T]{}.IsPositive(x)
	}
	return x > 0
}

// IsNegative reports whether x is negative. -0.0 is negative, NaN is not.
func IsNegative[T Number](x T) bool {
	if FamilyOf[T]() == FamilyFloat {
		return floatRules[T]{}.IsNegative(x)
	}
	return x < 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0 (including -0.0) or x is NaN
//	+1 if x >  0
func Sign[T Number](x T) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
