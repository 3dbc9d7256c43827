package signed

// Ops is the set of sign operations for a single numeric type. Use For to get
// the Ops for a type parameter, or use Ints, Uints or Floats directly when
// the family is known.
type Ops[T Number] interface {
	Family() Family

	// Abs returns the absolute value of x.
	Abs(x T) T

	// AbsSub returns the positive difference of x and y: x-y if x > y,
	// otherwise zero.
	AbsSub(x, y T) T

	// Signum returns a representative of the sign of x.
	Signum(x T) T

	// IsPositive reports whether x is greater than zero. Floats also treat
	// +0.0 as positive.
	IsPositive(x T) bool

	// IsNegative reports whether x is less than zero. Floats also treat -0.0
	// as negative.
	IsNegative(x T) bool
}

// For returns the Ops for T's Family.
func For[T Number]() Ops[T] {
	switch FamilyOf[T]() {
	case FamilyFloat:
		return floatRules[T]{}
	case FamilySigned:
		return intRules[T]{}
	default:
		return uintRules[T]{}
	}
}

// Ints implements Ops for the signed integer family.
type Ints[T Signed] struct{ intRules[T] }

// Uints implements Ops for the unsigned integer family.
type Uints[T Unsigned] struct{ uintRules[T] }

// Floats implements Ops for the floating point family.
type Floats[T Float] struct{ floatRules[T] }

var (
	_ Ops[int]     = Ints[int]{}
	_ Ops[uint]    = Uints[uint]{}
	_ Ops[float64] = Floats[float64]{}
)
