/*
Package signed provides a uniform set of sign-related operations over Go's
primitive numeric types: Abs, AbsSub, Signum, IsPositive and IsNegative.

Every numeric type belongs to one of three families, and each family has its
own rules:

	FamilyUnsigned  uint, uint8, uint16, uint32, uint64, uintptr
	FamilySigned    int, int8, int16, int32, int64
	FamilyFloat     float32, float64

Named types whose underlying type is one of the above belong to the same
family.

Simple example:

	fmt.Println(signed.Abs(-1))                      // 1
	fmt.Println(signed.AbsSub(-1.0, -2.0))           // 1
	fmt.Println(signed.Signum(0.0))                  // 1
	fmt.Println(signed.Signum(math.Copysign(0, -1))) // -1

Generic code that wants the whole contract for a type can ask for it once:

	ops := signed.For[float32]()
	ops.IsNegative(float32(math.Copysign(0, -1))) // true

Floats follow IEEE-754: NaN propagates through Abs, AbsSub and Signum, and
comparisons against NaN in IsPositive and IsNegative report false. Signum on a
float never returns zero; +0.0 maps to +1 and -0.0 maps to -1. Use Sign if a
three-way -1/0/+1 result is wanted.

Abs on the minimum value of a signed integer type overflows and returns the
same value, as it does with the unary minus operator. CheckedAbs reports this
case.

All operations are pure and allocation-free, and are safe for concurrent use.
*/
package signed
