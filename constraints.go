package signed

import "golang.org/x/exp/constraints"

// Unsigned is the type set of the Unsigned family.
type Unsigned = constraints.Unsigned

// Signed is the type set of the SignedInteger family.
type Signed = constraints.Signed

// Float is the type set of the FloatingPoint family.
type Float = constraints.Float

type Integer = constraints.Integer

// Number is any type supported by this package.
type Number interface {
	Integer | Float
}
