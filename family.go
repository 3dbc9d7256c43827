package signed

// Family identifies which set of sign rules applies to a numeric type.
type Family uint8

const (
	FamilyUnsigned Family = iota + 1
	FamilySigned
	FamilyFloat
)

func (f Family) String() string {
	switch f {
	case FamilyUnsigned:
		return "unsigned"
	case FamilySigned:
		return "signed"
	case FamilyFloat:
		return "float"
	default:
		return "invalid"
	}
}

// FamilyOf reports the Family of T. It works for named types as well as the
// predeclared ones, so a 'type Celsius float32' is classified as FamilyFloat.
func FamilyOf[T Number]() Family {
	// Integer division truncates, float division doesn't:
	var one T = 1
	if one/2 != 0 {
		return FamilyFloat
	}

	// Unsigned types wrap:
	var zero T
	if zero-1 < 0 {
		return FamilySigned
	}
	return FamilyUnsigned
}
