package signed

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

type (
	celsius  float32
	distance int16
	userID   uint64
)

func familyCase[T Number](expected Family) func(t *testing.T) {
	return func(t *testing.T) {
		tt := assert.WrapTB(t)
		tt.MustEqual(expected, FamilyOf[T]())
		tt.MustEqual(expected, For[T]().Family())
	}
}

func TestFamilyOf(t *testing.T) {
	for _, tc := range []struct {
		name string
		test func(t *testing.T)
	}{
		{"int", familyCase[int](FamilySigned)},
		{"int8", familyCase[int8](FamilySigned)},
		{"int16", familyCase[int16](FamilySigned)},
		{"int32", familyCase[int32](FamilySigned)},
		{"int64", familyCase[int64](FamilySigned)},
		{"uint", familyCase[uint](FamilyUnsigned)},
		{"uint8", familyCase[uint8](FamilyUnsigned)},
		{"uint16", familyCase[uint16](FamilyUnsigned)},
		{"uint32", familyCase[uint32](FamilyUnsigned)},
		{"uint64", familyCase[uint64](FamilyUnsigned)},
		{"uintptr", familyCase[uintptr](FamilyUnsigned)},
		{"float32", familyCase[float32](FamilyFloat)},
		{"float64", familyCase[float64](FamilyFloat)},

		{"celsius", familyCase[celsius](FamilyFloat)},
		{"distance", familyCase[distance](FamilySigned)},
		{"userID", familyCase[userID](FamilyUnsigned)},
	} {
		t.Run(tc.name, tc.test)
	}
}

func TestFamilyString(t *testing.T) {
	for idx, tc := range []struct {
		f   Family
		out string
	}{
		{FamilyUnsigned, "unsigned"},
		{FamilySigned, "signed"},
		{FamilyFloat, "float"},
		{0, "invalid"},
		{99, "invalid"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.f.String())
		})
	}
}

func TestFamilyTypes(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(FamilySigned, Ints[int32]{}.Family())
	tt.MustEqual(FamilyUnsigned, Uints[uint16]{}.Family())
	tt.MustEqual(FamilyFloat, Floats[float32]{}.Family())
}

func TestNamedTypes(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(celsius(4), Abs(celsius(-4)))
	tt.MustEqual(celsius(-1), Signum(celsius(negZero)))
	tt.MustAssert(IsNegative(celsius(negZero)))

	tt.MustEqual(distance(7), Abs(distance(-7)))
	tt.MustEqual(distance(0), AbsSub(distance(-7), distance(3)))
	tt.MustEqual(distance(10), AbsSub(distance(3), distance(-7)))

	tt.MustEqual(userID(1), Signum(userID(12)))
	tt.MustEqual(userID(0), AbsSub(userID(1), userID(2)))
}
