package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	signed "github.com/shabbyrobe/go-signed"
	"github.com/spf13/cobra"
)

// This prints what each operation does to the interesting values of a few
// numeric types. It's a quick way to eyeball the rules for signed zeros, NaN
// and the integer minimums without writing a test.

var defaultTypes = []string{"i8", "i64", "u8", "u64", "f32", "f64"}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cmd := newCommand(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newCommand(out io.Writer) *cobra.Command {
	var types []string
	var dump bool

	cmd := &cobra.Command{
		Use:           "signtable",
		Short:         "Print the sign rules applied to the edge values of each numeric type",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range types {
				if err := printType(out, t, dump); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.Flags().StringSliceVarP(&types, "type", "t", defaultTypes, "Types to print (i8, i64, u8, u64, f32, f64)")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump each value with spew before its row")
	return cmd
}

func printType(out io.Writer, name string, dump bool) error {
	negZero := math.Copysign(0, -1)
	nan, inf := math.NaN(), math.Inf(1)

	switch name {
	case "i8":
		return printRows(out, table[int8]{name: name, dump: dump}, []int8{math.MinInt8, -1, 0, 1, math.MaxInt8})
	case "i64":
		return printRows(out, table[int64]{name: name, dump: dump}, []int64{math.MinInt64, -1, 0, 1, math.MaxInt64})
	case "u8":
		return printRows(out, table[uint8]{name: name, dump: dump}, []uint8{0, 1, math.MaxUint8})
	case "u64":
		return printRows(out, table[uint64]{name: name, dump: dump}, []uint64{0, 1, math.MaxUint64})
	case "f32":
		return printRows(out, table[float32]{name: name, bits: 32, dump: dump}, []float32{
			float32(-inf), -1, float32(negZero), 0, 1, float32(inf), float32(nan),
		})
	case "f64":
		return printRows(out, table[float64]{name: name, bits: 64, dump: dump}, []float64{
			-inf, -1, negZero, 0, 1, inf, nan,
		})
	default:
		return fmt.Errorf("signtable: unknown type %q", name)
	}
}

type table[T signed.Number] struct {
	name string
	bits int // floats only
	dump bool
}

func (tb table[T]) format(x T) string {
	switch signed.FamilyOf[T]() {
	case signed.FamilyFloat:
		return strconv.FormatFloat(float64(x), 'g', -1, tb.bits)
	case signed.FamilySigned:
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

func printRows[T signed.Number](out io.Writer, tb table[T], vals []T) error {
	ops := signed.For[T]()
	for _, x := range vals {
		if tb.dump {
			spew.Fdump(out, x)
		}
		_, err := fmt.Fprintf(out, "%s %s abs=%s abssub0=%s signum=%s pos=%t neg=%t\n",
			tb.name,
			tb.format(x),
			tb.format(ops.Abs(x)),
			tb.format(ops.AbsSub(x, 0)),
			tb.format(ops.Signum(x)),
			ops.IsPositive(x),
			ops.IsNegative(x))
		if err != nil {
			return err
		}
	}
	return nil
}
