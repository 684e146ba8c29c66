package main

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/govalues/fixedpoint"
)

var (
	showWidth int
	showBase  int
)

var showCmd = &cobra.Command{
	Use:   "show <coefficient> <scale>",
	Short: "Construct a FixedPoint and print its coefficient, scale, and decimal string",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 0, "representation width: 32, 64, or 128 (default from config or 64)")
	showCmd.Flags().IntVar(&showBase, "base", 0, "radix: 2 or 10 (default from config or 10)")
}

// showInput is validated with go-playground/validator before any
// FixedPoint is constructed, matching the config loader's validate-then-
// use pattern for command-line input instead of the config file.
type showInput struct {
	Width int   `validate:"oneof=32 64 128"`
	Base  int   `validate:"oneof=2 10"`
	Value int64 `validate:"-"`
	Scale int32 `validate:"gte=-38,lte=38"`
}

func runShow(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parse coefficient: %w", err)
	}
	scale, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("parse scale: %w", err)
	}

	width := showWidth
	if width == 0 {
		width = defaultWidth()
	}
	base := showBase
	if base == 0 {
		base = defaultBase()
	}

	in := showInput{Width: width, Base: base, Value: value, Scale: int32(scale)}
	if err := validator.New().Struct(in); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	return showFixedPoint(cmd, in)
}

// showFixedPoint dispatches the validated, runtime (width, base) pair
// onto the six compile-time FixedPoint instantiations the spec names.
// This switch is the CLI's bridge between a flag the user chose at
// runtime and the generic type parameters the library requires at
// compile time — there is no way to hand a type parameter to a
// function dynamically, so the six cases are spelled out.
func showFixedPoint(cmd *cobra.Command, in showInput) error {
	scale := fixedpoint.Scale(in.Scale)
	switch {
	case in.Width == 32 && in.Base == 10:
		printDecimal(cmd, fixedpoint.NewFromScaledInteger[fixedpoint.I32, fixedpoint.Base10](fixedpoint.ScaledInteger[fixedpoint.I32]{Value: fixedpoint.I32(in.Value), Scale: scale}))
	case in.Width == 64 && in.Base == 10:
		printDecimal(cmd, fixedpoint.NewFromScaledInteger[fixedpoint.I64, fixedpoint.Base10](fixedpoint.ScaledInteger[fixedpoint.I64]{Value: fixedpoint.I64(in.Value), Scale: scale}))
	case in.Width == 128 && in.Base == 10:
		printDecimal(cmd, fixedpoint.NewFromScaledInteger[fixedpoint.I128, fixedpoint.Base10](fixedpoint.ScaledInteger[fixedpoint.I128]{Value: fixedpoint.I128FromInt64(in.Value), Scale: scale}))
	case in.Width == 32 && in.Base == 2:
		printBinary(cmd, fixedpoint.NewFromScaledInteger[fixedpoint.I32, fixedpoint.Base2](fixedpoint.ScaledInteger[fixedpoint.I32]{Value: fixedpoint.I32(in.Value), Scale: scale}))
	case in.Width == 64 && in.Base == 2:
		printBinary(cmd, fixedpoint.NewFromScaledInteger[fixedpoint.I64, fixedpoint.Base2](fixedpoint.ScaledInteger[fixedpoint.I64]{Value: fixedpoint.I64(in.Value), Scale: scale}))
	case in.Width == 128 && in.Base == 2:
		printBinary(cmd, fixedpoint.NewFromScaledInteger[fixedpoint.I128, fixedpoint.Base2](fixedpoint.ScaledInteger[fixedpoint.I128]{Value: fixedpoint.I128FromInt64(in.Value), Scale: scale}))
	}
	return nil
}

func printDecimal[R fixedpoint.Coefficient[R]](cmd *cobra.Command, d fixedpoint.FixedPoint[R, fixedpoint.Base10]) {
	fmt.Fprintf(cmd.OutOrStdout(), "coefficient=%v scale=%v value=%s\n", d.Value(), d.Scale(), d.String())
}

// printBinary omits a String() call: FixedPoint.String is only defined
// for Base10 and panics otherwise (spec §4.3.5).
func printBinary[R fixedpoint.Coefficient[R]](cmd *cobra.Command, d fixedpoint.FixedPoint[R, fixedpoint.Base2]) {
	fmt.Fprintf(cmd.OutOrStdout(), "coefficient=%v scale=%v (base2, decimal rendering unsupported)\n", d.Value(), d.Scale())
}
