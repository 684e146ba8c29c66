package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/govalues/fixedpoint"
	"github.com/govalues/fixedpoint/internal/store"
)

var columnCmd = &cobra.Command{
	Use:   "column <db-path> <column-name> <coefficient> <scale>",
	Short: "Append a Decimal64 to a sqlite-backed column and read it back",
	Args:  cobra.ExactArgs(4),
	RunE:  runColumn,
}

func runColumn(cmd *cobra.Command, args []string) error {
	dbPath, name := args[0], args[1]

	coef, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("parse coefficient: %w", err)
	}
	scale, err := strconv.ParseInt(args[3], 10, 32)
	if err != nil {
		return fmt.Errorf("parse scale: %w", err)
	}

	col, err := store.Open(dbPath, name)
	if err != nil {
		return err
	}
	defer col.Close()

	value := fixedpoint.NewFromScaledInteger[fixedpoint.I64, fixedpoint.Base10](fixedpoint.ScaledInteger[fixedpoint.I64]{Value: fixedpoint.I64(coef), Scale: fixedpoint.Scale(scale)})
	idx, err := col.Append(value)
	if err != nil {
		return err
	}

	back, err := col.At(idx)
	if err != nil {
		return err
	}

	n, err := col.Len()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "appended row=%d value=%s column_len=%d\n", idx, back.String(), n)
	return nil
}
