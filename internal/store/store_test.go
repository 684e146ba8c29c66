package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/fixedpoint"
)

func TestColumn_AppendAndRead(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fixedpoint.db")
	col, err := Open(dbPath, "prices")
	require.NoError(t, err)
	defer col.Close()

	v := fixedpoint.New[fixedpoint.I64, fixedpoint.Base10](12345, -2)
	idx, err := col.Append(v)
	require.NoError(t, err)

	got, err := col.At(idx)
	require.NoError(t, err)
	require.Equal(t, v, got)

	n, err := col.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestColumn_RejectsUnsafeName(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fixedpoint.db")
	_, err := Open(dbPath, "prices; DROP TABLE col_prices")
	require.Error(t, err)
}

func TestColumn_AtMissingRow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fixedpoint.db")
	col, err := Open(dbPath, "prices")
	require.NoError(t, err)
	defer col.Close()

	_, err = col.At(999)
	require.Error(t, err)
}
