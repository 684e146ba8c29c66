// Package store is a minimal reference "column" for FixedPoint values:
// a caller holding many Decimal64 values and iterating them, the role
// spec.md assigns to "columnar data-frame integration... treated as
// callers that consume the numeric type." It persists the raw
// coefficient/scale pair rather than the formatted string, so reading a
// row back is an exact round trip with no reparse. Grounded on this
// corpus's sqlite-backed persistence layer.
package store

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/govalues/fixedpoint"
)

// validColumnName matches the column names Open accepts; the name is
// interpolated into a table identifier, so it is restricted to a safe
// character set rather than passed through a query parameter (sqlite
// does not support parameterized identifiers).
var validColumnName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column is a sqlite-backed sequence of Decimal64 values, stored one
// row per value as (coefficient, scale).
type Column struct {
	db   *sql.DB
	name string
}

// Open opens (or creates) the sqlite database at path and prepares the
// named column's backing table.
func Open(path, name string) (*Column, error) {
	if !validColumnName.MatchString(name) {
		return nil, fmt.Errorf("fixedpoint/store: invalid column name %q", name)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("fixedpoint/store: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	c := &Column{db: db, name: name}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Column) migrate() error {
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		row_index INTEGER PRIMARY KEY,
		coefficient INTEGER NOT NULL,
		scale INTEGER NOT NULL
	)`, c.tableName())
	_, err := c.db.Exec(stmt)
	if err != nil {
		return fmt.Errorf("fixedpoint/store: migrate: %w", err)
	}
	return nil
}

func (c *Column) tableName() string { return "col_" + c.name }

// Append writes value to the end of the column at the next row index
// and returns that index.
func (c *Column) Append(value fixedpoint.Decimal64) (int64, error) {
	stmt := fmt.Sprintf(
		"INSERT INTO %s (coefficient, scale) VALUES (?, ?)", c.tableName(),
	)
	res, err := c.db.Exec(stmt, int64(value.Value()), int32(value.Scale()))
	if err != nil {
		return 0, fmt.Errorf("fixedpoint/store: append: %w", err)
	}
	return res.LastInsertId()
}

// At reads the value stored at rowIndex, reconstructing it from its raw
// coefficient and scale with [fixedpoint.NewFromScaledInteger] so no
// rescale happens on read.
func (c *Column) At(rowIndex int64) (fixedpoint.Decimal64, error) {
	stmt := fmt.Sprintf(
		"SELECT coefficient, scale FROM %s WHERE row_index = ?", c.tableName(),
	)
	var coef int64
	var scale int32
	err := c.db.QueryRow(stmt, rowIndex).Scan(&coef, &scale)
	if err != nil {
		return fixedpoint.Decimal64{}, fmt.Errorf("fixedpoint/store: at(%d): %w", rowIndex, err)
	}
	si := fixedpoint.ScaledInteger[fixedpoint.I64]{
		Value: fixedpoint.I64(coef),
		Scale: fixedpoint.Scale(scale),
	}
	return fixedpoint.NewFromScaledInteger[fixedpoint.I64, fixedpoint.Base10](si), nil
}

// Len reports how many values have been appended to the column.
func (c *Column) Len() (int, error) {
	stmt := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.tableName())
	var n int
	if err := c.db.QueryRow(stmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("fixedpoint/store: len: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (c *Column) Close() error {
	return c.db.Close()
}
