package fixedpoint

// Decimal32, Decimal64, and Decimal128 are the three practical base-10
// instantiations of FixedPoint, corresponding to the original's
// decimal32/decimal64/decimal128 aliases.
type (
	Decimal32  = FixedPoint[I32, Base10]
	Decimal64  = FixedPoint[I64, Base10]
	Decimal128 = FixedPoint[I128, Base10]
)

// Binary32, Binary64, and Binary128 are the three base-2 instantiations.
// Unlike their Decimal counterparts, values of these types panic if
// String is called on them (see FixedPoint.String).
type (
	Binary32  = FixedPoint[I32, Base2]
	Binary64  = FixedPoint[I64, Base2]
	Binary128 = FixedPoint[I128, Base2]
)
