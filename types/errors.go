package types

import "errors"

var (
	// ErrInvalidScalar is returned when scalar bytes are the wrong length
	// or encode an integer not less than the group order.
	ErrInvalidScalar = errors.New("invalid scalar encoding")

	// ErrInvalidPointEncoding is returned when point bytes are malformed
	// or do not describe a point on the curve.
	ErrInvalidPointEncoding = errors.New("invalid point encoding")

	// ErrNotInSubgroup is returned when point bytes describe a valid
	// curve point outside the prime-order subgroup.
	ErrNotInSubgroup = errors.New("point not in prime-order subgroup")

	// ErrPointAtInfinity is returned when an affine coordinate is
	// requested from the group identity.
	ErrPointAtInfinity = errors.New("point at infinity has no affine coordinates")

	// ErrDivisionByZero is returned when inverting the zero scalar.
	ErrDivisionByZero = errors.New("division by zero")
)
