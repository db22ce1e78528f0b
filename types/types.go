// Package types defines the curve abstraction shared by all backends.
//
// A Curve bundles the group parameters and the constructors; Scalar and
// Point are immutable values whose operations return fresh values. Values
// from different curves must not be mixed: backends panic on a foreign
// concrete type, since that is a programming error rather than bad input.
package types

import (
	"io"
	"math/big"
)

type Curve interface {
	// Name returns the registry name of the curve, e.g. "secp256k1".
	Name() string

	// BitSize returns the bit length of the group order q.
	BitSize() uint64

	// ScalarSize returns the length in bytes of a canonical scalar encoding.
	ScalarSize() int

	// CompressedPointSize returns the length in bytes of a canonical
	// point encoding.
	CompressedPointSize() int

	// Order returns a copy of the group order q.
	Order() *big.Int

	BasePoint() Point

	// AltBasePoint returns a second fixed generator whose discrete log
	// with respect to BasePoint is not known to anyone.
	AltBasePoint() Point

	Identity() Point

	// NewRandomScalar returns a scalar sampled uniformly from [0, q)
	// using the given randomness source.
	NewRandomScalar(rand io.Reader) (Scalar, error)

	ScalarFromUint32(uint32) Scalar

	// ScalarFromBigInt reduces v modulo q; negative inputs map to their
	// positive residue.
	ScalarFromBigInt(v *big.Int) Scalar

	// DecodeToScalar decodes a canonical big-endian scalar encoding.
	// The input must be exactly ScalarSize bytes and represent an integer
	// less than q; anything else returns ErrInvalidScalar.
	DecodeToScalar([]byte) (Scalar, error)

	// DecodeToPoint decodes a canonical point encoding. Malformed bytes
	// return ErrInvalidPointEncoding; a valid curve point outside the
	// prime-order subgroup returns ErrNotInSubgroup.
	DecodeToPoint([]byte) (Point, error)

	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar

	// Inverse returns the multiplicative inverse, or ErrDivisionByZero
	// for the zero scalar.
	Inverse() (Scalar, error)

	// Encode returns the canonical fixed-length big-endian encoding.
	Encode() []byte

	BigInt() *big.Int
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	ScalarMul(Scalar) Point

	// Encode returns the canonical compressed encoding.
	Encode() []byte

	// XCoord returns the affine x-coordinate, or ErrPointAtInfinity for
	// the identity.
	XCoord() (*big.Int, error)

	// YCoord returns the affine y-coordinate, or ErrPointAtInfinity for
	// the identity.
	YCoord() (*big.Int, error)

	// IsZero reports whether the point is the group identity.
	IsZero() bool

	Equals(other Point) bool
}
