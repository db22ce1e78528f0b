// Package bls12381 implements the curve abstraction over the G1 group of
// BLS12-381 using gnark-crypto.
package bls12381

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ZenGo-X/curv/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 48
)

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "bls12381"
}

func (c *CurveImpl) BitSize() uint64 {
	return 255
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) CompressedPointSize() int {
	return compressedPointSize
}

func (c *CurveImpl) Order() *big.Int {
	return fr.Modulus()
}

func (c *CurveImpl) BasePoint() Point {
	_, _, g1, _ := bls.Generators()
	return &PointImpl{inner: g1}
}

// AltBasePoint returns a generator with unknown discrete log relative to
// the base point, obtained by hashing the base point encoding to G1.
func (c *CurveImpl) AltBasePoint() Point {
	_, _, g1, _ := bls.Generators()
	enc := g1.Bytes()

	p, err := bls.HashToG1(enc[:], []byte("BLS12381G1_XMD:SHA-256_SSWU_RO_ALT_BASE_POINT_"))
	if err != nil {
		panic(err)
	}

	return &PointImpl{inner: p}
}

func (c *CurveImpl) Identity() Point {
	return &PointImpl{}
}

func (c *CurveImpl) NewRandomScalar(rand io.Reader) (Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rand, b[:]); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	wide := new(big.Int).SetBytes(b[:])
	return c.ScalarFromBigInt(wide), nil
}

func (c *CurveImpl) ScalarFromUint32(v uint32) Scalar {
	s := &ScalarImpl{}
	s.inner.SetUint64(uint64(v))
	return s
}

func (c *CurveImpl) ScalarFromBigInt(v *big.Int) Scalar {
	s := &ScalarImpl{}
	s.inner.SetBigInt(v)
	return s
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, types.ErrInvalidScalar
	}

	v := new(big.Int).SetBytes(b)
	if v.Cmp(fr.Modulus()) >= 0 {
		return nil, types.ErrInvalidScalar
	}

	s := &ScalarImpl{}
	s.inner.SetBigInt(v)
	return s, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != compressedPointSize {
		return nil, types.ErrInvalidPointEncoding
	}

	// Decode without the subgroup check first so that a valid curve point
	// outside G1 reports as such rather than as a malformed encoding.
	var p bls.G1Affine
	dec := bls.NewDecoder(bytes.NewReader(b), bls.NoSubgroupChecks())
	if err := dec.Decode(&p); err != nil {
		return nil, types.ErrInvalidPointEncoding
	}

	if !p.IsInfinity() && !p.IsInSubGroup() {
		return nil, types.ErrNotInSubgroup
	}

	return &PointImpl{inner: p}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	var v big.Int
	ss.inner.BigInt(&v)

	p := &PointImpl{}
	p.inner.ScalarMultiplicationBase(&v)
	return p
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *bls12381.PointImpl")
	}

	var v big.Int
	ss.inner.BigInt(&v)

	res := &PointImpl{}
	res.inner.ScalarMultiplication(&pp.inner, &v)
	return res
}

type ScalarImpl struct {
	inner fr.Element
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	res := &ScalarImpl{}
	res.inner.Add(&s.inner, &bb.inner)
	return res
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	res := &ScalarImpl{}
	res.inner.Sub(&s.inner, &bb.inner)
	return res
}

func (s *ScalarImpl) Negate() Scalar {
	res := &ScalarImpl{}
	res.inner.Neg(&s.inner)
	return res
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	res := &ScalarImpl{}
	res.inner.Mul(&s.inner, &bb.inner)
	return res
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.IsZero() {
		return nil, types.ErrDivisionByZero
	}

	res := &ScalarImpl{}
	res.inner.Inverse(&s.inner)
	return res, nil
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) BigInt() *big.Int {
	res := new(big.Int)
	s.inner.BigInt(res)
	return res
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	return s.inner.Equal(&bb.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

// PointImpl wraps an affine G1 point; the zero value is the group identity.
type PointImpl struct {
	inner bls.G1Affine
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{inner: p.inner}
}

func (p *PointImpl) Add(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *bls12381.PointImpl")
	}

	res := &PointImpl{}
	res.inner.Add(&p.inner, &bb.inner)
	return res
}

func (p *PointImpl) Sub(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *bls12381.PointImpl")
	}

	res := &PointImpl{}
	res.inner.Sub(&p.inner, &bb.inner)
	return res
}

func (p *PointImpl) Negate() Point {
	res := &PointImpl{}
	res.inner.Neg(&p.inner)
	return res
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *bls12381.ScalarImpl")
	}

	var v big.Int
	ss.inner.BigInt(&v)

	res := &PointImpl{}
	res.inner.ScalarMultiplication(&p.inner, &v)
	return res
}

func (p *PointImpl) Encode() []byte {
	b := p.inner.Bytes()
	return b[:]
}

func (p *PointImpl) XCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}

	b := p.inner.X.Bytes()
	return new(big.Int).SetBytes(b[:]), nil
}

func (p *PointImpl) YCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}

	b := p.inner.Y.Bytes()
	return new(big.Int).SetBytes(b[:]), nil
}

func (p *PointImpl) IsZero() bool {
	return p.inner.IsInfinity()
}

func (p *PointImpl) Equals(other Point) bool {
	bb, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *bls12381.PointImpl")
	}

	return p.inner.Equal(&bb.inner)
}
