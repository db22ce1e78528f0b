// Package ristretto implements the curve abstraction over the ristretto255
// group, a prime-order group built on edwards25519.
package ristretto

import (
	"fmt"
	"io"
	"math/big"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"

	"github.com/ZenGo-X/curv/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 32
)

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

// groupOrder is the prime order of ristretto255, the same q as edwards25519.
var groupOrder = mustBigIntHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")

func mustBigIntHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex integer constant")
	}
	return v
}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "ristretto"
}

func (c *CurveImpl) BitSize() uint64 {
	return 253
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) CompressedPointSize() int {
	return compressedPointSize
}

func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(groupOrder)
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: new(ristretto.Point).SetBase(),
	}
}

// AltBasePoint returns a generator with unknown discrete log relative to
// the base point: the base point encoding is hashed to 64 uniform bytes
// and mapped to the group through Elligator, one half at a time.
func (c *CurveImpl) AltBasePoint() Point {
	h := sha3.New512()
	h.Write(new(ristretto.Point).SetBase().Bytes())
	return &PointImpl{
		inner: pointFromUniformBytes(h.Sum(nil)),
	}
}

func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])

	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}

func (c *CurveImpl) Identity() Point {
	return &PointImpl{
		inner: new(ristretto.Point).SetZero(),
	}
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
	return c.ScalarFromBigInt(new(big.Int).SetUint64(uint64(v)))
}

func (c *CurveImpl) ScalarFromBigInt(v *big.Int) Scalar {
	reduced := new(big.Int).Mod(v, groupOrder)

	var be [32]byte
	reduced.FillBytes(be[:])

	var le [32]byte
	for i, x := range be {
		le[31-i] = x
	}

	return &ScalarImpl{
		inner: new(ristretto.Scalar).SetBytes(&le),
	}
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, types.ErrInvalidScalar
	}

	v := new(big.Int).SetBytes(b)
	if v.Cmp(groupOrder) >= 0 {
		return nil, types.ErrInvalidScalar
	}

	var le [32]byte
	for i, x := range b {
		le[31-i] = x
	}

	return &ScalarImpl{
		inner: new(ristretto.Scalar).SetBytes(&le),
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != compressedPointSize {
		return nil, types.ErrInvalidPointEncoding
	}

	p := new(ristretto.Point)
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, types.ErrInvalidPointEncoding
	}

	return &PointImpl{inner: p}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	return &PointImpl{
		inner: new(ristretto.Point).ScalarMultBase(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	return &PointImpl{
		inner: new(ristretto.Point).ScalarMult(pp.inner, ss.inner),
	}
}

type ScalarImpl struct {
	inner *ristretto.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(ristretto.Scalar).Add(s.inner, bb.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(ristretto.Scalar).Sub(s.inner, bb.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(ristretto.Scalar).Neg(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(ristretto.Scalar).Mul(s.inner, bb.inner),
	}
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.IsZero() {
		return nil, types.ErrDivisionByZero
	}

	return &ScalarImpl{
		inner: new(ristretto.Scalar).Inverse(s.inner),
	}, nil
}

func (s *ScalarImpl) Encode() []byte {
	le := s.inner.Bytes()
	be := make([]byte, scalarSize)
	for i, x := range le {
		be[scalarSize-1-i] = x
	}
	return be
}

func (s *ScalarImpl) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Encode())
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	return s.inner.Equals(bb.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equals(new(ristretto.Scalar).SetZero())
}

type PointImpl struct {
	inner *ristretto.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(ristretto.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	return &PointImpl{
		inner: new(ristretto.Point).Add(p.inner, bb.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	return &PointImpl{
		inner: new(ristretto.Point).Sub(p.inner, bb.inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: new(ristretto.Point).Neg(p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	return &PointImpl{
		inner: new(ristretto.Point).ScalarMult(p.inner, ss.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

// XCoord returns the canonical point encoding interpreted as an integer.
// The group is defined abstractly over encodings, so there is no affine
// x-coordinate to expose.
func (p *PointImpl) XCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}
	return new(big.Int).SetBytes(p.inner.Bytes()), nil
}

// YCoord returns the canonical point encoding interpreted as an integer,
// for the same reason as XCoord.
func (p *PointImpl) YCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}
	return new(big.Int).SetBytes(p.inner.Bytes()), nil
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equals(new(ristretto.Point).SetZero())
}

func (p *PointImpl) Equals(other Point) bool {
	bb, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	return p.inner.Equals(bb.inner)
}
