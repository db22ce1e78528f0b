// Package secp256k1 implements the curve abstraction over secp256k1 using
// the decred library for field and group arithmetic.
package secp256k1

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	dcrec "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ZenGo-X/curv/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 33
)

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "secp256k1"
}

func (c *CurveImpl) BitSize() uint64 {
	return 256
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) CompressedPointSize() int {
	return compressedPointSize
}

func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(dcrec.S256().N)
}

func (c *CurveImpl) BasePoint() Point {
	one := new(dcrec.ModNScalar).SetInt(1)
	p := &PointImpl{}
	dcrec.ScalarBaseMultNonConst(one, &p.inner)
	return p
}

// AltBasePoint returns a generator with unknown discrete log relative to
// the base point, derived by hashing the compressed base point encoding
// to a curve point.
func (c *CurveImpl) AltBasePoint() Point {
	const str = "0250929b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac0"
	b, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}

	pub, err := dcrec.ParsePubKey(b)
	if err != nil {
		panic(err)
	}

	p := &PointImpl{}
	pub.AsJacobian(&p.inner)
	return p
}

func (c *CurveImpl) Identity() Point {
	return &PointImpl{}
}

func (c *CurveImpl) NewRandomScalar(rand io.Reader) (Scalar, error) {
	var buf [scalarSize]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}

		s := &ScalarImpl{}
		if overflow := s.inner.SetBytes(&buf); overflow == 0 {
			return s, nil
		}
	}
}

func (c *CurveImpl) ScalarFromUint32(v uint32) Scalar {
	s := &ScalarImpl{}
	s.inner.SetInt(v)
	return s
}

func (c *CurveImpl) ScalarFromBigInt(v *big.Int) Scalar {
	reduced := new(big.Int).Mod(v, c.Order())

	var buf [scalarSize]byte
	reduced.FillBytes(buf[:])

	s := &ScalarImpl{}
	s.inner.SetBytes(&buf)
	return s
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, types.ErrInvalidScalar
	}

	var buf [scalarSize]byte
	copy(buf[:], b)

	s := &ScalarImpl{}
	if overflow := s.inner.SetBytes(&buf); overflow != 0 {
		return nil, types.ErrInvalidScalar
	}

	return s, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != compressedPointSize {
		return nil, types.ErrInvalidPointEncoding
	}

	if isAllZero(b) {
		return &PointImpl{}, nil
	}

	pub, err := dcrec.ParsePubKey(b)
	if err != nil {
		return nil, types.ErrInvalidPointEncoding
	}

	p := &PointImpl{}
	pub.AsJacobian(&p.inner)
	return p, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	p := &PointImpl{}
	dcrec.ScalarBaseMultNonConst(&ss.inner, &p.inner)
	return p
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	res := &PointImpl{}
	dcrec.ScalarMultNonConst(&ss.inner, &pp.inner, &res.inner)
	return res
}

type ScalarImpl struct {
	inner dcrec.ModNScalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	res := &ScalarImpl{}
	res.inner.Add2(&s.inner, &bb.inner)
	return res
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	var neg dcrec.ModNScalar
	neg.NegateVal(&bb.inner)

	res := &ScalarImpl{}
	res.inner.Add2(&s.inner, &neg)
	return res
}

func (s *ScalarImpl) Negate() Scalar {
	res := &ScalarImpl{}
	res.inner.NegateVal(&s.inner)
	return res
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	res := &ScalarImpl{}
	res.inner.Mul2(&s.inner, &bb.inner)
	return res
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.inner.IsZero() {
		return nil, types.ErrDivisionByZero
	}

	res := &ScalarImpl{}
	res.inner.InverseValNonConst(&s.inner)
	return res, nil
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) BigInt() *big.Int {
	b := s.inner.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return s.inner.Equals(&bb.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

// PointImpl wraps a Jacobian point; the zero value is the group identity.
type PointImpl struct {
	inner dcrec.JacobianPoint
}

func (p *PointImpl) Copy() Point {
	res := &PointImpl{}
	res.inner.Set(&p.inner)
	return res
}

func (p *PointImpl) Add(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	res := &PointImpl{}
	dcrec.AddNonConst(&p.inner, &bb.inner, &res.inner)
	return res
}

func (p *PointImpl) Sub(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	neg := bb.negate()
	res := &PointImpl{}
	dcrec.AddNonConst(&p.inner, &neg.inner, &res.inner)
	return res
}

func (p *PointImpl) Negate() Point {
	return p.negate()
}

func (p *PointImpl) negate() *PointImpl {
	res := &PointImpl{}
	res.inner.Set(&p.inner)
	if res.IsZero() {
		return res
	}

	res.inner.Y.Negate(1).Normalize()
	return res
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	res := &PointImpl{}
	dcrec.ScalarMultNonConst(&ss.inner, &p.inner, &res.inner)
	return res
}

func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return make([]byte, compressedPointSize)
	}

	aff := p.affine()
	return dcrec.NewPublicKey(&aff.X, &aff.Y).SerializeCompressed()
}

func (p *PointImpl) XCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}

	aff := p.affine()
	b := aff.X.Bytes()
	return new(big.Int).SetBytes(b[:]), nil
}

func (p *PointImpl) YCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}

	aff := p.affine()
	b := aff.Y.Bytes()
	return new(big.Int).SetBytes(b[:]), nil
}

func (p *PointImpl) IsZero() bool {
	return (p.inner.X.IsZero() && p.inner.Y.IsZero()) || p.inner.Z.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	bb, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	return bytes.Equal(p.Encode(), bb.Encode())
}

func (p *PointImpl) affine() dcrec.JacobianPoint {
	var aff dcrec.JacobianPoint
	aff.Set(&p.inner)
	aff.ToAffine()
	return aff
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
