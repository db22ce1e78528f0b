// Package p256 implements the curve abstraction over NIST P-256 using the
// standard library for group arithmetic.
package p256

import (
	"crypto/elliptic"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

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
	return "p256"
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
	return new(big.Int).Set(elliptic.P256().Params().N)
}

func (c *CurveImpl) BasePoint() Point {
	params := elliptic.P256().Params()
	return &PointImpl{
		x: new(big.Int).Set(params.Gx),
		y: new(big.Int).Set(params.Gy),
	}
}

// AltBasePoint returns a generator with unknown discrete log relative to
// the base point, derived by iterated hashing of the compressed base point
// encoding until a valid x-coordinate was found.
func (c *CurveImpl) AltBasePoint() Point {
	const str = "0270f72bbac40e8a594c91a7bac37659278910764cd7c20a7d65a59a04b0ac2ade"
	b, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}

	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), b)
	if x == nil {
		panic("invalid alternate base point encoding")
	}

	return &PointImpl{
		x: x,
		y: y,
	}
}

func (c *CurveImpl) Identity() Point {
	return &PointImpl{
		x: new(big.Int),
		y: new(big.Int),
	}
}

func (c *CurveImpl) NewRandomScalar(rand io.Reader) (Scalar, error) {
	n := elliptic.P256().Params().N

	var buf [scalarSize]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}

		v := new(big.Int).SetBytes(buf[:])
		if v.Cmp(n) < 0 {
			return &ScalarImpl{inner: v}, nil
		}
	}
}

func (c *CurveImpl) ScalarFromUint32(v uint32) Scalar {
	return &ScalarImpl{
		inner: new(big.Int).SetUint64(uint64(v)),
	}
}

func (c *CurveImpl) ScalarFromBigInt(v *big.Int) Scalar {
	return &ScalarImpl{
		inner: new(big.Int).Mod(v, elliptic.P256().Params().N),
	}
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, types.ErrInvalidScalar
	}

	v := new(big.Int).SetBytes(b)
	if v.Cmp(elliptic.P256().Params().N) >= 0 {
		return nil, types.ErrInvalidScalar
	}

	return &ScalarImpl{inner: v}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != compressedPointSize {
		return nil, types.ErrInvalidPointEncoding
	}

	if isAllZero(b) {
		return c.Identity(), nil
	}

	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), b)
	if x == nil {
		return nil, types.ErrInvalidPointEncoding
	}

	return &PointImpl{x: x, y: y}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	var buf [scalarSize]byte
	ss.inner.FillBytes(buf[:])

	x, y := elliptic.P256().ScalarBaseMult(buf[:])
	return &PointImpl{x: x, y: y}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256.PointImpl")
	}

	if pp.IsZero() {
		return c.Identity()
	}

	var buf [scalarSize]byte
	ss.inner.FillBytes(buf[:])

	x, y := elliptic.P256().ScalarMult(pp.x, pp.y, buf[:])
	return &PointImpl{x: x, y: y}
}

// ScalarImpl holds a value reduced modulo the group order.
type ScalarImpl struct {
	inner *big.Int
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	res := new(big.Int).Add(s.inner, bb.inner)
	res.Mod(res, elliptic.P256().Params().N)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	res := new(big.Int).Sub(s.inner, bb.inner)
	res.Mod(res, elliptic.P256().Params().N)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Negate() Scalar {
	res := new(big.Int).Neg(s.inner)
	res.Mod(res, elliptic.P256().Params().N)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	res := new(big.Int).Mul(s.inner, bb.inner)
	res.Mod(res, elliptic.P256().Params().N)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.IsZero() {
		return nil, types.ErrDivisionByZero
	}

	res := new(big.Int).ModInverse(s.inner, elliptic.P256().Params().N)
	return &ScalarImpl{inner: res}, nil
}

func (s *ScalarImpl) Encode() []byte {
	buf := make([]byte, scalarSize)
	s.inner.FillBytes(buf)
	return buf
}

func (s *ScalarImpl) BigInt() *big.Int {
	return new(big.Int).Set(s.inner)
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	return s.inner.Cmp(bb.inner) == 0
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Sign() == 0
}

// PointImpl holds affine coordinates; (0, 0) is the group identity, the
// same convention crypto/elliptic uses for results of its operations.
type PointImpl struct {
	x *big.Int
	y *big.Int
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		x: new(big.Int).Set(p.x),
		y: new(big.Int).Set(p.y),
	}
}

func (p *PointImpl) Add(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256.PointImpl")
	}

	if p.IsZero() {
		return bb.Copy()
	}
	if bb.IsZero() {
		return p.Copy()
	}

	x, y := elliptic.P256().Add(p.x, p.y, bb.x, bb.y)
	return &PointImpl{x: x, y: y}
}

func (p *PointImpl) Sub(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256.PointImpl")
	}

	return p.Add(bb.Negate())
}

func (p *PointImpl) Negate() Point {
	if p.IsZero() {
		return p.Copy()
	}

	return &PointImpl{
		x: new(big.Int).Set(p.x),
		y: new(big.Int).Sub(elliptic.P256().Params().P, p.y),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}

	if p.IsZero() {
		return p.Copy()
	}

	var buf [scalarSize]byte
	ss.inner.FillBytes(buf[:])

	x, y := elliptic.P256().ScalarMult(p.x, p.y, buf[:])
	return &PointImpl{x: x, y: y}
}

func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return make([]byte, compressedPointSize)
	}

	return elliptic.MarshalCompressed(elliptic.P256(), p.x, p.y)
}

func (p *PointImpl) XCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}
	return new(big.Int).Set(p.x), nil
}

func (p *PointImpl) YCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}
	return new(big.Int).Set(p.y), nil
}

func (p *PointImpl) IsZero() bool {
	return p.x.Sign() == 0 && p.y.Sign() == 0
}

func (p *PointImpl) Equals(other Point) bool {
	bb, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256.PointImpl")
	}

	return p.x.Cmp(bb.x) == 0 && p.y.Cmp(bb.y) == 0
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
