// Package ed25519 implements the curve abstraction over the prime-order
// subgroup of edwards25519.
package ed25519

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

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

// q = 2^252 + qLow. [q]P is computed as [2^126]([2^126]P) + [qLow]P so that
// both factors stay canonical scalars.
var (
	scalarTwo126 = mustCanonicalScalar([32]byte{15: 0x40})
	scalarQLow   = mustCanonicalScalar([32]byte{
		0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	})

	groupOrder = mustBigIntHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")
)

func mustCanonicalScalar(b [32]byte) *edwards25519.Scalar {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return s
}

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
	return "ed25519"
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
		inner: edwards25519.NewGeneratorPoint(),
	}
}

// AltBasePoint returns a generator with unknown discrete log relative to
// the base point, derived by hashing the base point encoding to a point.
// The constant is torsion-free.
func (c *CurveImpl) AltBasePoint() Point {
	const str = "8b655970153799af2aeadc9ff1add0ea6c7251d54154cfa92c173a0dd39c1f94"
	b, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}

	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		panic(err)
	}

	return &PointImpl{
		inner: p,
	}
}

func (c *CurveImpl) Identity() Point {
	return &PointImpl{
		inner: edwards25519.NewIdentityPoint(),
	}
}

func (c *CurveImpl) NewRandomScalar(rand io.Reader) (Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rand, b[:]); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	s, err := new(edwards25519.Scalar).SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarFromUint32(v uint32) Scalar {
	var b [32]byte
	binary.LittleEndian.PutUint32(b[:4], v)

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarFromBigInt(v *big.Int) Scalar {
	reduced := new(big.Int).Mod(v, groupOrder)

	var be [32]byte
	reduced.FillBytes(be[:])

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(reverse(be[:]))
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, types.ErrInvalidScalar
	}

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(reverse(b))
	if err != nil {
		return nil, types.ErrInvalidScalar
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != compressedPointSize {
		return nil, types.ErrInvalidPointEncoding
	}

	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, types.ErrInvalidPointEncoding
	}

	if !isTorsionFree(p) {
		return nil, types.ErrNotInSubgroup
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

// isTorsionFree reports whether [q]P is the identity.
func isTorsionFree(p *edwards25519.Point) bool {
	acc := new(edwards25519.Point).ScalarMult(scalarTwo126, p)
	acc.ScalarMult(scalarTwo126, acc)

	low := new(edwards25519.Point).ScalarMult(scalarQLow, p)
	acc.Add(acc, low)

	return acc.Equal(edwards25519.NewIdentityPoint()) == 1
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.IsZero() {
		return nil, types.ErrDivisionByZero
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Invert(s.inner),
	}, nil
}

func (s *ScalarImpl) Encode() []byte {
	return reverse(s.inner.Bytes())
}

func (s *ScalarImpl) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Encode())
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, pp.inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Negate(p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) XCoord() (*big.Int, error) {
	x, _, err := p.affine()
	if err != nil {
		return nil, err
	}
	return x, nil
}

func (p *PointImpl) YCoord() (*big.Int, error) {
	_, y, err := p.affine()
	if err != nil {
		return nil, err
	}
	return y, nil
}

func (p *PointImpl) affine() (*big.Int, *big.Int, error) {
	if p.IsZero() {
		return nil, nil, types.ErrPointAtInfinity
	}

	X, Y, Z, _ := p.inner.ExtendedCoordinates()

	var zInv, x, y field.Element
	zInv.Invert(Z)
	x.Multiply(X, &zInv)
	y.Multiply(Y, &zInv)

	return new(big.Int).SetBytes(reverse(x.Bytes())),
		new(big.Int).SetBytes(reverse(y.Bytes())),
		nil
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}

// reverse returns a copy of b with the byte order flipped. Scalar encodings
// are big-endian at the interface boundary while the backend is
// little-endian native.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
