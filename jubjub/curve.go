// Package jubjub implements the curve abstraction over Jubjub, the twisted
// Edwards curve defined over the BLS12-381 scalar field, using gnark-crypto.
package jubjub

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"

	"github.com/ZenGo-X/curv/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 32

	// Point encodings carry the sign of x in the top bit of the
	// big-endian y bytes.
	compressedSignMask = 0x80
)

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

// groupOrder is the order of the prime subgroup; the full group has
// cofactor 8.
var groupOrder = func() *big.Int {
	params := twistededwards.GetEdwardsCurve()
	return new(big.Int).Set(&params.Order)
}()

// Alternate generator, derived by hashing the base point encoding to a
// y-candidate, solving the curve equation for x and clearing the cofactor.
var altBase = func() *twistededwards.PointAffine {
	x, okX := new(big.Int).SetString("37626181111137339650389092231885505412412579865776647696709008919212428436256", 10)
	y, okY := new(big.Int).SetString("24775998312927566278981643700417017533016042319457160664007316005931864614596", 10)
	if !okX || !okY {
		panic("invalid alternate base point constants")
	}

	p := &twistededwards.PointAffine{}
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	if !p.IsOnCurve() {
		panic("alternate base point not on curve")
	}

	return p
}()

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "jubjub"
}

func (c *CurveImpl) BitSize() uint64 {
	return 252
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
	params := twistededwards.GetEdwardsCurve()
	p := &PointImpl{}
	p.inner.Set(&params.Base)
	return p
}

func (c *CurveImpl) AltBasePoint() Point {
	p := &PointImpl{}
	p.inner.Set(altBase)
	return p
}

func (c *CurveImpl) Identity() Point {
	return identity()
}

func identity() *PointImpl {
	p := &PointImpl{}
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return p
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
	return &ScalarImpl{
		inner: new(big.Int).SetUint64(uint64(v)),
	}
}

func (c *CurveImpl) ScalarFromBigInt(v *big.Int) Scalar {
	return &ScalarImpl{
		inner: new(big.Int).Mod(v, groupOrder),
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

	return &ScalarImpl{inner: v}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != compressedPointSize {
		return nil, types.ErrInvalidPointEncoding
	}

	// The y bytes must be canonical once the sign bit is cleared.
	masked := make([]byte, compressedPointSize)
	copy(masked, b)
	masked[0] &^= compressedSignMask
	if new(big.Int).SetBytes(masked).Cmp(fr.Modulus()) >= 0 {
		return nil, types.ErrInvalidPointEncoding
	}

	p := &PointImpl{}
	if err := p.inner.Unmarshal(b); err != nil {
		return nil, types.ErrInvalidPointEncoding
	}

	if !isInPrimeSubgroup(&p.inner) {
		return nil, types.ErrNotInSubgroup
	}

	return p, nil
}

func isInPrimeSubgroup(p *twistededwards.PointAffine) bool {
	var res twistededwards.PointAffine
	res.ScalarMultiplication(p, groupOrder)
	return res.X.IsZero() && res.Y.IsOne()
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	params := twistededwards.GetEdwardsCurve()
	res := &PointImpl{}
	res.inner.ScalarMultiplication(&params.Base, ss.inner)
	return res
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *jubjub.PointImpl")
	}

	res := &PointImpl{}
	res.inner.ScalarMultiplication(&pp.inner, ss.inner)
	return res
}

// ScalarImpl holds a value reduced modulo the prime subgroup order.
type ScalarImpl struct {
	inner *big.Int
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	res := new(big.Int).Add(s.inner, bb.inner)
	res.Mod(res, groupOrder)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	res := new(big.Int).Sub(s.inner, bb.inner)
	res.Mod(res, groupOrder)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Negate() Scalar {
	res := new(big.Int).Neg(s.inner)
	res.Mod(res, groupOrder)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	res := new(big.Int).Mul(s.inner, bb.inner)
	res.Mod(res, groupOrder)
	return &ScalarImpl{inner: res}
}

func (s *ScalarImpl) Inverse() (Scalar, error) {
	if s.IsZero() {
		return nil, types.ErrDivisionByZero
	}

	res := new(big.Int).ModInverse(s.inner, groupOrder)
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
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	return s.inner.Cmp(bb.inner) == 0
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Sign() == 0
}

type PointImpl struct {
	inner twistededwards.PointAffine
}

func (p *PointImpl) Copy() Point {
	res := &PointImpl{}
	res.inner.Set(&p.inner)
	return res
}

func (p *PointImpl) Add(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *jubjub.PointImpl")
	}

	res := &PointImpl{}
	res.inner.Add(&p.inner, &bb.inner)
	return res
}

func (p *PointImpl) Sub(b Point) Point {
	bb, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *jubjub.PointImpl")
	}

	var neg twistededwards.PointAffine
	neg.Neg(&bb.inner)

	res := &PointImpl{}
	res.inner.Add(&p.inner, &neg)
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
		panic("invalid scalar; type is not *jubjub.ScalarImpl")
	}

	res := &PointImpl{}
	res.inner.ScalarMultiplication(&p.inner, ss.inner)
	return res
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Marshal()
}

func (p *PointImpl) XCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}

	res := new(big.Int)
	p.inner.X.BigInt(res)
	return res, nil
}

func (p *PointImpl) YCoord() (*big.Int, error) {
	if p.IsZero() {
		return nil, types.ErrPointAtInfinity
	}

	res := new(big.Int)
	p.inner.Y.BigInt(res)
	return res, nil
}

func (p *PointImpl) IsZero() bool {
	return p.inner.X.IsZero() && p.inner.Y.IsOne()
}

func (p *PointImpl) Equals(other Point) bool {
	bb, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *jubjub.PointImpl")
	}

	return p.inner.Equal(&bb.inner)
}
