// Package polynomial implements polynomials over the scalar field of a
// curve, together with the Lagrange interpolation helpers secret sharing
// builds on.
package polynomial

import (
	"errors"
	"fmt"
	"io"

	"github.com/ZenGo-X/curv/types"
)

// ErrDuplicateX is returned when interpolation points are not pairwise
// distinct.
var ErrDuplicateX = errors.New("interpolation points are not pairwise distinct")

// Degree is a polynomial degree. The zero polynomial has infinite degree,
// which compares greater than every finite degree.
type Degree struct {
	finite bool
	value  int
}

func Finite(d int) Degree {
	return Degree{finite: true, value: d}
}

func Infinite() Degree {
	return Degree{}
}

func (d Degree) IsFinite() bool {
	return d.finite
}

// Value returns the finite degree value; it panics for the infinite
// degree.
func (d Degree) Value() int {
	if !d.finite {
		panic("infinite degree has no value")
	}
	return d.value
}

func (d Degree) Cmp(other Degree) int {
	switch {
	case !d.finite && !other.finite:
		return 0
	case !d.finite:
		return 1
	case !other.finite:
		return -1
	case d.value < other.value:
		return -1
	case d.value > other.value:
		return 1
	default:
		return 0
	}
}

// Polynomial is a polynomial over the scalar field of a curve, stored as
// coefficients in increasing-power order. Trailing zero coefficients are
// allowed, so the degree is not necessarily len(coefficients)-1.
type Polynomial struct {
	curve  types.Curve
	coeffs []types.Scalar
}

// New constructs the polynomial f(x) = a_0 + a_1*x + ... from the
// coefficients a_0, a_1, .... An empty coefficient list is the zero
// polynomial.
func New(curve types.Curve, coeffs []types.Scalar) *Polynomial {
	cp := make([]types.Scalar, len(coeffs))
	copy(cp, coeffs)
	return &Polynomial{curve: curve, coeffs: cp}
}

// Sample draws a random polynomial of the given degree. The infinite
// degree yields the zero polynomial.
func Sample(rand io.Reader, curve types.Curve, degree Degree) (*Polynomial, error) {
	if !degree.IsFinite() {
		return New(curve, nil), nil
	}

	coeffs := make([]types.Scalar, degree.Value()+1)
	for i := range coeffs {
		s, err := curve.NewRandomScalar(rand)
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}

	return &Polynomial{curve: curve, coeffs: coeffs}, nil
}

// SampleWithConstTerm draws a random polynomial of degree n with a fixed
// constant term, so that f(0) = constTerm.
func SampleWithConstTerm(rand io.Reader, curve types.Curve, n int, constTerm types.Scalar) (*Polynomial, error) {
	coeffs := make([]types.Scalar, n+1)
	coeffs[0] = constTerm
	for i := 1; i <= n; i++ {
		s, err := curve.NewRandomScalar(rand)
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}

	return &Polynomial{curve: curve, coeffs: coeffs}, nil
}

// Coefficients returns a copy of the coefficient list.
func (p *Polynomial) Coefficients() []types.Scalar {
	cp := make([]types.Scalar, len(p.coeffs))
	copy(cp, p.coeffs)
	return cp
}

// Degree returns the index of the last nonzero coefficient, or the
// infinite degree for the zero polynomial.
func (p *Polynomial) Degree() Degree {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if !p.coeffs[i].IsZero() {
			return Finite(i)
		}
	}
	return Infinite()
}

// Evaluate computes f(x) by Horner's rule. The zero polynomial evaluates
// to zero.
func (p *Polynomial) Evaluate(x types.Scalar) types.Scalar {
	if len(p.coeffs) == 0 {
		return p.curve.ScalarFromUint32(0)
	}

	acc := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Add returns f + g.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	short, long := p.coeffs, q.coeffs
	if len(short) > len(long) {
		short, long = long, short
	}

	coeffs := make([]types.Scalar, len(long))
	for i := range short {
		coeffs[i] = short[i].Add(long[i])
	}
	copy(coeffs[len(short):], long[len(short):])

	return &Polynomial{curve: p.curve, coeffs: coeffs}
}

// Sub returns f - g.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}

	coeffs := make([]types.Scalar, n)
	for i := range coeffs {
		switch {
		case i < len(p.coeffs) && i < len(q.coeffs):
			coeffs[i] = p.coeffs[i].Sub(q.coeffs[i])
		case i < len(p.coeffs):
			coeffs[i] = p.coeffs[i]
		default:
			coeffs[i] = q.coeffs[i].Negate()
		}
	}

	return &Polynomial{curve: p.curve, coeffs: coeffs}
}

// MulScalar returns s * f.
func (p *Polynomial) MulScalar(s types.Scalar) *Polynomial {
	coeffs := make([]types.Scalar, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.Mul(s)
	}
	return &Polynomial{curve: p.curve, coeffs: coeffs}
}

// LagrangeBasis evaluates the j-th Lagrange basis polynomial for the
// interpolation points xs at xTarget.
func LagrangeBasis(curve types.Curve, xTarget types.Scalar, j int, xs []types.Scalar) (types.Scalar, error) {
	if j < 0 || j >= len(xs) {
		return nil, fmt.Errorf("basis index %d out of range for %d points", j, len(xs))
	}
	if err := checkDistinct(xs); err != nil {
		return nil, err
	}

	num := curve.ScalarFromUint32(1)
	denom := curve.ScalarFromUint32(1)
	for m, x := range xs {
		if m == j {
			continue
		}
		num = num.Mul(xTarget.Sub(x))
		denom = denom.Mul(xs[j].Sub(x))
	}

	denomInv, err := denom.Inverse()
	if err != nil {
		return nil, err
	}
	return num.Mul(denomInv), nil
}

// InterpolateAtZero interpolates the polynomial defined by the pairs
// (points[i], values[i]) and evaluates it at zero, the operation secret
// reconstruction needs.
func InterpolateAtZero(curve types.Curve, points, values []types.Scalar) (types.Scalar, error) {
	if len(points) != len(values) {
		return nil, fmt.Errorf("mismatched interpolation inputs: %d points, %d values", len(points), len(values))
	}
	if len(points) == 0 {
		return nil, errors.New("no interpolation points")
	}
	if err := checkDistinct(points); err != nil {
		return nil, err
	}

	// l_i(0) = prod_{j != i} x_j / (x_j - x_i)
	acc := curve.ScalarFromUint32(0)
	for i, xi := range points {
		num := curve.ScalarFromUint32(1)
		denom := curve.ScalarFromUint32(1)
		for j, xj := range points {
			if j == i {
				continue
			}
			num = num.Mul(xj)
			denom = denom.Mul(xj.Sub(xi))
		}

		denomInv, err := denom.Inverse()
		if err != nil {
			return nil, err
		}
		acc = acc.Add(values[i].Mul(num).Mul(denomInv))
	}
	return acc, nil
}

func checkDistinct(xs []types.Scalar) error {
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Eq(xs[j]) {
				return ErrDuplicateX
			}
		}
	}
	return nil
}
