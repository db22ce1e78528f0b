package polynomial

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/curves"
	"github.com/ZenGo-X/curv/secp256k1"
	"github.com/ZenGo-X/curv/types"
)

func TestDegree(t *testing.T) {
	c := secp256k1.NewCurve()

	zero := c.ScalarFromUint32(0)
	one := c.ScalarFromUint32(1)
	two := c.ScalarFromUint32(2)

	require.Equal(t, 0, New(c, nil).Degree().Cmp(Infinite()))
	require.Equal(t, 0, New(c, []types.Scalar{zero}).Degree().Cmp(Infinite()))
	require.Equal(t, 0, New(c, []types.Scalar{one, two}).Degree().Cmp(Finite(1)))

	// Trailing zero coefficients do not raise the degree.
	require.Equal(t, 0, New(c, []types.Scalar{one, two, zero}).Degree().Cmp(Finite(1)))
	require.Equal(t, 0, New(c, []types.Scalar{zero, zero, two}).Degree().Cmp(Finite(2)))
}

func TestDegree_Cmp(t *testing.T) {
	require.Equal(t, 0, Finite(3).Cmp(Finite(3)))
	require.Equal(t, -1, Finite(2).Cmp(Finite(3)))
	require.Equal(t, 1, Finite(3).Cmp(Finite(2)))

	// The infinite degree is greater than every finite degree.
	require.Equal(t, 1, Infinite().Cmp(Finite(1000)))
	require.Equal(t, -1, Finite(0).Cmp(Infinite()))
	require.Equal(t, 0, Infinite().Cmp(Infinite()))

	require.True(t, Finite(3).IsFinite())
	require.False(t, Infinite().IsFinite())
	require.Equal(t, 3, Finite(3).Value())
	require.Panics(t, func() {
		Infinite().Value()
	})
}

func TestSample(t *testing.T) {
	c := secp256k1.NewCurve()

	p, err := Sample(rand.Reader, c, Finite(5))
	require.NoError(t, err)
	require.Len(t, p.Coefficients(), 6)
	require.Equal(t, 0, p.Degree().Cmp(Finite(5)))

	zero, err := Sample(rand.Reader, c, Infinite())
	require.NoError(t, err)
	require.Empty(t, zero.Coefficients())
	require.Equal(t, 0, zero.Degree().Cmp(Infinite()))
}

func TestSampleWithConstTerm(t *testing.T) {
	c := secp256k1.NewCurve()
	secret := c.ScalarFromUint32(42)

	p, err := SampleWithConstTerm(rand.Reader, c, 3, secret)
	require.NoError(t, err)
	require.Len(t, p.Coefficients(), 4)
	require.True(t, p.Evaluate(c.ScalarFromUint32(0)).Eq(secret))

	// Degree zero keeps only the constant term.
	flat, err := SampleWithConstTerm(rand.Reader, c, 0, secret)
	require.NoError(t, err)
	require.Len(t, flat.Coefficients(), 1)
	require.True(t, flat.Evaluate(c.ScalarFromUint32(7)).Eq(secret))
}

func TestEvaluate(t *testing.T) {
	c := secp256k1.NewCurve()

	p, err := Sample(rand.Reader, c, Finite(2))
	require.NoError(t, err)

	x, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)

	// Horner evaluation matches the direct sum a_0 + a_1*x + a_2*x^2.
	coeffs := p.Coefficients()
	direct := coeffs[0].Add(coeffs[1].Mul(x)).Add(coeffs[2].Mul(x).Mul(x))
	require.True(t, p.Evaluate(x).Eq(direct))

	require.True(t, p.Evaluate(c.ScalarFromUint32(0)).Eq(coeffs[0]))
	require.True(t, New(c, nil).Evaluate(x).IsZero())
}

func TestArithmetic(t *testing.T) {
	c := secp256k1.NewCurve()

	f, err := Sample(rand.Reader, c, Finite(2))
	require.NoError(t, err)
	g, err := Sample(rand.Reader, c, Finite(4))
	require.NoError(t, err)
	x, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	s, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)

	sum := f.Add(g)
	require.True(t, sum.Evaluate(x).Eq(f.Evaluate(x).Add(g.Evaluate(x))))
	require.Equal(t, 0, sum.Degree().Cmp(Finite(4)))

	diff := f.Sub(g)
	require.True(t, diff.Evaluate(x).Eq(f.Evaluate(x).Sub(g.Evaluate(x))))

	// Subtracting in the other direction exercises the negated tail.
	diff = g.Sub(f)
	require.True(t, diff.Evaluate(x).Eq(g.Evaluate(x).Sub(f.Evaluate(x))))

	require.Equal(t, 0, f.Sub(f).Degree().Cmp(Infinite()))

	scaled := f.MulScalar(s)
	require.True(t, scaled.Evaluate(x).Eq(f.Evaluate(x).Mul(s)))
}

func TestLagrangeBasis(t *testing.T) {
	c := secp256k1.NewCurve()

	f, err := Sample(rand.Reader, c, Finite(3))
	require.NoError(t, err)

	xs := []types.Scalar{
		c.ScalarFromUint32(1),
		c.ScalarFromUint32(2),
		c.ScalarFromUint32(3),
		c.ScalarFromUint32(4),
	}
	target := c.ScalarFromUint32(15)

	// f(15) = sum_j f(x_j) * l_j(15) for any four points of a cubic.
	acc := c.ScalarFromUint32(0)
	for j, x := range xs {
		basis, err := LagrangeBasis(c, target, j, xs)
		require.NoError(t, err)
		acc = acc.Add(f.Evaluate(x).Mul(basis))
	}
	require.True(t, acc.Eq(f.Evaluate(target)))
}

func TestLagrangeBasis_Errors(t *testing.T) {
	c := secp256k1.NewCurve()
	target := c.ScalarFromUint32(0)

	dup := []types.Scalar{
		c.ScalarFromUint32(1),
		c.ScalarFromUint32(2),
		c.ScalarFromUint32(1),
	}
	_, err := LagrangeBasis(c, target, 0, dup)
	require.ErrorIs(t, err, ErrDuplicateX)

	xs := []types.Scalar{
		c.ScalarFromUint32(1),
		c.ScalarFromUint32(2),
	}
	_, err = LagrangeBasis(c, target, 2, xs)
	require.Error(t, err)
	_, err = LagrangeBasis(c, target, -1, xs)
	require.Error(t, err)
}

func TestInterpolateAtZero(t *testing.T) {
	for _, curve := range curves.All() {
		c := curve
		t.Run(c.Name(), func(t *testing.T) {
			f, err := SampleWithConstTerm(rand.Reader, c, 2, c.ScalarFromUint32(12345))
			require.NoError(t, err)

			points := []types.Scalar{
				c.ScalarFromUint32(1),
				c.ScalarFromUint32(2),
				c.ScalarFromUint32(3),
			}
			values := make([]types.Scalar, len(points))
			for i, x := range points {
				values[i] = f.Evaluate(x)
			}

			secret, err := InterpolateAtZero(c, points, values)
			require.NoError(t, err)
			require.True(t, secret.Eq(c.ScalarFromUint32(12345)))
		})
	}
}

func TestInterpolateAtZero_Errors(t *testing.T) {
	c := secp256k1.NewCurve()

	one := c.ScalarFromUint32(1)
	two := c.ScalarFromUint32(2)

	_, err := InterpolateAtZero(c, []types.Scalar{one, two}, []types.Scalar{one})
	require.Error(t, err)

	_, err = InterpolateAtZero(c, nil, nil)
	require.Error(t, err)

	_, err = InterpolateAtZero(c, []types.Scalar{one, two, one}, []types.Scalar{one, two, one})
	require.ErrorIs(t, err, ErrDuplicateX)
}
