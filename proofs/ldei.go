package proofs

import (
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/ZenGo-X/curv/polynomial"
	"github.com/ZenGo-X/curv/types"
)

// ErrDegreeTooHigh is returned when a witness polynomial exceeds the
// degree bound of an LDEI statement.
var ErrDegreeTooHigh = errors.New("witness degree exceeds the statement bound")

// LDEIStatement claims that the points X are low degree exponent
// interpolations: X[i] = G[i]^{w(Alpha[i])} for a single polynomial w of
// degree at most D known to the prover.
type LDEIStatement struct {
	Alpha []types.Scalar
	G     []types.Point
	X     []types.Point
	D     int
}

// NewLDEIStatement computes the statement points X[i] = G[i]^{w(Alpha[i])}
// for the witness polynomial w. The evaluation points must be pairwise
// distinct and the witness degree at most d.
func NewLDEIStatement(witness *polynomial.Polynomial, alpha []types.Scalar, g []types.Point, d int) (*LDEIStatement, error) {
	if len(alpha) != len(g) {
		return nil, fmt.Errorf("got %d evaluation points for %d generators", len(alpha), len(g))
	}
	if witness.Degree().Cmp(polynomial.Finite(d)) > 0 {
		return nil, ErrDegreeTooHigh
	}
	if err := checkPairwiseDistinct(alpha); err != nil {
		return nil, err
	}

	x := make([]types.Point, len(g))
	for i := range g {
		x[i] = g[i].ScalarMul(witness.Evaluate(alpha[i]))
	}

	return &LDEIStatement{Alpha: alpha, G: g, X: x, D: d}, nil
}

// LDEIProof proves an LDEIStatement: commitments A[i] to a random
// polynomial in the exponent, the challenge and the response polynomial.
type LDEIProof struct {
	A         []types.Point
	Challenge types.Scalar
	Z         *polynomial.Polynomial
}

// ProveLDEI proves that the statement's points open to evaluations of
// the witness polynomial in the exponent.
func ProveLDEI(rand io.Reader, curve types.Curve, newHash func() hash.Hash, witness *polynomial.Polynomial, st *LDEIStatement) (*LDEIProof, error) {
	if len(st.Alpha) != len(st.G) || len(st.Alpha) != len(st.X) {
		return nil, fmt.Errorf("mismatched statement lengths: %d alphas, %d generators, %d points",
			len(st.Alpha), len(st.G), len(st.X))
	}
	if witness.Degree().Cmp(polynomial.Finite(st.D)) > 0 {
		return nil, ErrDegreeTooHigh
	}
	if err := checkPairwiseDistinct(st.Alpha); err != nil {
		return nil, err
	}
	for i := range st.G {
		if !st.X[i].Equals(st.G[i].ScalarMul(witness.Evaluate(st.Alpha[i]))) {
			return nil, errors.New("statement points do not match the witness polynomial")
		}
	}

	u, err := polynomial.Sample(rand, curve, polynomial.Finite(st.D))
	if err != nil {
		return nil, err
	}

	a := make([]types.Point, len(st.G))
	for i := range st.G {
		a[i] = st.G[i].ScalarMul(u.Evaluate(st.Alpha[i]))
	}

	e, err := ldeiChallenge(curve, newHash, st, a)
	if err != nil {
		return nil, err
	}

	return &LDEIProof{
		A:         a,
		Challenge: e,
		Z:         u.Sub(witness.MulScalar(e)),
	}, nil
}

// Verify checks the transcript challenge, the degree bound on the
// response polynomial, and A[i] == G[i]^{z(Alpha[i])} + challenge*X[i].
func (p *LDEIProof) Verify(curve types.Curve, newHash func() hash.Hash, st *LDEIStatement) error {
	e, err := ldeiChallenge(curve, newHash, st, p.A)
	if err != nil {
		return err
	}
	if !e.Eq(p.Challenge) {
		return ErrChallengeMismatch
	}

	if p.Z.Degree().Cmp(polynomial.Finite(st.D)) > 0 {
		return ErrProofInvalid
	}
	if len(p.A) != len(st.G) || len(st.Alpha) != len(st.G) || len(st.X) != len(st.G) {
		return ErrProofInvalid
	}

	for i := range st.G {
		expected := st.G[i].ScalarMul(p.Z.Evaluate(st.Alpha[i])).Add(st.X[i].ScalarMul(e))
		if !p.A[i].Equals(expected) {
			return ErrProofInvalid
		}
	}
	return nil
}

func ldeiChallenge(curve types.Curve, newHash func() hash.Hash, st *LDEIStatement, a []types.Point) (types.Scalar, error) {
	transcript := make([]types.Point, 0, len(st.G)+len(st.X)+len(a))
	transcript = append(transcript, st.G...)
	transcript = append(transcript, st.X...)
	transcript = append(transcript, a...)
	return challengeScalar(curve, newHash, transcript...)
}

func checkPairwiseDistinct(xs []types.Scalar) error {
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Eq(xs[j]) {
				return polynomial.ErrDuplicateX
			}
		}
	}
	return nil
}
