package proofs

import (
	"hash"
	"io"

	"github.com/ZenGo-X/curv/types"
)

// HomoElGamalStatement describes a homomorphic ElGamal encryption in the
// exponent: D = x*H + r*Y, E = r*G under public key Y. Setting H = G
// gives the standard exponent ElGamal encryption of x.
type HomoElGamalStatement struct {
	G types.Point
	H types.Point
	Y types.Point
	D types.Point
	E types.Point
}

// HomoElGamalWitness is the encrypted value x and the encryption
// randomness r.
type HomoElGamalWitness struct {
	X types.Scalar
	R types.Scalar
}

// HomoElGamalProof proves that a statement's (D, E) pair is a well formed
// encryption of a value the prover knows.
type HomoElGamalProof struct {
	T         types.Point
	A3        types.Point
	Challenge types.Scalar
	Z1        types.Scalar
	Z2        types.Scalar
}

// ProveHomoElGamal proves the witness opens the statement.
func ProveHomoElGamal(rand io.Reader, curve types.Curve, newHash func() hash.Hash, witness HomoElGamalWitness, st HomoElGamalStatement) (*HomoElGamalProof, error) {
	s1, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}
	s2, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	a1 := st.H.ScalarMul(s1)
	a2 := st.Y.ScalarMul(s2)
	a3 := st.G.ScalarMul(s2)
	t := a1.Add(a2)

	e, err := challengeScalar(curve, newHash, st.G, st.H, st.Y, st.D, st.E, t, a3)
	if err != nil {
		return nil, err
	}

	return &HomoElGamalProof{
		T:         t,
		A3:        a3,
		Challenge: e,
		Z1:        s1.Add(e.Mul(witness.X)),
		Z2:        s2.Add(e.Mul(witness.R)),
	}, nil
}

// Verify checks that z1*H + z2*Y == T + challenge*D and
// z2*G == A3 + challenge*E for the transcript's challenge.
func (p *HomoElGamalProof) Verify(curve types.Curve, newHash func() hash.Hash, st HomoElGamalStatement) error {
	e, err := challengeScalar(curve, newHash, st.G, st.H, st.Y, st.D, st.E, p.T, p.A3)
	if err != nil {
		return err
	}
	if !e.Eq(p.Challenge) {
		return ErrChallengeMismatch
	}

	lhs1 := st.H.ScalarMul(p.Z1).Add(st.Y.ScalarMul(p.Z2))
	rhs1 := p.T.Add(st.D.ScalarMul(e))
	lhs2 := st.G.ScalarMul(p.Z2)
	rhs2 := p.A3.Add(st.E.ScalarMul(e))
	if !lhs1.Equals(rhs1) || !lhs2.Equals(rhs2) {
		return ErrProofInvalid
	}
	return nil
}
