package proofs

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/commitments"
	"github.com/ZenGo-X/curv/curves"
	"github.com/ZenGo-X/curv/polynomial"
	"github.com/ZenGo-X/curv/secp256k1"
	"github.com/ZenGo-X/curv/types"
)

func TestDLogProof(t *testing.T) {
	for _, curve := range curves.All() {
		c := curve
		t.Run(c.Name(), func(t *testing.T) {
			witness, err := c.NewRandomScalar(rand.Reader)
			require.NoError(t, err)

			proof, err := ProveDLog(rand.Reader, c, sha256.New, witness)
			require.NoError(t, err)
			require.True(t, proof.Public.Equals(c.ScalarBaseMul(witness)))
			require.NoError(t, proof.Verify(c, sha256.New))
		})
	}
}

func TestDLogProof_Invalid(t *testing.T) {
	c := secp256k1.NewCurve()
	witness, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)

	proof, err := ProveDLog(rand.Reader, c, sha256.New, witness)
	require.NoError(t, err)

	// A different public point changes the transcript.
	tampered := *proof
	tampered.Public = proof.Public.Add(c.BasePoint())
	require.ErrorIs(t, tampered.Verify(c, sha256.New), ErrChallengeMismatch)

	// A bad response keeps the transcript intact but breaks the equation.
	tampered = *proof
	tampered.Response = proof.Response.Add(c.ScalarFromUint32(1))
	require.ErrorIs(t, tampered.Verify(c, sha256.New), ErrProofInvalid)

	// The verifier must agree on the hash.
	require.ErrorIs(t, proof.Verify(c, sha512.New), ErrChallengeMismatch)
}

func TestPedersenProof(t *testing.T) {
	c := secp256k1.NewCurve()

	value, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	blinding, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)

	proof, err := ProvePedersen(rand.Reader, c, sha256.New, value, blinding)
	require.NoError(t, err)
	require.True(t, proof.Commitment.Equals(commitments.PedersenCommit(c, value, blinding)))
	require.NoError(t, proof.Verify(c, sha256.New))

	tampered := *proof
	tampered.Commitment = proof.Commitment.Add(c.BasePoint())
	require.ErrorIs(t, tampered.Verify(c, sha256.New), ErrChallengeMismatch)

	tampered = *proof
	tampered.Z1 = proof.Z1.Add(c.ScalarFromUint32(1))
	require.ErrorIs(t, tampered.Verify(c, sha256.New), ErrProofInvalid)
}

func TestPedersenBlindingProof(t *testing.T) {
	c := secp256k1.NewCurve()

	value := c.ScalarFromUint32(7)
	blinding, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)

	proof, err := ProvePedersenBlinding(rand.Reader, c, sha256.New, value, blinding)
	require.NoError(t, err)
	require.True(t, proof.Value.Eq(value))
	require.True(t, proof.Commitment.Equals(commitments.PedersenCommit(c, value, blinding)))
	require.NoError(t, proof.Verify(c, sha256.New))

	// The public value is bound by the transcript.
	tampered := *proof
	tampered.Value = c.ScalarFromUint32(8)
	require.ErrorIs(t, tampered.Verify(c, sha256.New), ErrChallengeMismatch)

	tampered = *proof
	tampered.Z = proof.Z.Add(c.ScalarFromUint32(1))
	require.ErrorIs(t, tampered.Verify(c, sha256.New), ErrProofInvalid)
}

func homoElGamalStatement(t *testing.T, c types.Curve, sameGenerators bool, w HomoElGamalWitness) HomoElGamalStatement {
	t.Helper()

	st := HomoElGamalStatement{G: c.BasePoint()}
	if sameGenerators {
		st.H = c.BasePoint()
	} else {
		h, err := c.NewRandomScalar(rand.Reader)
		require.NoError(t, err)
		st.H = c.ScalarBaseMul(h)
	}

	y, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	st.Y = c.ScalarBaseMul(y)

	st.D = st.H.ScalarMul(w.X).Add(st.Y.ScalarMul(w.R))
	st.E = st.G.ScalarMul(w.R)
	return st
}

func TestHomoElGamalProof(t *testing.T) {
	for _, curve := range curves.All() {
		c := curve
		t.Run(c.Name(), func(t *testing.T) {
			x, err := c.NewRandomScalar(rand.Reader)
			require.NoError(t, err)
			r, err := c.NewRandomScalar(rand.Reader)
			require.NoError(t, err)
			witness := HomoElGamalWitness{X: x, R: r}

			st := homoElGamalStatement(t, c, false, witness)
			proof, err := ProveHomoElGamal(rand.Reader, c, sha256.New, witness, st)
			require.NoError(t, err)
			require.NoError(t, proof.Verify(c, sha256.New, st))

			// H = G is the standard ElGamal encryption in the exponent.
			st = homoElGamalStatement(t, c, true, witness)
			proof, err = ProveHomoElGamal(rand.Reader, c, sha256.New, witness, st)
			require.NoError(t, err)
			require.NoError(t, proof.Verify(c, sha256.New, st))
		})
	}
}

func TestHomoElGamalProof_Invalid(t *testing.T) {
	c := secp256k1.NewCurve()

	x, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	r, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	witness := HomoElGamalWitness{X: x, R: r}
	st := homoElGamalStatement(t, c, false, witness)

	proof, err := ProveHomoElGamal(rand.Reader, c, sha256.New, witness, st)
	require.NoError(t, err)

	// Swapping the ciphertext pair changes the transcript.
	swapped := st
	swapped.D, swapped.E = st.E, st.D
	require.ErrorIs(t, proof.Verify(c, sha256.New, swapped), ErrChallengeMismatch)

	// Proving with the wrong witness fails the equations.
	badWitness := HomoElGamalWitness{X: x.Add(c.ScalarFromUint32(1)), R: r}
	badProof, err := ProveHomoElGamal(rand.Reader, c, sha256.New, badWitness, st)
	require.NoError(t, err)
	require.ErrorIs(t, badProof.Verify(c, sha256.New, st), ErrProofInvalid)
}

func ldeiGenerators(t *testing.T, c types.Curve, n int) []types.Point {
	t.Helper()

	g := make([]types.Point, n)
	for i := range g {
		s, err := c.NewRandomScalar(rand.Reader)
		require.NoError(t, err)
		g[i] = c.ScalarBaseMul(s)
	}
	return g
}

func ldeiAlphas(c types.Curve, n int) []types.Scalar {
	alpha := make([]types.Scalar, n)
	for i := range alpha {
		alpha[i] = c.ScalarFromUint32(uint32(i + 1))
	}
	return alpha
}

func TestLDEIProof(t *testing.T) {
	for _, curve := range curves.All() {
		c := curve
		t.Run(c.Name(), func(t *testing.T) {
			const d = 5
			witness, err := polynomial.Sample(rand.Reader, c, polynomial.Finite(d))
			require.NoError(t, err)

			st, err := NewLDEIStatement(witness, ldeiAlphas(c, 10), ldeiGenerators(t, c, 10), d)
			require.NoError(t, err)

			proof, err := ProveLDEI(rand.Reader, c, sha256.New, witness, st)
			require.NoError(t, err)
			require.NoError(t, proof.Verify(c, sha256.New, st))
		})
	}
}

func TestLDEIStatement_Invalid(t *testing.T) {
	c := secp256k1.NewCurve()

	witness, err := polynomial.Sample(rand.Reader, c, polynomial.Finite(6))
	require.NoError(t, err)
	_, err = NewLDEIStatement(witness, ldeiAlphas(c, 10), ldeiGenerators(t, c, 10), 5)
	require.ErrorIs(t, err, ErrDegreeTooHigh)

	witness, err = polynomial.Sample(rand.Reader, c, polynomial.Finite(5))
	require.NoError(t, err)

	_, err = NewLDEIStatement(witness, ldeiAlphas(c, 9), ldeiGenerators(t, c, 10), 5)
	require.Error(t, err)

	dup := ldeiAlphas(c, 10)
	dup[9] = dup[0]
	_, err = NewLDEIStatement(witness, dup, ldeiGenerators(t, c, 10), 5)
	require.ErrorIs(t, err, polynomial.ErrDuplicateX)
}

func TestLDEIProof_Invalid(t *testing.T) {
	c := secp256k1.NewCurve()

	const d = 5
	witness, err := polynomial.Sample(rand.Reader, c, polynomial.Finite(d))
	require.NoError(t, err)

	st, err := NewLDEIStatement(witness, ldeiAlphas(c, 10), ldeiGenerators(t, c, 10), d)
	require.NoError(t, err)

	// The statement points must match the witness.
	other, err := polynomial.Sample(rand.Reader, c, polynomial.Finite(d))
	require.NoError(t, err)
	_, err = ProveLDEI(rand.Reader, c, sha256.New, other, st)
	require.Error(t, err)

	proof, err := ProveLDEI(rand.Reader, c, sha256.New, witness, st)
	require.NoError(t, err)

	tampered := *proof
	tampered.A = append([]types.Point{}, proof.A...)
	tampered.A[0] = proof.A[0].Add(c.BasePoint())
	require.ErrorIs(t, tampered.Verify(c, sha256.New, st), ErrChallengeMismatch)

	tampered = *proof
	tampered.Z = proof.Z.MulScalar(c.ScalarFromUint32(2))
	require.ErrorIs(t, tampered.Verify(c, sha256.New, st), ErrProofInvalid)
}
