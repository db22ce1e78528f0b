package proofs

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/curves"
	"github.com/ZenGo-X/curv/polynomial"
	"github.com/ZenGo-X/curv/secp256k1"
)

func TestDLogProof_Serde(t *testing.T) {
	for _, curve := range curves.All() {
		c := curve
		t.Run(c.Name(), func(t *testing.T) {
			witness, err := c.NewRandomScalar(rand.Reader)
			require.NoError(t, err)
			proof, err := ProveDLog(rand.Reader, c, sha256.New, witness)
			require.NoError(t, err)

			ser := proof.Serialize()
			t.Logf("size of serialized proof: %d bytes", len(ser))

			decoded := new(DLogProof)
			require.NoError(t, decoded.Deserialize(c, ser))
			require.True(t, decoded.Public.Equals(proof.Public))
			require.True(t, decoded.Commitment.Equals(proof.Commitment))
			require.True(t, decoded.Challenge.Eq(proof.Challenge))
			require.True(t, decoded.Response.Eq(proof.Response))
			require.NoError(t, decoded.Verify(c, sha256.New))

			require.ErrorIs(t, new(DLogProof).Deserialize(c, ser[:len(ser)-1]), errInputBytesTooShort)
		})
	}
}

func TestPedersenProof_Serde(t *testing.T) {
	c := secp256k1.NewCurve()

	value, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	blinding, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	proof, err := ProvePedersen(rand.Reader, c, sha256.New, value, blinding)
	require.NoError(t, err)

	ser := proof.Serialize()
	t.Logf("size of serialized proof: %d bytes", len(ser))

	decoded := new(PedersenProof)
	require.NoError(t, decoded.Deserialize(c, ser))
	require.NoError(t, decoded.Verify(c, sha256.New))

	require.ErrorIs(t, new(PedersenProof).Deserialize(c, ser[:10]), errInputBytesTooShort)
}

func TestPedersenBlindingProof_Serde(t *testing.T) {
	c := secp256k1.NewCurve()

	value := c.ScalarFromUint32(99)
	blinding, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	proof, err := ProvePedersenBlinding(rand.Reader, c, sha256.New, value, blinding)
	require.NoError(t, err)

	ser := proof.Serialize()
	t.Logf("size of serialized proof: %d bytes", len(ser))

	decoded := new(PedersenBlindingProof)
	require.NoError(t, decoded.Deserialize(c, ser))
	require.True(t, decoded.Value.Eq(value))
	require.NoError(t, decoded.Verify(c, sha256.New))

	require.ErrorIs(t, new(PedersenBlindingProof).Deserialize(c, nil), errInputBytesTooShort)
}

func TestHomoElGamalProof_Serde(t *testing.T) {
	c := secp256k1.NewCurve()

	x, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	r, err := c.NewRandomScalar(rand.Reader)
	require.NoError(t, err)
	witness := HomoElGamalWitness{X: x, R: r}
	st := homoElGamalStatement(t, c, false, witness)

	proof, err := ProveHomoElGamal(rand.Reader, c, sha256.New, witness, st)
	require.NoError(t, err)

	ser := proof.Serialize()
	t.Logf("size of serialized proof: %d bytes", len(ser))

	decoded := new(HomoElGamalProof)
	require.NoError(t, decoded.Deserialize(c, ser))
	require.NoError(t, decoded.Verify(c, sha256.New, st))

	require.ErrorIs(t, new(HomoElGamalProof).Deserialize(c, ser[:len(ser)-1]), errInputBytesTooShort)
}

func TestLDEIProof_Serde(t *testing.T) {
	c := secp256k1.NewCurve()

	const d = 5
	witness, err := polynomial.Sample(rand.Reader, c, polynomial.Finite(d))
	require.NoError(t, err)
	st, err := NewLDEIStatement(witness, ldeiAlphas(c, 10), ldeiGenerators(t, c, 10), d)
	require.NoError(t, err)
	proof, err := ProveLDEI(rand.Reader, c, sha256.New, witness, st)
	require.NoError(t, err)

	ser := proof.Serialize()
	t.Logf("size of serialized proof: %d bytes", len(ser))

	decoded := new(LDEIProof)
	require.NoError(t, decoded.Deserialize(c, ser))
	require.Len(t, decoded.A, len(proof.A))
	require.True(t, decoded.Challenge.Eq(proof.Challenge))
	require.NoError(t, decoded.Verify(c, sha256.New, st))

	require.ErrorIs(t, new(LDEIProof).Deserialize(c, ser[:len(ser)-1]), errInputBytesTooShort)
	require.ErrorIs(t, new(LDEIProof).Deserialize(c, nil), errInputBytesTooShort)
}
