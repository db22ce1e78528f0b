package proofs

import (
	"hash"
	"io"

	"github.com/ZenGo-X/curv/commitments"
	"github.com/ZenGo-X/curv/types"
)

// PedersenProof proves knowledge of an opening (value, blinding) of the
// carried Pedersen commitment without revealing either.
type PedersenProof struct {
	Commitment types.Point
	A          types.Point
	Challenge  types.Scalar
	Z1         types.Scalar
	Z2         types.Scalar
}

// ProvePedersen commits to value with the given blinding and proves
// knowledge of the opening.
func ProvePedersen(rand io.Reader, curve types.Curve, newHash func() hash.Hash, value, blinding types.Scalar) (*PedersenProof, error) {
	k1, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}
	k2, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	com := commitments.PedersenCommit(curve, value, blinding)
	a := curve.ScalarBaseMul(k1).Add(curve.ScalarMul(k2, curve.AltBasePoint()))

	e, err := challengeScalar(curve, newHash, curve.BasePoint(), curve.AltBasePoint(), com, a)
	if err != nil {
		return nil, err
	}

	return &PedersenProof{
		Commitment: com,
		A:          a,
		Challenge:  e,
		Z1:         k1.Add(e.Mul(value)),
		Z2:         k2.Add(e.Mul(blinding)),
	}, nil
}

// Verify checks that g^z1 + h^z2 == A + challenge*commitment for the
// transcript's challenge.
func (p *PedersenProof) Verify(curve types.Curve, newHash func() hash.Hash) error {
	e, err := challengeScalar(curve, newHash, curve.BasePoint(), curve.AltBasePoint(), p.Commitment, p.A)
	if err != nil {
		return err
	}
	if !e.Eq(p.Challenge) {
		return ErrChallengeMismatch
	}

	lhs := curve.ScalarBaseMul(p.Z1).Add(curve.ScalarMul(p.Z2, curve.AltBasePoint()))
	rhs := p.A.Add(curve.ScalarMul(e, p.Commitment))
	if !lhs.Equals(rhs) {
		return ErrProofInvalid
	}
	return nil
}

// PedersenBlindingProof proves knowledge of the blinding r of a Pedersen
// commitment to a public value: Commitment = g^value * h^r with value
// known to the verifier.
type PedersenBlindingProof struct {
	Value      types.Scalar
	Commitment types.Point
	A          types.Point
	Challenge  types.Scalar
	Z          types.Scalar
}

// ProvePedersenBlinding commits to the public value with the given
// blinding and proves knowledge of the blinding alone.
func ProvePedersenBlinding(rand io.Reader, curve types.Curve, newHash func() hash.Hash, value, blinding types.Scalar) (*PedersenBlindingProof, error) {
	k, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	com := commitments.PedersenCommit(curve, value, blinding)
	a := curve.ScalarMul(k, curve.AltBasePoint())

	e, err := challengeScalar(curve, newHash, curve.BasePoint(), curve.AltBasePoint(), com, curve.ScalarBaseMul(value), a)
	if err != nil {
		return nil, err
	}

	return &PedersenBlindingProof{
		Value:      value,
		Commitment: com,
		A:          a,
		Challenge:  e,
		Z:          k.Add(e.Mul(blinding)),
	}, nil
}

// Verify checks that h^z + challenge*(g^value) == A + challenge*commitment
// for the transcript's challenge.
func (p *PedersenBlindingProof) Verify(curve types.Curve, newHash func() hash.Hash) error {
	valuePoint := curve.ScalarBaseMul(p.Value)

	e, err := challengeScalar(curve, newHash, curve.BasePoint(), curve.AltBasePoint(), p.Commitment, valuePoint, p.A)
	if err != nil {
		return err
	}
	if !e.Eq(p.Challenge) {
		return ErrChallengeMismatch
	}

	lhs := curve.ScalarMul(p.Z, curve.AltBasePoint()).Add(curve.ScalarMul(e, valuePoint))
	rhs := p.A.Add(curve.ScalarMul(e, p.Commitment))
	if !lhs.Equals(rhs) {
		return ErrProofInvalid
	}
	return nil
}
