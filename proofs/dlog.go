package proofs

import (
	"hash"
	"io"

	"github.com/ZenGo-X/curv/types"
)

// DLogProof is a Schnorr proof of knowledge of the discrete log of
// Public with respect to the curve's base point.
type DLogProof struct {
	Public     types.Point
	Commitment types.Point
	Challenge  types.Scalar
	Response   types.Scalar
}

// ProveDLog proves knowledge of witness x for the point g^x.
func ProveDLog(rand io.Reader, curve types.Curve, newHash func() hash.Hash, witness types.Scalar) (*DLogProof, error) {
	k, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}

	public := curve.ScalarBaseMul(witness)
	commitment := curve.ScalarBaseMul(k)

	e, err := challengeScalar(curve, newHash, curve.BasePoint(), public, commitment)
	if err != nil {
		return nil, err
	}

	return &DLogProof{
		Public:     public,
		Commitment: commitment,
		Challenge:  e,
		Response:   k.Add(e.Mul(witness)),
	}, nil
}

// Verify checks that g^response == commitment + challenge*public for the
// transcript's challenge.
func (p *DLogProof) Verify(curve types.Curve, newHash func() hash.Hash) error {
	e, err := challengeScalar(curve, newHash, curve.BasePoint(), p.Public, p.Commitment)
	if err != nil {
		return err
	}
	if !e.Eq(p.Challenge) {
		return ErrChallengeMismatch
	}

	lhs := curve.ScalarBaseMul(p.Response)
	rhs := p.Commitment.Add(curve.ScalarMul(e, p.Public))
	if !lhs.Equals(rhs) {
		return ErrProofInvalid
	}
	return nil
}
