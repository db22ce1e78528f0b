package twoparty

import (
	"hash"
	"io"

	"github.com/ZenGo-X/curv/commitments"
	"github.com/ZenGo-X/curv/proofs"
	"github.com/ZenGo-X/curv/types"
)

// KeyPair is one party's ephemeral key for a Diffie-Hellman exchange.
type KeyPair struct {
	Public types.Point
	secret types.Scalar
}

// NewKeyPair draws a fresh key pair on the curve.
func NewKeyPair(rand io.Reader, curve types.Curve) (*KeyPair, error) {
	secret, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: curve.ScalarBaseMul(secret), secret: secret}, nil
}

// SharedSecret computes the Diffie-Hellman point from the other party's
// public share.
func (kp *KeyPair) SharedSecret(other types.Point) types.Point {
	return other.ScalarMul(kp.secret)
}

// DHCommitment is the committing party's first message: hash commitments
// to its public share and to its knowledge proof commitment, under
// independent blindings.
type DHCommitment struct {
	PKCommitment    []byte
	ProofCommitment []byte
}

// DHDecommitment opens a DHCommitment. The public share travels inside
// the proof.
type DHDecommitment struct {
	PKBlinding    []byte
	ProofBlinding []byte
	Proof         *proofs.DLogProof
}

// DHParty1 is the committing party's state between the commit and
// decommit rounds.
type DHParty1 struct {
	curve        types.Curve
	newHash      func() hash.Hash
	keyPair      *KeyPair
	decommitment *DHDecommitment
}

// DHCommit starts a committed exchange: it draws a key pair, proves
// knowledge of the secret and hash-commits to the public share and the
// proof commitment point. The commitments bind party 1's share before it
// has seen party 2's, so neither side can bias the result.
func DHCommit(rand io.Reader, curve types.Curve, newHash func() hash.Hash) (*DHParty1, *DHCommitment, error) {
	kp, err := NewKeyPair(rand, curve)
	if err != nil {
		return nil, nil, err
	}

	proof, err := proofs.ProveDLog(rand, curve, newHash, kp.secret)
	if err != nil {
		return nil, nil, err
	}

	pkBlinding, err := commitments.NewBlinding(rand)
	if err != nil {
		return nil, nil, err
	}
	proofBlinding, err := commitments.NewBlinding(rand)
	if err != nil {
		return nil, nil, err
	}

	party1 := &DHParty1{
		curve:   curve,
		newHash: newHash,
		keyPair: kp,
		decommitment: &DHDecommitment{
			PKBlinding:    pkBlinding,
			ProofBlinding: proofBlinding,
			Proof:         proof,
		},
	}
	commitment := &DHCommitment{
		PKCommitment:    commitments.HashCommit(newHash, proof.Public.Encode(), pkBlinding),
		ProofCommitment: commitments.HashCommit(newHash, proof.Commitment.Encode(), proofBlinding),
	}
	return party1, commitment, nil
}

// DHRespond answers a committed exchange as party 2 with a fresh share
// and a proof of knowledge of it.
func DHRespond(rand io.Reader, curve types.Curve, newHash func() hash.Hash) (*KeyPair, *proofs.DLogProof, error) {
	kp, err := NewKeyPair(rand, curve)
	if err != nil {
		return nil, nil, err
	}

	proof, err := proofs.ProveDLog(rand, curve, newHash, kp.secret)
	if err != nil {
		return nil, nil, err
	}
	return kp, proof, nil
}

// Decommit verifies party 2's knowledge proof and releases the opening
// of party 1's commitments.
func (p *DHParty1) Decommit(party2Proof *proofs.DLogProof) (*DHDecommitment, error) {
	if err := party2Proof.Verify(p.curve, p.newHash); err != nil {
		return nil, err
	}
	return p.decommitment, nil
}

// SharedSecret computes the Diffie-Hellman point from party 2's public
// share.
func (p *DHParty1) SharedSecret(other types.Point) types.Point {
	return p.keyPair.SharedSecret(other)
}

// DHVerifyDecommitment finishes the exchange as party 2: both hash
// commitments must open to the revealed share and proof commitment, and
// the knowledge proof must verify.
func DHVerifyDecommitment(curve types.Curve, newHash func() hash.Hash, commitment *DHCommitment, decommitment *DHDecommitment) error {
	if !commitments.HashOpen(newHash, commitment.PKCommitment, decommitment.Proof.Public.Encode(), decommitment.PKBlinding) {
		return ErrCommitmentOpenFailed
	}
	if !commitments.HashOpen(newHash, commitment.ProofCommitment, decommitment.Proof.Commitment.Encode(), decommitment.ProofBlinding) {
		return ErrCommitmentOpenFailed
	}
	return decommitment.Proof.Verify(curve, newHash)
}
