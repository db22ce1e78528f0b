package twoparty

import (
	"hash"
	"io"
	"math/big"

	"github.com/ZenGo-X/curv/proofs"
	"github.com/ZenGo-X/curv/types"
)

// CoinFlipParty1 is the committing party's state between the commit and
// reveal rounds of a coin flip.
type CoinFlipParty1 struct {
	curve    types.Curve
	newHash  func() hash.Hash
	seed     types.Scalar
	blinding types.Scalar
}

// CoinFlipCommit starts a coin flip: party 1 Pedersen-commits to a
// random seed and proves knowledge of the opening.
func CoinFlipCommit(rand io.Reader, curve types.Curve, newHash func() hash.Hash) (*CoinFlipParty1, *proofs.PedersenProof, error) {
	seed, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, nil, err
	}
	blinding, err := curve.NewRandomScalar(rand)
	if err != nil {
		return nil, nil, err
	}

	proof, err := proofs.ProvePedersen(rand, curve, newHash, seed, blinding)
	if err != nil {
		return nil, nil, err
	}

	party1 := &CoinFlipParty1{
		curve:    curve,
		newHash:  newHash,
		seed:     seed,
		blinding: blinding,
	}
	return party1, proof, nil
}

// CoinFlipRespond verifies party 1's commitment proof and draws party
// 2's seed, which is sent back in the clear.
func CoinFlipRespond(rand io.Reader, curve types.Curve, newHash func() hash.Hash, commitProof *proofs.PedersenProof) (types.Scalar, error) {
	if err := commitProof.Verify(curve, newHash); err != nil {
		return nil, err
	}
	return curve.NewRandomScalar(rand)
}

// Reveal opens party 1's commitment by proving knowledge of the blinding
// for the now-public seed, and computes party 1's view of the result.
func (p *CoinFlipParty1) Reveal(rand io.Reader, party2Seed types.Scalar) (*proofs.PedersenBlindingProof, types.Scalar, error) {
	proof, err := proofs.ProvePedersenBlinding(rand, p.curve, p.newHash, p.seed, p.blinding)
	if err != nil {
		return nil, nil, err
	}
	return proof, combineSeeds(p.curve, p.seed, party2Seed), nil
}

// CoinFlipFinalize computes party 2's view of the result. The reveal
// must verify and must open the commitment party 1 originally sent;
// otherwise the flip is aborted.
func CoinFlipFinalize(curve types.Curve, newHash func() hash.Hash, reveal *proofs.PedersenBlindingProof, party2Seed types.Scalar, commitment types.Point) (types.Scalar, error) {
	if err := reveal.Verify(curve, newHash); err != nil {
		return nil, err
	}
	if !reveal.Commitment.Equals(commitment) {
		return nil, ErrCommitmentOpenFailed
	}
	return combineSeeds(curve, reveal.Value, party2Seed), nil
}

// combineSeeds folds both parties' seeds into the shared result by
// xoring them and mapping back into the scalar field.
func combineSeeds(curve types.Curve, a, b types.Scalar) types.Scalar {
	return curve.ScalarFromBigInt(new(big.Int).Xor(a.BigInt(), b.BigInt()))
}
