// Package proofs implements the sigma protocols the higher level
// primitives rely on: Schnorr proofs of discrete log knowledge, Pedersen
// opening proofs, homomorphic ElGamal correctness and low degree
// exponent interpolation.
//
// All challenges are derived by Fiat-Shamir over the statement followed
// by the prover's commitment material, using a caller supplied hash.
// Every proof carries its challenge: Verify recomputes it from the
// transcript before checking the protocol equations, so a rejected proof
// reports whether the transcript or the algebra was at fault.
package proofs

import (
	"errors"
	"hash"

	"github.com/ZenGo-X/curv/hashing"
	"github.com/ZenGo-X/curv/types"
)

var (
	// ErrChallengeMismatch is returned when the challenge carried by a
	// proof does not match the one recomputed from the transcript.
	ErrChallengeMismatch = errors.New("proof challenge does not match transcript")

	// ErrProofInvalid is returned when the protocol equations do not hold.
	ErrProofInvalid = errors.New("proof equations do not hold")
)

func challengeScalar(curve types.Curve, newHash func() hash.Hash, transcript ...types.Point) (types.Scalar, error) {
	return hashing.New(newHash).ChainPoints(transcript...).ResultScalar(curve)
}
