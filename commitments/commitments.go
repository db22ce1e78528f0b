// Package commitments implements the two commitment schemes the higher
// level protocols build on: hash commitments with a random 256-bit
// blinding, and Pedersen commitments over a curve.
package commitments

import (
	"crypto/subtle"
	"hash"
	"io"

	"github.com/ZenGo-X/curv/types"
)

// BlindingSize is the byte length of hash commitment blinding factors.
const BlindingSize = 32

// NewBlinding draws a fresh blinding factor for a hash commitment.
func NewBlinding(rand io.Reader) ([]byte, error) {
	blinding := make([]byte, BlindingSize)
	if _, err := io.ReadFull(rand, blinding); err != nil {
		return nil, err
	}
	return blinding, nil
}

// HashCommit commits to a message as H(message || blinding).
func HashCommit(newHash func() hash.Hash, message, blinding []byte) []byte {
	h := newHash()
	h.Write(message)
	h.Write(blinding)
	return h.Sum(nil)
}

// HashOpen checks a hash commitment against an opening. The comparison
// is constant time.
func HashOpen(newHash func() hash.Hash, commitment, message, blinding []byte) bool {
	expected := HashCommit(newHash, message, blinding)
	return subtle.ConstantTimeCompare(commitment, expected) == 1
}

// PedersenCommit commits to a scalar as g^value * h^blinding, where h is
// the curve's alternate generator with unknown discrete log.
func PedersenCommit(curve types.Curve, value, blinding types.Scalar) types.Point {
	vg := curve.ScalarBaseMul(value)
	rh := curve.ScalarMul(blinding, curve.AltBasePoint())
	return vg.Add(rh)
}

// PedersenOpen checks a Pedersen commitment against an opening.
func PedersenOpen(curve types.Curve, commitment types.Point, value, blinding types.Scalar) bool {
	return commitment.Equals(PedersenCommit(curve, value, blinding))
}
