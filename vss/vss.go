// Package vss implements Feldman verifiable secret sharing. A dealer
// splits a scalar into n shares of which any threshold+1 reconstruct it,
// and publishes commitments to the sharing polynomial so that every
// party can check the share it received.
package vss

import (
	"errors"
	"fmt"
	"io"

	"github.com/ZenGo-X/curv/polynomial"
	"github.com/ZenGo-X/curv/types"
)

var (
	// ErrInvalidThreshold is returned when the threshold does not leave
	// room for at least one share beyond it.
	ErrInvalidThreshold = errors.New("threshold must be smaller than the share count")

	// ErrInsufficientShares is returned when fewer than threshold+1
	// shares are supplied for reconstruction.
	ErrInsufficientShares = errors.New("not enough shares to reconstruct the secret")
)

// Params fixes a (threshold, share count) sharing. Threshold is the
// degree of the sharing polynomial: any Threshold+1 shares reconstruct
// the secret, any fewer reveal nothing.
type Params struct {
	Threshold  int
	ShareCount int
}

// Share is one party's piece of the secret. Index is the 1-based
// evaluation point the share was issued at.
type Share struct {
	Index uint32
	Value types.Scalar
}

// Scheme is the public output of dealing: the parameters and the
// commitments g^{a_i} to the coefficients of the sharing polynomial.
type Scheme struct {
	Params      Params
	Curve       types.Curve
	Commitments []types.Point
}

// Share deals the secret into ShareCount shares at the evaluation points
// 1..ShareCount.
func (p Params) Share(rand io.Reader, curve types.Curve, secret types.Scalar) (*Scheme, []Share, error) {
	if p.Threshold < 0 || p.Threshold >= p.ShareCount {
		return nil, nil, ErrInvalidThreshold
	}

	indices := make([]uint32, p.ShareCount)
	for i := range indices {
		indices[i] = uint32(i + 1)
	}
	return p.ShareAtIndices(rand, curve, secret, indices)
}

// ShareAtIndices deals the secret like Share but at caller-chosen
// evaluation points, one per share. Indices must be nonzero and pairwise
// distinct: the polynomial evaluates to the secret itself at zero.
func (p Params) ShareAtIndices(rand io.Reader, curve types.Curve, secret types.Scalar, indices []uint32) (*Scheme, []Share, error) {
	if p.Threshold < 0 || p.Threshold >= p.ShareCount {
		return nil, nil, ErrInvalidThreshold
	}
	if len(indices) != p.ShareCount {
		return nil, nil, fmt.Errorf("got %d indices for %d shares", len(indices), p.ShareCount)
	}

	seen := make(map[uint32]struct{}, len(indices))
	for _, index := range indices {
		if index == 0 {
			return nil, nil, errors.New("share indices must be nonzero")
		}
		if _, ok := seen[index]; ok {
			return nil, nil, fmt.Errorf("duplicate share index %d", index)
		}
		seen[index] = struct{}{}
	}

	poly, err := polynomial.SampleWithConstTerm(rand, curve, p.Threshold, secret)
	if err != nil {
		return nil, nil, err
	}

	coeffs := poly.Coefficients()
	commitments := make([]types.Point, len(coeffs))
	for i, a := range coeffs {
		commitments[i] = curve.ScalarBaseMul(a)
	}

	shares := make([]Share, len(indices))
	for i, index := range indices {
		shares[i] = Share{
			Index: index,
			Value: poly.Evaluate(curve.ScalarFromUint32(index)),
		}
	}

	return &Scheme{Params: p, Curve: curve, Commitments: commitments}, shares, nil
}

// ReconstructLimit returns the number of shares needed to reconstruct,
// threshold+1.
func (s *Scheme) ReconstructLimit() int {
	return s.Params.Threshold + 1
}

// PointCommitment evaluates the committed polynomial in the exponent at
// the given index, yielding g^{f(index)} without knowing f.
func (s *Scheme) PointCommitment(index uint32) types.Point {
	x := s.Curve.ScalarFromUint32(index)
	acc := s.Commitments[len(s.Commitments)-1]
	for i := len(s.Commitments) - 2; i >= 0; i-- {
		acc = acc.ScalarMul(x).Add(s.Commitments[i])
	}
	return acc
}

// ValidateShare reports whether the share is consistent with the dealt
// commitments, i.e. g^{value} == g^{f(index)}.
func (s *Scheme) ValidateShare(share Share) bool {
	return s.ValidateSharePublic(share.Index, s.Curve.ScalarBaseMul(share.Value))
}

// ValidateSharePublic is ValidateShare for a party that only sees the
// public point g^{value} of the share.
func (s *Scheme) ValidateSharePublic(index uint32, public types.Point) bool {
	return public.Equals(s.PointCommitment(index))
}

// Reconstruct recovers the secret from at least threshold+1 shares by
// Lagrange interpolation at zero. Duplicate share indices are rejected.
func (s *Scheme) Reconstruct(shares []Share) (types.Scalar, error) {
	if len(shares) < s.ReconstructLimit() {
		return nil, ErrInsufficientShares
	}

	points := make([]types.Scalar, len(shares))
	values := make([]types.Scalar, len(shares))
	for i, share := range shares {
		points[i] = s.Curve.ScalarFromUint32(share.Index)
		values[i] = share.Value
	}
	return polynomial.InterpolateAtZero(s.Curve, points, values)
}

// MapShareToNewParams returns the Lagrange coefficient at zero for the
// given index within the subset of participating indices. Multiplying a
// share by it turns a threshold share into an additive share of the
// secret among the subset.
func (s *Scheme) MapShareToNewParams(index uint32, subset []uint32) (types.Scalar, error) {
	pos := -1
	xs := make([]types.Scalar, len(subset))
	for i, idx := range subset {
		xs[i] = s.Curve.ScalarFromUint32(idx)
		if idx == index {
			pos = i
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("index %d is not in the subset", index)
	}

	return polynomial.LagrangeBasis(s.Curve, s.Curve.ScalarFromUint32(0), pos, xs)
}
