// Package hashing builds digest transcripts over curve points, scalars and
// big integers, and converts digests to scalars of a target curve.
package hashing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash"
	"math/big"

	"github.com/ZenGo-X/curv/types"
)

var (
	// ErrDigestTooShort is returned when the digest output is shorter
	// than the target curve's scalar size.
	ErrDigestTooShort = errors.New("digest output shorter than the curve scalar size")

	// ErrExhausted is returned when no counter produces a canonical
	// scalar. Reaching it indicates a broken digest function.
	ErrExhausted = errors.New("exhausted hash-to-scalar counters")
)

// maxAttempts bounds the try-and-increment loop in ResultScalar.
const maxAttempts = 256

// Digest accumulates a preimage and hashes it on demand, so that
// ResultScalar can rehash with a fresh counter on every attempt.
type Digest struct {
	newHash  func() hash.Hash
	preimage bytes.Buffer
}

// New returns a Digest backed by the given hash constructor, for example
// sha256.New.
func New(newHash func() hash.Hash) *Digest {
	return &Digest{newHash: newHash}
}

func (d *Digest) ChainBytes(b []byte) *Digest {
	d.preimage.Write(b)
	return d
}

// ChainBigInt appends the minimal big-endian encoding of v.
func (d *Digest) ChainBigInt(v *big.Int) *Digest {
	return d.ChainBytes(v.Bytes())
}

func (d *Digest) ChainScalar(s types.Scalar) *Digest {
	return d.ChainBytes(s.Encode())
}

func (d *Digest) ChainScalars(ss ...types.Scalar) *Digest {
	for _, s := range ss {
		d.ChainScalar(s)
	}
	return d
}

func (d *Digest) ChainPoint(p types.Point) *Digest {
	return d.ChainBytes(p.Encode())
}

func (d *Digest) ChainPoints(ps ...types.Point) *Digest {
	for _, p := range ps {
		d.ChainPoint(p)
	}
	return d
}

// Sum hashes the accumulated preimage.
func (d *Digest) Sum() []byte {
	h := d.newHash()
	h.Write(d.preimage.Bytes())
	return h.Sum(nil)
}

// ResultBigInt interprets the digest as a big-endian integer.
func (d *Digest) ResultBigInt() *big.Int {
	return new(big.Int).SetBytes(d.Sum())
}

// ResultScalar converts the digest to a scalar of the given curve by try
// and increment: the preimage is rehashed with an incrementing big-endian
// 32-bit counter appended until the digest, truncated to the curve's
// scalar size, is a canonical scalar.
func (d *Digest) ResultScalar(curve types.Curve) (types.Scalar, error) {
	size := curve.ScalarSize()
	if d.newHash().Size() < size {
		return nil, ErrDigestTooShort
	}

	var counter [4]byte
	for i := 0; i < maxAttempts; i++ {
		binary.BigEndian.PutUint32(counter[:], uint32(i))

		h := d.newHash()
		h.Write(d.preimage.Bytes())
		h.Write(counter[:])

		s, err := curve.DecodeToScalar(h.Sum(nil)[:size])
		if err == nil {
			return s, nil
		}
	}

	return nil, ErrExhausted
}

// DigestBigInt hashes b and interprets the digest as a big-endian integer.
func DigestBigInt(newHash func() hash.Hash, b []byte) *big.Int {
	return New(newHash).ChainBytes(b).ResultBigInt()
}
