package bls12381

import (
	"encoding/hex"
	"testing"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/types"
)

func TestBasePoint(t *testing.T) {
	c := NewCurve()

	_, _, g1, _ := bls.Generators()
	enc := g1.Bytes()
	require.Equal(t, enc[:], c.BasePoint().Encode())

	require.Equal(t,
		"97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb",
		hex.EncodeToString(c.BasePoint().Encode()),
	)
}

func TestIdentityEncoding(t *testing.T) {
	c := NewCurve()

	enc := c.Identity().Encode()
	expected := make([]byte, compressedPointSize)
	expected[0] = 0xc0
	require.Equal(t, expected, enc)

	id, err := c.DecodeToPoint(enc)
	require.NoError(t, err)
	require.True(t, id.IsZero())
}

func TestDecodeToPoint_RejectsNonSubgroup(t *testing.T) {
	c := NewCurve()

	// (0, 2) is on the curve but has order three
	b := make([]byte, compressedPointSize)
	b[0] = 0x80
	_, err := c.DecodeToPoint(b)
	require.ErrorIs(t, err, types.ErrNotInSubgroup)
}

func TestDecodeToPoint_Invalid(t *testing.T) {
	c := NewCurve()

	// infinity flag with a nonzero body
	b := make([]byte, compressedPointSize)
	for i := range b {
		b[i] = 0xff
	}
	_, err := c.DecodeToPoint(b)
	require.ErrorIs(t, err, types.ErrInvalidPointEncoding)

	// uncompressed flag on a compressed-length input
	b = make([]byte, compressedPointSize)
	b[0] = 0x0a
	_, err = c.DecodeToPoint(b)
	require.ErrorIs(t, err, types.ErrInvalidPointEncoding)
}
