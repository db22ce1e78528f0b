package p256

import (
	"crypto/elliptic"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/types"
)

func TestBasePoint(t *testing.T) {
	c := NewCurve()
	g := c.BasePoint()

	require.Equal(t,
		"036b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		hex.EncodeToString(g.Encode()),
	)

	params := elliptic.P256().Params()

	x, err := g.XCoord()
	require.NoError(t, err)
	require.Equal(t, 0, params.Gx.Cmp(x))

	y, err := g.YCoord()
	require.NoError(t, err)
	require.Equal(t, 0, params.Gy.Cmp(y))
}

func TestIdentityEncoding(t *testing.T) {
	c := NewCurve()

	enc := c.Identity().Encode()
	require.Equal(t, make([]byte, compressedPointSize), enc)

	id, err := c.DecodeToPoint(enc)
	require.NoError(t, err)
	require.True(t, id.IsZero())
	require.True(t, id.Add(c.BasePoint()).Equals(c.BasePoint()))
}

func TestDecodeToPoint_Invalid(t *testing.T) {
	c := NewCurve()

	// uncompressed prefix on a compressed-length input
	b := c.BasePoint().Encode()
	b[0] = 0x04
	_, err := c.DecodeToPoint(b)
	require.ErrorIs(t, err, types.ErrInvalidPointEncoding)

	// x above the field prime
	b = make([]byte, compressedPointSize)
	b[0] = 0x02
	for i := 1; i < len(b); i++ {
		b[i] = 0xff
	}
	_, err = c.DecodeToPoint(b)
	require.ErrorIs(t, err, types.ErrInvalidPointEncoding)
}
