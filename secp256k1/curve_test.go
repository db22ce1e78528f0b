package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/types"
)

func TestBasePoint(t *testing.T) {
	c := NewCurve()
	g := c.BasePoint()

	require.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(g.Encode()),
	)

	x, err := g.XCoord()
	require.NoError(t, err)
	require.Equal(t,
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(x.Bytes()),
	)

	y, err := g.YCoord()
	require.NoError(t, err)
	require.Equal(t,
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		hex.EncodeToString(y.Bytes()),
	)
}

func TestAltBasePoint(t *testing.T) {
	c := NewCurve()
	require.Equal(t,
		"0250929b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac0",
		hex.EncodeToString(c.AltBasePoint().Encode()),
	)
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

	// prefix other than 0x02/0x03
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
