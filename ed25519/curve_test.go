package ed25519

import (
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	"github.com/ZenGo-X/curv/types"
)

// orderTwoEncoding is the point (0, -1), which is on the curve but has
// order two.
func orderTwoEncoding() []byte {
	b := make([]byte, compressedPointSize)
	b[0] = 0xec
	for i := 1; i < 31; i++ {
		b[i] = 0xff
	}
	b[31] = 0x7f
	return b
}

func TestBasePoint(t *testing.T) {
	c := NewCurve()
	require.Equal(t,
		"5866666666666666666666666666666666666666666666666666666666666666",
		hex.EncodeToString(c.BasePoint().Encode()),
	)
}

func TestIdentityEncoding(t *testing.T) {
	c := NewCurve()

	enc := c.Identity().Encode()
	expected := make([]byte, compressedPointSize)
	expected[0] = 0x01
	require.Equal(t, expected, enc)

	id, err := c.DecodeToPoint(enc)
	require.NoError(t, err)
	require.True(t, id.IsZero())
}

func TestScalarEncoding_BigEndian(t *testing.T) {
	c := NewCurve()

	enc := c.ScalarFromUint32(1).Encode()
	expected := make([]byte, scalarSize)
	expected[scalarSize-1] = 0x01
	require.Equal(t, expected, enc)

	s, err := c.DecodeToScalar(enc)
	require.NoError(t, err)
	require.True(t, s.Eq(c.ScalarFromUint32(1)))
}

func TestDecodeToPoint_RejectsTorsion(t *testing.T) {
	c := NewCurve()

	_, err := c.DecodeToPoint(orderTwoEncoding())
	require.ErrorIs(t, err, types.ErrNotInSubgroup)

	// (sqrt(-1), 0) has order four and encodes as all zero bytes
	_, err = c.DecodeToPoint(make([]byte, compressedPointSize))
	require.ErrorIs(t, err, types.ErrNotInSubgroup)
}

func TestIsTorsionFree(t *testing.T) {
	g := edwards25519.NewGeneratorPoint()
	require.True(t, isTorsionFree(g))
	require.True(t, isTorsionFree(edwards25519.NewIdentityPoint()))

	torsion, err := new(edwards25519.Point).SetBytes(orderTwoEncoding())
	require.NoError(t, err)
	require.False(t, isTorsionFree(torsion))

	mixed := new(edwards25519.Point).Add(g, torsion)
	require.False(t, isTorsionFree(mixed))
}

func TestAltBasePoint_TorsionFree(t *testing.T) {
	c := NewCurve()

	// decoding runs the torsion check
	p, err := c.DecodeToPoint(c.AltBasePoint().Encode())
	require.NoError(t, err)
	require.True(t, p.Equals(c.AltBasePoint()))
}
