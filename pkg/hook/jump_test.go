package hook

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpEncoding(t *testing.T) {
	patch, err := jumpTo(0x1000, 0x2000)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE9, 0xFB, 0x0F, 0x00, 0x00}, patch[:])

	patch, err = jumpTo(0x2000, 0x1000)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE9, 0xFB, 0xEF, 0xFF, 0xFF}, patch[:])
}

func TestJumpRoundTrip(t *testing.T) {
	cases := []struct{ site, dest uintptr }{
		{0x1000, 0x1000},
		{0x1000, 0x1005},
		{0x77215a30, 0x10001000},
		{0x10001000, 0x77215a30},
	}
	for _, c := range cases {
		patch, err := jumpTo(c.site, c.dest)
		require.NoError(t, err)
		assert.Equal(t, byte(opJmpRel32), patch[0])
		disp := int32(binary.LittleEndian.Uint32(patch[1:]))
		landed := uintptr(int64(c.site) + PatchSize + int64(disp))
		assert.Equal(t, c.dest, landed, "site %#x dest %#x", c.site, c.dest)
	}
}

func TestJumpDisplacementOverflow(t *testing.T) {
	assert.False(t, reachable(0, 0xFFFFFFF0))
	_, err := jumpTo(0, 0xFFFFFFF0)
	assert.ErrorIs(t, err, ErrDisplacement)

	assert.True(t, reachable(0x1000, 0x1000+0x7FFFF000))
}
