package bitstring

import (
	"testing"

	"github.com/dercert/derx509/types"
	"github.com/stretchr/testify/require"
)

func encodeBytes(t *testing.T, blob types.BitBlob) []byte {
	t.Helper()
	n, err := Encode(blob, nil)
	require.NoError(t, err)
	buf := make([]byte, n)
	written, err := Encode(blob, buf)
	require.NoError(t, err)
	require.Equal(t, n, written)

	return buf
}

func TestEncode_Scenario(t *testing.T) {
	blob := types.BitBlob{
		ByteBlob:           types.ByteBlob{Bytes: []byte{0xFF, 0xC0}},
		UnusedTrailingBits: 6,
	}
	require.Equal(t, []byte{0x03, 0x03, 0x06, 0xFF, 0xC0}, encodeBytes(t, blob))
}

func TestDecode_MasksUnusedBits(t *testing.T) {
	blob, consumed, err := Decode([]byte{0x03, 0x02, 0x07, 0xFF})
	require.NoError(t, err)
	require.Equal(t, 4, consumed)
	require.Equal(t, uint(7), blob.UnusedTrailingBits)
	require.Equal(t, []byte{0x80}, blob.Bytes)
}

func TestRoundTrip(t *testing.T) {
	blob := types.BitBlob{
		ByteBlob:           types.ByteBlob{Bytes: []byte{0xFF, 0xC0}},
		UnusedTrailingBits: 6,
	}
	buf := encodeBytes(t, blob)

	got, _, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, blob, got)

	// Re-encoding the decoded value reproduces the same bytes (idempotence).
	buf2 := encodeBytes(t, got)
	require.Equal(t, buf, buf2)
}

func TestEncode_UnusedGreaterThanEight(t *testing.T) {
	// 2 bytes, unused=10 means effective content is ceil((16-10)/8)=1 byte,
	// with 2 wire-unused bits.
	blob := types.BitBlob{
		ByteBlob:           types.ByteBlob{Bytes: []byte{0xFF, 0xC0}},
		UnusedTrailingBits: 10,
	}
	buf := encodeBytes(t, blob)
	require.Equal(t, []byte{0x03, 0x02, 0x02, 0xFC}, buf)
}
