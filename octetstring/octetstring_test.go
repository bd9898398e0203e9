package octetstring

import (
	"testing"

	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/types"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	blob := types.ByteBlob{Bytes: []byte{0xDE, 0xAD, 0xBE, 0xEF}}

	n, err := Encode(blob, nil)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	buf := make([]byte, n)
	written, err := Encode(blob, buf)
	require.NoError(t, err)
	require.Equal(t, n, written)
	require.Equal(t, []byte{0x04, 0x04, 0xDE, 0xAD, 0xBE, 0xEF}, buf)

	got, consumed, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, blob, got)
}

func TestEncode_ZeroLength(t *testing.T) {
	blob := types.ByteBlob{}

	n, err := Encode(blob, nil)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	buf := make([]byte, n)
	_, err = Encode(blob, buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x00}, buf)

	got, consumed, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 2, consumed)
	require.Equal(t, 0, got.Len())
}

func TestEncode_BufferTooSmall(t *testing.T) {
	blob := types.ByteBlob{Bytes: []byte{0x01, 0x02}}

	buf := make([]byte, 1)
	_, err := Encode(blob, buf)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestDecode_BadTag(t *testing.T) {
	_, _, err := Decode([]byte{0x02, 0x01, 0x00})
	require.ErrorIs(t, err, errs.ErrBadTag)
}

func TestDecodeNoCopy_Aliases(t *testing.T) {
	buf := []byte{0x04, 0x02, 0xAA, 0xBB}

	got, consumed, err := DecodeNoCopy(buf)
	require.NoError(t, err)
	require.Equal(t, 4, consumed)
	require.Equal(t, []byte{0xAA, 0xBB}, got.Bytes)

	// Mutating the source buffer's content bytes is visible through the
	// aliased blob, confirming no copy was made.
	buf[2] = 0xFF
	require.Equal(t, byte(0xFF), got.Bytes[0])
}
