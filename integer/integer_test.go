package integer

import (
	"errors"
	"testing"

	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/types"
	"github.com/stretchr/testify/require"
)

func encodeFixedBytes(t *testing.T, v int32) []byte {
	t.Helper()
	n, err := EncodeFixed(v, nil)
	require.NoError(t, err)
	buf := make([]byte, n)
	written, err := EncodeFixed(v, buf)
	require.NoError(t, err)
	require.Equal(t, n, written)

	return buf
}

func TestEncodeFixed_127(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01, 0x7F}, encodeFixedBytes(t, 127))
}

func TestEncodeFixed_128(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x02, 0x00, 0x80}, encodeFixedBytes(t, 128))
}

func TestEncodeFixed_NegativeOne(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01, 0xFF}, encodeFixedBytes(t, -1))
}

func TestEncodeFixed_Zero(t *testing.T) {
	require.Equal(t, []byte{0x02, 0x01, 0x00}, encodeFixedBytes(t, 0))
}

func TestRoundTrip_Fixed(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, 128, -128, -129, 255, 256, -32768, 2147483647, -2147483648} {
		buf := encodeFixedBytes(t, v)
		got, consumed, err := DecodeFixed(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), consumed)
	}
}

func TestDecodeFixed_TooLarge(t *testing.T) {
	_, _, err := DecodeFixed([]byte{0x02, 0x05, 1, 2, 3, 4, 5})
	require.True(t, errors.Is(err, errs.ErrTooLarge))
}

func TestDecodeFixed_ZeroLengthCorrupt(t *testing.T) {
	_, _, err := DecodeFixed([]byte{0x02, 0x00})
	require.True(t, errors.Is(err, errs.ErrCorrupt))
}

func TestDecodeFixed_BadTag(t *testing.T) {
	_, _, err := DecodeFixed([]byte{0x03, 0x01, 0x01})
	require.True(t, errors.Is(err, errs.ErrBadTag))
}

func TestBigSigned_RoundTrip_PreservesPad(t *testing.T) {
	// little-endian [0x80, 0x00] reversed is big-endian [0x00, 0x80]; the 0x00
	// pad stays because 0x80 has its high bit set.
	blob := types.IntBlob{Bytes: []byte{0x80, 0x00}}
	n, err := EncodeBigSigned(blob, nil)
	require.NoError(t, err)
	buf := make([]byte, n)
	_, err = EncodeBigSigned(blob, buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x02, 0x00, 0x80}, buf)

	got, consumed, err := DecodeBigSigned(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, blob.Bytes, got.Bytes)
}

func TestBigUnsigned_AddsPad(t *testing.T) {
	// magnitude 0x80 (little-endian single byte) needs a 0x00 pad.
	blob := types.IntBlob{Bytes: []byte{0x80}}
	n, err := EncodeBigUnsigned(blob, nil)
	require.NoError(t, err)
	buf := make([]byte, n)
	_, err = EncodeBigUnsigned(blob, buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x02, 0x00, 0x80}, buf)

	got, _, err := DecodeBigUnsigned(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, got.Bytes)
}

func TestBigUnsigned_NoPadNeeded(t *testing.T) {
	blob := types.IntBlob{Bytes: []byte{0x7F}}
	n, _ := EncodeBigUnsigned(blob, nil)
	buf := make([]byte, n)
	_, err := EncodeBigUnsigned(blob, buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01, 0x7F}, buf)
}

func TestEnumerated_RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 255, 256, 0xFFFFFFFF} {
		n, err := EncodeEnumerated(v, nil)
		require.NoError(t, err)
		buf := make([]byte, n)
		_, err = EncodeEnumerated(v, buf)
		require.NoError(t, err)
		require.Equal(t, byte(0x0A), buf[0])

		got, consumed, err := DecodeEnumerated(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), consumed)
	}
}

func TestEnumerated_TooLarge(t *testing.T) {
	_, _, err := DecodeEnumerated([]byte{0x0A, 0x05, 1, 2, 3, 4, 5})
	require.True(t, errors.Is(err, errs.ErrTooLarge))
}
