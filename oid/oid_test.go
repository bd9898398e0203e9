package oid

import (
	"testing"

	"github.com/dercert/derx509/errs"
	"github.com/stretchr/testify/require"
)

func encodeBytes(t *testing.T, dotted string) []byte {
	t.Helper()
	n, err := Encode(dotted, nil)
	require.NoError(t, err)
	buf := make([]byte, n)
	written, err := Encode(dotted, buf)
	require.NoError(t, err)
	require.Equal(t, n, written)

	return buf
}

func TestEncode_RSAEncryption(t *testing.T) {
	// 1.2.840.113549.1.1.11 (sha256WithRSAEncryption)
	buf := encodeBytes(t, "1.2.840.113549.1.1.11")
	require.Equal(t,
		[]byte{0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B},
		buf)
}

func TestRoundTrip(t *testing.T) {
	for _, dotted := range []string{
		"2.5.4.3",
		"1.2.840.113549.1.1.11",
		"1.3.6.1.4.1.311.21.20",
		"0.0",
	} {
		buf := encodeBytes(t, dotted)
		got, consumed, err := Decode(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), consumed)
		require.Equal(t, dotted, got)
	}
}

// TestOidCodec_Arc0x80Boundary pins the corrected arc-size threshold at the
// 0x80 boundary (spec.md §9 note 3): an arc strictly below 0x80 fits in one
// base-128 byte, and the arc exactly at 0x80 requires two.
func TestOidCodec_Arc0x80Boundary(t *testing.T) {
	below := encodeBytes(t, "2.5.127")
	require.Equal(t, []byte{0x06, 0x02, 0x55, 0x7F}, below)

	at := encodeBytes(t, "2.5.128")
	require.Equal(t, []byte{0x06, 0x03, 0x55, 0x81, 0x00}, at)
}

func TestEncode_InvalidParameter(t *testing.T) {
	_, err := Encode("not-an-oid", nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Encode("1", nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestDecode_CorruptContinuation(t *testing.T) {
	// Final byte still has the continuation bit set.
	_, _, err := Decode([]byte{0x06, 0x02, 0x2A, 0x86})
	require.ErrorIs(t, err, errs.ErrCorrupt)
}

func TestEncode_BufferTooSmall(t *testing.T) {
	buf := make([]byte, 3)
	_, err := Encode("1.2.840.113549.1.1.11", buf)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}
