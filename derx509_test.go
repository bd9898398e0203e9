package derx509

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOid_RoundTrip(t *testing.T) {
	n, err := EncodeOid("1.2.840.113549.1.1.11", nil)
	require.NoError(t, err)

	buf := make([]byte, n)
	_, err = EncodeOid("1.2.840.113549.1.1.11", buf)
	require.NoError(t, err)

	got, consumed, err := DecodeOid(buf)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, "1.2.840.113549.1.1.11", got)
}

func TestEncodeDecodeName_RoundTrip(t *testing.T) {
	name := Name{Rdns: []Rdn{
		{Attrs: []RdnAttr{{
			Oid: "2.5.4.3",
			Value: NameValue{
				Kind:  KindPrintable,
				Value: ByteBlob{Bytes: []byte("example.com")},
			},
		}}},
	}}

	n, err := EncodeName(name, nil)
	require.NoError(t, err)

	buf := make([]byte, n)
	_, err = EncodeName(name, buf)
	require.NoError(t, err)

	got, consumed, err := DecodeName(buf)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Len(t, got.Rdns, 1)
	require.Equal(t, "2.5.4.3", got.Rdns[0].Attrs[0].Oid)
}

func TestNewDispatcher_Default(t *testing.T) {
	d, err := NewDispatcher()
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestEncodeChoiceOfTime_PicksUTCTimeTag(t *testing.T) {
	n, err := EncodeChoiceOfTime(Timestamp{Year: 2025, Month: 6, Day: 1}, nil)
	require.NoError(t, err)

	buf := make([]byte, n)
	_, err = EncodeChoiceOfTime(Timestamp{Year: 2025, Month: 6, Day: 1}, buf)
	require.NoError(t, err)
	require.Equal(t, byte(0x17), buf[0])
}
