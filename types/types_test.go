package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBlob_Len(t *testing.T) {
	require.Equal(t, 0, ByteBlob{}.Len())
	require.Equal(t, 3, ByteBlob{Bytes: []byte{1, 2, 3}}.Len())
}

func TestStringKind_String(t *testing.T) {
	cases := map[StringKind]string{
		KindNumeric:     "Numeric",
		KindPrintable:   "Printable",
		KindIA5:         "IA5",
		KindUnsupported: "Unsupported",
		KindUnspecified: "Unspecified",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}
