// Package octetstring implements the DER OCTET STRING codec (spec.md
// §4.3): content copied verbatim, zero-length allowed.
package octetstring

import (
	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/dercert/derx509/types"
)

// Encode writes blob as a DER OCTET STRING.
func Encode(blob types.ByteBlob, out []byte) (int, error) {
	return dertlv.Encode(dertag.OctetString, blob.Bytes, out)
}

// Decode parses a DER OCTET STRING into a ByteBlob. In nocopy mode
// (spec.md §4.1) callers should alias content directly instead of
// copying; DecodeNoCopy does exactly that.
func Decode(data []byte) (types.ByteBlob, int, error) {
	content, consumed, err := dertlv.Decode(dertag.OctetString, data)
	if err != nil {
		return types.ByteBlob{}, 0, err
	}

	cp := make([]byte, len(content))
	copy(cp, content)

	return types.ByteBlob{Bytes: cp}, consumed, nil
}

// DecodeNoCopy parses a DER OCTET STRING, aliasing the returned blob's
// bytes directly into data rather than copying. The returned blob's
// lifetime is bounded by data's, per spec.md §4.1's nocopy mode.
func DecodeNoCopy(data []byte) (types.ByteBlob, int, error) {
	content, consumed, err := dertlv.Decode(dertag.OctetString, data)
	if err != nil {
		return types.ByteBlob{}, 0, err
	}

	return types.ByteBlob{Bytes: content}, consumed, nil
}
