// Package bitstring implements the DER BIT STRING codec (spec.md §4.3):
// wire format "tag · length · unusedBits · contentBytes" where unusedBits
// is folded to the range [0,7] and the trailing unused bits are masked to
// zero.
package bitstring

import (
	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/types"
)

// Encode writes blob as a DER BIT STRING.
//
// If blob.UnusedTrailingBits is 8 or more, whole trailing bytes are
// dropped so the wire unused-bit count falls back into [0,7]: effective
// content length is ceil((8*len(blob.Bytes) - UnusedTrailingBits) / 8),
// per spec.md §4.3. The final content byte has its unused bits masked to
// zero.
func Encode(blob types.BitBlob, out []byte) (int, error) {
	contentLen, wireUnused := effectiveLayout(blob)
	content := make([]byte, 1+contentLen)
	content[0] = byte(wireUnused)
	copy(content[1:], blob.Bytes[:contentLen])
	if contentLen > 0 && wireUnused > 0 {
		content[contentLen] &= 0xFF << wireUnused
	}

	return dertlv.Encode(dertag.BitString, content, out)
}

// Size reports the bytes Encode would write for blob, without writing
// anything. Equivalent to calling Encode(blob, nil).
func Size(blob types.BitBlob) (int, error) {
	return Encode(blob, nil)
}

// effectiveLayout folds UnusedTrailingBits into the wire's [0,7] range and
// computes how many content bytes survive the fold.
func effectiveLayout(blob types.BitBlob) (contentLen int, wireUnused int) {
	totalBits := 8 * len(blob.Bytes)
	bitsUsed := totalBits - int(blob.UnusedTrailingBits)
	if bitsUsed < 0 {
		bitsUsed = 0
	}

	contentLen = (bitsUsed + 7) / 8
	wireUnused = int(blob.UnusedTrailingBits) % 8

	return contentLen, wireUnused
}

// Decode parses a DER BIT STRING into a BitBlob.
//
// The decoded UnusedTrailingBits is the wire byte verbatim (spec.md §4.3:
// "set the blob's unusedTrailingBits to the wire byte verbatim"), and the
// final content byte is masked to zero out its unused bits.
func Decode(data []byte) (types.BitBlob, int, error) {
	content, consumed, err := dertlv.Decode(dertag.BitString, data)
	if err != nil {
		return types.BitBlob{}, 0, err
	}
	if len(content) == 0 {
		return types.BitBlob{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	unused := content[0]
	if unused > 7 {
		return types.BitBlob{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	body := make([]byte, len(content)-1)
	copy(body, content[1:])
	if len(body) > 0 && unused > 0 {
		body[len(body)-1] &= 0xFF << unused
	}

	return types.BitBlob{
		ByteBlob:           types.ByteBlob{Bytes: body},
		UnusedTrailingBits: uint(unused),
	}, consumed, nil
}
