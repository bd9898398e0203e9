// Package integer implements the DER codecs for spec.md §4.3's INTEGER and
// ENUMERATED structures: the fixed-width signed 32-bit integer, the
// arbitrary-precision signed and unsigned big integers, and enumerated
// values (which share the unsigned fixed-width codec under a different
// tag, per spec.md §4.3).
package integer

import (
	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/dercert/derx509/endian"
	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/types"
)

// EncodeFixed encodes a signed 32-bit integer as a minimal DER INTEGER.
func EncodeFixed(v int32, out []byte) (int, error) {
	content := minimalSigned(fixedBigEndian(v))
	return dertlv.Encode(dertag.Integer, content, out)
}

// DecodeFixed decodes a DER INTEGER into a signed 32-bit integer.
//
// Returns the value, the number of bytes consumed (tag + length +
// content), and an error. Rejects content longer than 4 bytes with
// errs.ErrTooLarge and zero-length content with errs.ErrCorrupt, per
// spec.md §4.3.
func DecodeFixed(data []byte) (int32, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Integer, data)
	if err != nil {
		return 0, 0, err
	}
	if len(content) == 0 {
		return 0, 0, errs.At(errs.ErrCorrupt, 0)
	}
	if len(content) > 4 {
		return 0, 0, errs.At(errs.ErrTooLarge, 0)
	}

	return decodeFixedSigned(content), consumed, nil
}

// EncodeBigSigned encodes an arbitrary-precision signed integer. blob.Bytes
// carries the value little-endian, already in two's complement form; the
// codec reverses it to big-endian and strips redundant padding.
func EncodeBigSigned(blob types.IntBlob, out []byte) (int, error) {
	content := minimalSigned(reversed(blob.Bytes))
	return dertlv.Encode(dertag.Integer, content, out)
}

// DecodeBigSigned decodes a DER INTEGER into a signed IntBlob. Per
// spec.md §4.3, decode preserves any pad byte present on the wire: the
// content bytes are reversed into the blob verbatim, unlike
// DecodeBigUnsigned which drops a leading pad.
func DecodeBigSigned(data []byte) (types.IntBlob, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Integer, data)
	if err != nil {
		return types.IntBlob{}, 0, err
	}
	if len(content) == 0 {
		return types.IntBlob{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	return types.IntBlob{Bytes: reversed(content)}, consumed, nil
}

// EncodeBigUnsigned encodes an arbitrary-precision non-negative integer.
// blob.Bytes carries the magnitude little-endian; the codec always treats
// it as non-negative and adds a 0x00 pad if the top byte's high bit would
// otherwise be read as a sign.
func EncodeBigUnsigned(blob types.IntBlob, out []byte) (int, error) {
	content := minimalUnsigned(reversed(blob.Bytes))
	return dertlv.Encode(dertag.Integer, content, out)
}

// DecodeBigUnsigned decodes a DER INTEGER into an unsigned IntBlob,
// dropping exactly one leading 0x00 pad byte if present.
func DecodeBigUnsigned(data []byte) (types.IntBlob, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Integer, data)
	if err != nil {
		return types.IntBlob{}, 0, err
	}
	if len(content) == 0 {
		return types.IntBlob{}, 0, errs.At(errs.ErrCorrupt, 0)
	}
	if len(content) > 1 && content[0] == 0x00 {
		content = content[1:]
	}

	return types.IntBlob{Bytes: reversed(content)}, consumed, nil
}

// EncodeEnumerated encodes v as a DER ENUMERATED. Identical to the
// unsigned fixed-width integer codec except for the tag octet
// (spec.md §4.3); implementers may share the integer codec and rewrite
// the tag, which is exactly what this does.
func EncodeEnumerated(v uint32, out []byte) (int, error) {
	content := minimalUnsigned(fixedBigEndianUnsigned(v))
	return dertlv.Encode(dertag.Enumerated, content, out)
}

// DecodeEnumerated decodes a DER ENUMERATED into a uint32.
func DecodeEnumerated(data []byte) (uint32, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Enumerated, data)
	if err != nil {
		return 0, 0, err
	}
	if len(content) == 0 {
		return 0, 0, errs.At(errs.ErrCorrupt, 0)
	}

	v, err := decodeUnsignedNativeWidth(content)
	if err != nil {
		return 0, 0, err
	}

	return v, consumed, nil
}

// decodeUnsignedNativeWidth decodes a minimal DER unsigned integer content
// into a uint32, allowing the one extra 0x00 pad byte a fully-populated
// 32-bit magnitude requires to avoid being misread as negative. Content
// exceeding that native width fails errs.ErrTooLarge.
func decodeUnsignedNativeWidth(content []byte) (uint32, error) {
	if len(content) == 5 && content[0] == 0x00 {
		content = content[1:]
	}
	if len(content) > 4 {
		return 0, errs.At(errs.ErrTooLarge, 0)
	}

	return decodeFixedUnsigned(content), nil
}

// --- byte-order and minimality helpers ---

// fixedBigEndian returns the big-endian two's complement bytes of v.
func fixedBigEndian(v int32) []byte {
	engine := endian.GetLittleEndianEngine()
	le := engine.AppendUint32(nil, uint32(v)) //nolint:gosec
	return reversed(le)
}

// fixedBigEndianUnsigned returns the big-endian bytes of v.
func fixedBigEndianUnsigned(v uint32) []byte {
	engine := endian.GetLittleEndianEngine()
	le := engine.AppendUint32(nil, v)
	return reversed(le)
}

// reversed returns a copy of b with byte order reversed.
func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}

// minimalSigned strips redundant leading 0x00/0xFF pad bytes from a
// big-endian two's complement byte sequence, stopping as soon as removing
// one more byte would flip the represented sign (spec.md §3 invariant 2).
func minimalSigned(b []byte) []byte {
	for len(b) > 1 {
		if b[0] == 0x00 && b[1]&0x80 == 0 {
			b = b[1:]
			continue
		}
		if b[0] == 0xFF && b[1]&0x80 != 0 {
			b = b[1:]
			continue
		}

		break
	}

	return b
}

// minimalUnsigned strips redundant leading 0x00 bytes from a big-endian
// magnitude, then adds back exactly one 0x00 pad if the top bit of the
// result would otherwise read as a sign bit.
func minimalUnsigned(b []byte) []byte {
	for len(b) > 1 && b[0] == 0x00 {
		b = b[1:]
	}

	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}

	return b
}

// decodeFixedSigned sign-extends content into a 4-byte big-endian buffer
// and reads it back through the big-endian engine.
func decodeFixedSigned(content []byte) int32 {
	var buf [4]byte
	if content[0]&0x80 != 0 {
		for i := range buf {
			buf[i] = 0xFF
		}
	}
	copy(buf[4-len(content):], content)

	engine := endian.GetBigEndianEngine()

	return int32(engine.Uint32(buf[:])) //nolint:gosec
}

// decodeFixedUnsigned zero-extends content into a 4-byte big-endian buffer
// and reads it back through the big-endian engine.
func decodeFixedUnsigned(content []byte) uint32 {
	var buf [4]byte
	copy(buf[4-len(content):], content)

	return endian.GetBigEndianEngine().Uint32(buf[:])
}
