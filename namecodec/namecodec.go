// Package namecodec implements the Distinguished Name codec (spec.md
// §4.6): NameValue, RdnAttr (SEQUENCE{OID,STRING}), Rdn (SET OF RdnAttr,
// DER-sorted), and Name (SEQUENCE OF Rdn).
//
// Per spec.md §9's "Cross-codec shape sharing" note, RdnAttr holds its
// NameValue by composition (see types.RdnAttr) rather than by the
// source's pointer-cast binary-compatible tail. Decoded value bytes are
// laid out contiguously in an internal/arena allocation per §9's
// "Contiguous output layouts" note, standing in for the source's raw
// pointer arithmetic over one packed output buffer: one arena per
// DecodeNameValue, DecodeRdnAttr or DecodeRdn call. DecodeName decodes
// each Rdn into its own arena, and OID strings and records are not
// placed in an arena.
package namecodec

import (
	"bytes"
	"sort"

	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/internal/arena"
	"github.com/dercert/derx509/oid"
	"github.com/dercert/derx509/types"
)

// EncodeNameValue writes nv as its CHOICE-tagged DER string type.
func EncodeNameValue(nv types.NameValue, out []byte) (int, error) {
	tag, err := tagForKind(nv.Kind)
	if err != nil {
		return 0, err
	}
	if err := validateKind(nv.Kind, nv.Value.Bytes); err != nil {
		return 0, err
	}

	return dertlv.Encode(tag, nv.Value.Bytes, out)
}

// DecodeNameValue parses a CHOICE-tagged DER string into a NameValue.
// Unrecognized string tags decode with Kind set to
// types.KindUnsupported rather than failing, per spec.md §3's note that
// future kinds are "marked explicitly unsupported".
func DecodeNameValue(data []byte) (types.NameValue, int, error) {
	a := arena.New(len(data))
	return decodeNameValueInto(a, data)
}

func decodeNameValueInto(a *arena.Arena, data []byte) (types.NameValue, int, error) {
	tag, content, consumed, err := dertlv.DecodeAny(data)
	if err != nil {
		return types.NameValue{}, 0, err
	}

	off := a.Write(content)
	value := types.ByteBlob{Bytes: a.Bytes(off, len(content))}

	return types.NameValue{Kind: kindForTag(tag), Value: value}, consumed, nil
}

func tagForKind(kind types.StringKind) (byte, error) {
	switch kind {
	case types.KindNumeric:
		return dertag.NumericString, nil
	case types.KindPrintable:
		return dertag.PrintableString, nil
	case types.KindIA5:
		return dertag.IA5String, nil
	default:
		return 0, errs.At(errs.ErrUnsupported, 0)
	}
}

func kindForTag(tag byte) types.StringKind {
	switch tag {
	case dertag.NumericString:
		return types.KindNumeric
	case dertag.PrintableString:
		return types.KindPrintable
	case dertag.IA5String:
		return types.KindIA5
	default:
		return types.KindUnsupported
	}
}

// EncodeRdnAttr writes attr as SEQUENCE { OID, STRING }.
func EncodeRdnAttr(attr types.RdnAttr, out []byte) (int, error) {
	oidSize, err := oid.Size(attr.Oid)
	if err != nil {
		return 0, err
	}

	valueSize, err := EncodeNameValue(attr.Value, nil)
	if err != nil {
		return 0, err
	}

	content := make([]byte, oidSize+valueSize)
	if _, err := oid.Encode(attr.Oid, content[:oidSize]); err != nil {
		return 0, err
	}
	if _, err := EncodeNameValue(attr.Value, content[oidSize:]); err != nil {
		return 0, err
	}

	return dertlv.Encode(dertag.Sequence, content, out)
}

// DecodeRdnAttr parses a SEQUENCE { OID, STRING } into an RdnAttr.
func DecodeRdnAttr(data []byte) (types.RdnAttr, int, error) {
	a := arena.New(len(data))
	return decodeRdnAttrInto(a, data)
}

func decodeRdnAttrInto(a *arena.Arena, data []byte) (types.RdnAttr, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Sequence, data)
	if err != nil {
		return types.RdnAttr{}, 0, err
	}

	oidStr, oidConsumed, err := oid.Decode(content)
	if err != nil {
		return types.RdnAttr{}, 0, err
	}

	value, _, err := decodeNameValueInto(a, content[oidConsumed:])
	if err != nil {
		return types.RdnAttr{}, 0, err
	}

	return types.RdnAttr{Oid: oidStr, Value: value}, consumed, nil
}

// EncodeRdn writes rdn as SET OF RdnAttr. Each child is encoded into its
// own scratch buffer, the buffers are sorted lexicographically by byte
// comparison (shorter-is-less on a tie, per bytes.Compare's prefix
// behavior), and concatenated in sorted order — the DER SET OF
// canonicalization rule (spec.md §4.6).
func EncodeRdn(rdn types.Rdn, out []byte) (int, error) {
	bufs, err := encodeEach(rdn.Attrs, EncodeRdnAttr)
	if err != nil {
		return 0, err
	}

	sort.Slice(bufs, func(i, j int) bool {
		return bytes.Compare(bufs[i], bufs[j]) < 0
	})

	return dertlv.Encode(dertag.SetOf, concat(bufs), out)
}

// DecodeRdn parses a SET OF RdnAttr into an Rdn. Children are scanned in
// wire order without assuming they are sorted.
func DecodeRdn(data []byte) (types.Rdn, int, error) {
	content, consumed, err := dertlv.Decode(dertag.SetOf, data)
	if err != nil {
		return types.Rdn{}, 0, err
	}

	a := arena.New(len(content))
	var attrs []types.RdnAttr
	off := 0
	for off < len(content) {
		attr, n, err := decodeRdnAttrInto(a, content[off:])
		if err != nil {
			return types.Rdn{}, 0, err
		}

		attrs = append(attrs, attr)
		off += n
	}

	return types.Rdn{Attrs: attrs}, consumed, nil
}

// EncodeName writes name as SEQUENCE OF Rdn. Unlike EncodeRdn, element
// order is preserved as given; a SEQUENCE OF has no sort requirement.
func EncodeName(name types.Name, out []byte) (int, error) {
	bufs, err := encodeEach(name.Rdns, EncodeRdn)
	if err != nil {
		return 0, err
	}

	return dertlv.Encode(dertag.Sequence, concat(bufs), out)
}

// DecodeName parses a SEQUENCE OF Rdn into a Name.
func DecodeName(data []byte) (types.Name, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Sequence, data)
	if err != nil {
		return types.Name{}, 0, err
	}

	var rdns []types.Rdn
	off := 0
	for off < len(content) {
		rdn, n, err := DecodeRdn(content[off:])
		if err != nil {
			return types.Name{}, 0, err
		}

		rdns = append(rdns, rdn)
		off += n
	}

	return types.Name{Rdns: rdns}, consumed, nil
}

// encodeEach encodes every item via enc into its own tight buffer.
func encodeEach[T any](items []T, enc func(T, []byte) (int, error)) ([][]byte, error) {
	bufs := make([][]byte, len(items))
	for i, item := range items {
		n, err := enc(item, nil)
		if err != nil {
			return nil, err
		}

		buf := make([]byte, n)
		if _, err := enc(item, buf); err != nil {
			return nil, err
		}

		bufs[i] = buf
	}

	return bufs, nil
}

func concat(bufs [][]byte) []byte {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}

	out := make([]byte, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}

	return out
}
