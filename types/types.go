// Package types defines the concrete Go representations of the external
// structures described in spec.md §3. These are plain data carriers; all
// encode/decode behavior lives in the codec packages that operate on them.
package types

// ByteBlob is an ordered sequence of octets, used for raw integer blobs,
// octet strings, and other data-blob payloads.
type ByteBlob struct {
	Bytes []byte
}

// Len returns the number of bytes in the blob.
func (b ByteBlob) Len() int {
	return len(b.Bytes)
}

// BitBlob is a ByteBlob plus a count of unused trailing bits. Per spec.md
// §4.3, UnusedTrailingBits is not constrained to [0,7] on input — encoders
// reduce it modulo 8 and drop whole unused trailing bytes accordingly.
type BitBlob struct {
	ByteBlob
	UnusedTrailingBits uint
}

// IntBlob is a ByteBlob whose bytes carry a little-endian integer in
// memory; signedness is per-operation (spec.md §3).
type IntBlob struct {
	Bytes []byte
}

// StringKind identifies the ASN.1 string type carried by a NameValue.
type StringKind uint8

const (
	// KindUnspecified is the zero value; never a legal wire kind.
	KindUnspecified StringKind = iota
	// KindNumeric is ASN.1 NumericString.
	KindNumeric
	// KindPrintable is ASN.1 PrintableString.
	KindPrintable
	// KindIA5 is ASN.1 IA5String.
	KindIA5
	// KindUnsupported marks a kind the decoder recognizes on the wire but
	// has no encoder/decoder support for (spec.md §3: "future others
	// marked explicitly unsupported").
	KindUnsupported
)

func (k StringKind) String() string {
	switch k {
	case KindNumeric:
		return "Numeric"
	case KindPrintable:
		return "Printable"
	case KindIA5:
		return "IA5"
	case KindUnsupported:
		return "Unsupported"
	default:
		return "Unspecified"
	}
}

// NameValue is a typed string value: a StringKind discriminator plus its
// content bytes.
type NameValue struct {
	Kind  StringKind
	Value ByteBlob
}

// RdnAttr is one typed attribute of a RelativeDistinguishedName: an OID
// plus an embedded NameValue. Per spec.md §9, RdnAttr holds its NameValue
// by composition rather than by the source's pointer-cast binary-compatible
// tail trick.
type RdnAttr struct {
	Oid   string
	Value NameValue
}

// Rdn is an ordered sequence of RdnAttr. On the wire it is a SET OF: order
// does not affect the equivalence of the decoded value, but DER encoding
// demands the elements be sorted by their encoded bytes (spec.md §3
// invariant 4).
type Rdn struct {
	Attrs []RdnAttr
}

// Name is an ordered sequence of Rdn. On the wire it is a SEQUENCE OF:
// decoded order equals wire order.
type Name struct {
	Rdns []Rdn
}

// Timestamp is a calendar instant with an optional wire timezone offset.
// Decoders produce a Timestamp with the offset already folded into the
// wall-clock fields (spec.md §4.5: "interpret the parsed fields as a UTC
// calendar instant after applying the offset").
type Timestamp struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Milliseconds         int
	TZOffsetMinutes      int  // signed minutes east of UTC; 0 if TZ absent or "Z"
	HasTZ                bool // true if a timezone was present on the wire
}
