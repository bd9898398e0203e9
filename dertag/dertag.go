// Package dertag holds the universal-class ASN.1 tag octets this codec's
// fixed menu of structures uses. Non-goals (spec.md §1) exclude tag
// classes other than universal for the built-in types, so this is the
// complete set.
package dertag

const (
	constructed = 0x20

	Integer         byte = 0x02
	BitString       byte = 0x03
	OctetString     byte = 0x04
	Oid             byte = 0x06
	Enumerated      byte = 0x0A
	NumericString   byte = 0x12
	PrintableString byte = 0x13
	IA5String       byte = 0x16
	UTCTime         byte = 0x17
	GeneralizedTime byte = 0x18

	// Sequence and SetOf are always constructed for the composites in this
	// module (RdnAttr/Rdn/Name), so the constructed bit is baked in.
	Sequence byte = 0x30 | constructed
	SetOf    byte = 0x31 | constructed
)

// IsConstructed reports whether tag carries the constructed bit, for
// debugging tools that need to decide whether to recurse into a value.
func IsConstructed(tag byte) bool {
	return tag&constructed != 0
}

// Name returns a human-readable label for a tag octet, for error messages
// and debugging tools (e.g. cmd/derdump).
func Name(tag byte) string {
	switch tag {
	case Integer:
		return "INTEGER"
	case BitString:
		return "BIT STRING"
	case OctetString:
		return "OCTET STRING"
	case Oid:
		return "OBJECT IDENTIFIER"
	case Enumerated:
		return "ENUMERATED"
	case NumericString:
		return "NumericString"
	case PrintableString:
		return "PrintableString"
	case IA5String:
		return "IA5String"
	case UTCTime:
		return "UTCTime"
	case GeneralizedTime:
		return "GeneralizedTime"
	case Sequence:
		return "SEQUENCE"
	case SetOf:
		return "SET OF"
	default:
		return "UNKNOWN"
	}
}
