// Package oid implements the DER OBJECT IDENTIFIER codec (spec.md §4.4):
// dotted-decimal string in memory, base-128 arc encoding on the wire.
package oid

import (
	"strconv"
	"strings"

	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/dercert/derx509/errs"
)

// Encode writes dotted as a DER OBJECT IDENTIFIER. dotted must have at
// least two arcs; the first two are combined into the leading content
// octet (40*arc1 + arc2), and every subsequent arc is emitted base-128,
// big-endian, with the continuation bit set on all but its final byte.
func Encode(dotted string, out []byte) (int, error) {
	arcs, err := parseArcs(dotted)
	if err != nil {
		return 0, err
	}

	content := encodeArcs(arcs)

	return dertlv.Encode(dertag.Oid, content, out)
}

// Size reports the bytes Encode would write for dotted, without writing
// anything. Equivalent to calling Encode(dotted, nil).
func Size(dotted string) (int, error) {
	return Encode(dotted, nil)
}

// Decode parses a DER OBJECT IDENTIFIER into its dotted-decimal string.
//
// A continuation byte running past the content or a final byte whose
// high bit is still set yields errs.ErrCorrupt, per spec.md §4.4.
func Decode(data []byte) (string, int, error) {
	content, consumed, err := dertlv.Decode(dertag.Oid, data)
	if err != nil {
		return "", 0, err
	}
	if len(content) == 0 {
		return "", 0, errs.At(errs.ErrCorrupt, 0)
	}

	arc1 := uint32(content[0]) / 40
	arc2 := uint32(content[0]) % 40
	arcs := []uint32{arc1, arc2}

	rest := content[1:]
	var acc uint32
	haveByte := false
	for _, b := range rest {
		acc = acc<<7 | uint32(b&0x7F)
		haveByte = true
		if b&0x80 == 0 {
			arcs = append(arcs, acc)
			acc = 0
			haveByte = false
		}
	}
	if haveByte {
		// Continuation bit set on the final byte: the arc never terminated.
		return "", 0, errs.At(errs.ErrCorrupt, 0)
	}

	var sb strings.Builder
	for i, a := range arcs {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(a), 10))
	}

	return sb.String(), consumed, nil
}

// parseArcs splits a dotted-decimal OID string into its arc values.
// Requires at least two arcs; any non-numeric or empty component fails
// errs.ErrInvalidParameter.
func parseArcs(dotted string) ([]uint32, error) {
	parts := strings.Split(dotted, ".")
	if len(parts) < 2 {
		return nil, errs.At(errs.ErrInvalidParameter, 0)
	}

	arcs := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, errs.At(errs.ErrInvalidParameter, 0)
		}
		arcs[i] = uint32(v)
	}

	return arcs, nil
}

// encodeArcs lays out the first-octet-combined leading pair followed by
// base-128 encodings of every remaining arc.
func encodeArcs(arcs []uint32) []byte {
	content := []byte{byte(40*arcs[0] + arcs[1])}
	for _, arc := range arcs[2:] {
		content = append(content, encodeArc(arc)...)
	}

	return content
}

// arcSize reports the number of base-128 bytes v requires. Per spec.md
// §4.4's corrected thresholds: 1 byte if v<2^7, 2 if v<2^14, 3 if v<2^21,
// 4 if v<2^28, 5 otherwise (arcs are assumed to fit in 32 bits).
func arcSize(v uint32) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}

// encodeArc writes v as base-128, big-endian, continuation bit set on
// every byte but the last.
func encodeArc(v uint32) []byte {
	n := arcSize(v)
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v & 0x7F)
		if i != n-1 {
			out[i] |= 0x80
		}
		v >>= 7
	}

	return out
}
