// Package lenc implements the DER length-octet codec (spec.md §4.2):
// the short form for lengths up to 0x7F, and the long form ("0x80|n"
// followed by n big-endian octets) above it. DER forbids indefinite
// length and non-minimal long forms, so Decode rejects both.
package lenc

import "github.com/dercert/derx509/errs"

// maxLongFormBytes bounds the long-form byte count this codec accepts;
// spec.md §4.2 rejects length octets describing more than 4 bytes (i.e.
// lengths above 4GB) with errs.ErrTooLarge.
const maxLongFormBytes = 4

// Encode writes the DER length octets for length into out and returns the
// number of bytes written.
//
// Phase A: out == nil reports the bytes needed without writing.
// Phase B: out must have at least that many bytes of capacity, or Encode
// fails with errs.ErrBufferTooSmall.
func Encode(length int, out []byte) (int, error) {
	needed := size(length)

	if out == nil {
		return needed, nil
	}
	if len(out) < needed {
		return needed, errs.TooSmall(needed)
	}

	if length <= 0x7F {
		out[0] = byte(length)
		return 1, nil
	}

	n := needed - 1
	out[0] = byte(0x80 | n)
	v := uint32(length) //nolint:gosec // length is a non-negative DER content length
	for i := n - 1; i >= 0; i-- {
		out[1+i] = byte(v)
		v >>= 8
	}

	return needed, nil
}

// Size reports the number of bytes Encode would write for length, without
// writing anything. Equivalent to calling Encode(length, nil).
func Size(length int) int {
	return size(length)
}

func size(length int) int {
	if length <= 0x7F {
		return 1
	}

	return significantBytes(uint32(length)) + 1 //nolint:gosec // length is non-negative
}

// significantBytes returns the minimal number of big-endian bytes needed
// to represent v (1..4).
func significantBytes(v uint32) int {
	n := 4
	for n > 1 && v>>(8*(n-1)) == 0 {
		n--
	}

	return n
}

// Decode parses DER length octets from the front of data.
//
// Returns the decoded length, the number of octets consumed from data
// (1 to 5), and an error. Decode additionally verifies that the stated
// content length fits within the remainder of data after the length
// octets, failing errs.ErrEndOfData if not — this lets callers pass the
// whole remaining TLV buffer and get a single bounds check.
func Decode(data []byte) (length int, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, errs.At(errs.ErrEndOfData, 0)
	}

	first := data[0]
	if first <= 0x7F {
		length, consumed = int(first), 1
	} else {
		n := int(first & 0x7F)
		if n == 0 {
			// 0x80 alone is BER's indefinite length; DER never uses it.
			return 0, 0, errs.At(errs.ErrCorrupt, 0)
		}
		if n > maxLongFormBytes {
			return 0, 0, errs.At(errs.ErrTooLarge, 0)
		}
		if n+1 > len(data) {
			return 0, 0, errs.At(errs.ErrEndOfData, 0)
		}

		var v uint32
		for i := 0; i < n; i++ {
			v = v<<8 | uint32(data[1+i])
		}
		if v <= 0x7F || significantBytes(v) != n {
			// A long form that a shorter form could express is not DER.
			return 0, 0, errs.At(errs.ErrCorrupt, 0)
		}
		length, consumed = int(v), n+1
	}

	if consumed+length > len(data) {
		return 0, 0, errs.At(errs.ErrEndOfData, consumed)
	}

	return length, consumed, nil
}
