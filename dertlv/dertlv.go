// Package dertlv provides the tag-length-value plumbing shared by every
// primitive codec in this module: writing "tag · length · contents" and
// parsing it back, bounds-checked against the caller's buffer (spec.md
// §3 invariant 1).
package dertlv

import (
	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/internal/phase"
	"github.com/dercert/derx509/lenc"
)

// Encode writes tag, the DER length of content, and content itself into
// out, following the two-phase contract (spec.md §4.1): out == nil
// reports the bytes needed; otherwise out must have enough capacity or
// Encode fails with errs.ErrBufferTooSmall.
func Encode(tag byte, content []byte, out []byte) (int, error) {
	lenSize := lenc.Size(len(content))
	needed := 1 + lenSize + len(content)

	return phase.Run(out, needed, func(buf []byte) {
		buf[0] = tag
		n, _ := lenc.Encode(len(content), buf[1:1+lenSize])
		copy(buf[1+n:], content)
	})
}

// Decode validates the tag octet at the front of data, parses its DER
// length, and returns the content slice plus the total bytes consumed
// (tag + length octets + content).
func Decode(tag byte, data []byte) (content []byte, consumed int, err error) {
	if len(data) == 0 {
		return nil, 0, errs.At(errs.ErrEndOfData, 0)
	}
	if data[0] != tag {
		return nil, 0, errs.At(errs.ErrBadTag, 0)
	}

	length, lenN, err := lenc.Decode(data[1:])
	if err != nil {
		return nil, 0, err
	}

	start := 1 + lenN

	return data[start : start+length], start + length, nil
}

// DecodeAny parses the TLV at the front of data without checking the tag
// against an expected value, for callers that branch on tag themselves
// (e.g. the NameValue CHOICE codec).
func DecodeAny(data []byte) (tag byte, content []byte, consumed int, err error) {
	if len(data) == 0 {
		return 0, nil, 0, errs.At(errs.ErrEndOfData, 0)
	}

	tag = data[0]
	length, lenN, err := lenc.Decode(data[1:])
	if err != nil {
		return 0, nil, 0, err
	}

	start := 1 + lenN

	return tag, data[start : start+length], start + length, nil
}

// PeekTag returns the tag octet at the front of data without validating
// anything else, for dispatch code that needs to branch on tag before
// picking a decoder. Fails errs.ErrEndOfData on an empty buffer.
func PeekTag(data []byte) (byte, error) {
	if len(data) == 0 {
		return 0, errs.At(errs.ErrEndOfData, 0)
	}

	return data[0], nil
}
