// Package phase implements the two-phase sizing/writing contract shared by
// every codec in this module (spec.md §4.1).
//
// Phase A (sizing): the caller passes a nil output buffer; the codec
// reports the bytes it would need without writing anything.
//
// Phase B (writing): the caller passes a buffer; if its capacity is
// insufficient the codec fails with errs.ErrBufferTooSmall and reports the
// required size, otherwise it writes exactly `needed` bytes and reports
// that count.
//
// This package exists so every codec package's Encode entry point (through
// dertlv.Encode) and registry.LookupValue get the same Phase A/Phase B
// semantics (and the same fix of source design note §9.2 — the capacity
// check must read the caller's *size* cell, never a content byte) without
// re-implementing it per type. Decode entry points return Go values and do
// not take an output buffer, so they do not use Run.
package phase

import "github.com/dercert/derx509/errs"

// Run executes the two-phase contract for an encode/decode step that needs
// `needed` bytes of output.
//
// If out is nil, Run reports `needed` without invoking write (Phase A).
// If len(out) < needed, Run fails with errs.ErrBufferTooSmall carrying the
// required size (Phase B, insufficient capacity). Otherwise Run calls
// write with out[:needed] and reports `needed` as bytes written.
func Run(out []byte, needed int, write func(buf []byte)) (int, error) {
	if out == nil {
		return needed, nil
	}

	if len(out) < needed {
		return needed, errs.TooSmall(needed)
	}

	write(out[:needed])

	return needed, nil
}
