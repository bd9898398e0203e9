package namecodec

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/types"
)

// printableAllowed is the ASN.1 PrintableString alphabet: letters,
// digits, space, and a fixed punctuation set (X.680 §41).
func printableAllowed(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}

	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}

	return false
}

// validateKind rejects NameValue content that cannot legally be
// represented under kind, before it reaches the wire.
//
// IA5String and PrintableString are both ASCII-range alphabets; the
// broad ASCII-ness check is delegated to charmap.ASCII's encoder (the
// same "does this string round-trip through a fixed single-byte
// charset" check golang.org/x/text/encoding implementations provide),
// and PrintableString additionally restricts to its narrower alphabet.
func validateKind(kind types.StringKind, value []byte) error {
	switch kind {
	case types.KindNumeric:
		for _, b := range value {
			if !(b >= '0' && b <= '9' || b == ' ') {
				return errs.At(errs.ErrCorrupt, 0)
			}
		}

		return nil
	case types.KindIA5:
		if _, err := charmap.ASCII.NewEncoder().Bytes(value); err != nil {
			return errs.At(errs.ErrCorrupt, 0)
		}

		return nil
	case types.KindPrintable:
		if _, err := charmap.ASCII.NewEncoder().Bytes(value); err != nil {
			return errs.At(errs.ErrCorrupt, 0)
		}
		for _, b := range value {
			if !printableAllowed(b) {
				return errs.At(errs.ErrCorrupt, 0)
			}
		}

		return nil
	default:
		return errs.At(errs.ErrUnsupported, 0)
	}
}
