// Package dispatch implements the two public encode/decode façades
// described in spec.md §4.7: each takes an (encoding-family,
// structure-id, ...) pair, tries a built-in codec table, falls back to
// a small set of well-known OIDs, and finally consults the plugin
// registry (package registry) before failing errs.ErrNotFound.
package dispatch

import (
	"strconv"

	"github.com/dercert/derx509/bitstring"
	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/integer"
	"github.com/dercert/derx509/internal/options"
	"github.com/dercert/derx509/namecodec"
	"github.com/dercert/derx509/octetstring"
	"github.com/dercert/derx509/oid"
	"github.com/dercert/derx509/registry"
	"github.com/dercert/derx509/timeval"
	"github.com/dercert/derx509/types"
)

// EncodingFamily selects one of the two ASN.1 families this module
// recognizes. Any other value fails errs.ErrNotFound (spec.md §4.7).
type EncodingFamily int

const (
	FamilyX509ASN1 EncodingFamily = iota + 1
	FamilyPKCS7ASN1
)

// Numeric structure ids for the built-in codec table.
const (
	StructFixedInteger = iota + 1
	StructBigSignedInteger
	StructBigUnsignedInteger
	StructEnumerated
	StructBitString
	StructOctetString
	StructOid
	StructUTCTime
	StructGeneralizedTime
	StructChoiceOfTime
	StructName
	StructRdn
	StructRdnAttr
)

// Well-known OIDs the dispatcher recognizes by string structure id
// (spec.md §4.7).
const (
	OidSigningTime          = "1.2.840.113549.1.9.5"
	OidCRLReasonCode        = "2.5.29.21"
	OidKeyUsage             = "2.5.29.15"
	OidSubjectKeyIdentifier = "2.5.29.14"
)

// StructureId is either a small integer drawn from the built-in
// enumeration above, or a well-known/plugin-registered OID string.
// Exactly one of the two forms is meaningful, selected by IsString —
// standing in for the source's pointer-half discriminator (spec.md
// §4.7) without resorting to an unsafe union.
type StructureId struct {
	Numeric  int
	Oid      string
	IsString bool
}

// NumericID builds a StructureId selecting a built-in codec by number.
func NumericID(id int) StructureId {
	return StructureId{Numeric: id}
}

// OidID builds a StructureId selecting a codec by OID string.
func OidID(dotted string) StructureId {
	return StructureId{Oid: dotted, IsString: true}
}

func (s StructureId) key() string {
	if s.IsString {
		return s.Oid
	}

	return strconv.Itoa(s.Numeric)
}

type encodeFunc func(input any, out []byte) (int, error)
type decodeFunc func(data []byte) (any, int, error)

var builtinEncoders = map[int]encodeFunc{
	StructFixedInteger: func(input any, out []byte) (int, error) {
		v, ok := input.(int32)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return integer.EncodeFixed(v, out)
	},
	StructBigSignedInteger: func(input any, out []byte) (int, error) {
		v, ok := input.(types.IntBlob)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return integer.EncodeBigSigned(v, out)
	},
	StructBigUnsignedInteger: func(input any, out []byte) (int, error) {
		v, ok := input.(types.IntBlob)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return integer.EncodeBigUnsigned(v, out)
	},
	StructEnumerated: func(input any, out []byte) (int, error) {
		v, ok := input.(uint32)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return integer.EncodeEnumerated(v, out)
	},
	StructBitString: func(input any, out []byte) (int, error) {
		v, ok := input.(types.BitBlob)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return bitstring.Encode(v, out)
	},
	StructOctetString: func(input any, out []byte) (int, error) {
		v, ok := input.(types.ByteBlob)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return octetstring.Encode(v, out)
	},
	StructOid: func(input any, out []byte) (int, error) {
		v, ok := input.(string)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return oid.Encode(v, out)
	},
	StructUTCTime: func(input any, out []byte) (int, error) {
		v, ok := input.(types.Timestamp)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return timeval.EncodeUTCTime(v, out)
	},
	StructGeneralizedTime: func(input any, out []byte) (int, error) {
		v, ok := input.(types.Timestamp)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return timeval.EncodeGeneralizedTime(v, out)
	},
	StructChoiceOfTime: func(input any, out []byte) (int, error) {
		v, ok := input.(types.Timestamp)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return timeval.EncodeChoiceOfTime(v, out)
	},
	StructName: func(input any, out []byte) (int, error) {
		v, ok := input.(types.Name)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return namecodec.EncodeName(v, out)
	},
	StructRdn: func(input any, out []byte) (int, error) {
		v, ok := input.(types.Rdn)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return namecodec.EncodeRdn(v, out)
	},
	StructRdnAttr: func(input any, out []byte) (int, error) {
		v, ok := input.(types.RdnAttr)
		if !ok {
			return 0, errs.At(errs.ErrInvalidParameter, 0)
		}

		return namecodec.EncodeRdnAttr(v, out)
	},
}

var builtinDecoders = map[int]decodeFunc{
	StructFixedInteger: func(data []byte) (any, int, error) {
		v, n, err := integer.DecodeFixed(data)
		return v, n, err
	},
	StructBigSignedInteger: func(data []byte) (any, int, error) {
		v, n, err := integer.DecodeBigSigned(data)
		return v, n, err
	},
	StructBigUnsignedInteger: func(data []byte) (any, int, error) {
		v, n, err := integer.DecodeBigUnsigned(data)
		return v, n, err
	},
	StructEnumerated: func(data []byte) (any, int, error) {
		v, n, err := integer.DecodeEnumerated(data)
		return v, n, err
	},
	StructBitString: func(data []byte) (any, int, error) {
		v, n, err := bitstring.Decode(data)
		return v, n, err
	},
	StructOctetString: func(data []byte) (any, int, error) {
		v, n, err := octetstring.Decode(data)
		return v, n, err
	},
	StructOid: func(data []byte) (any, int, error) {
		v, n, err := oid.Decode(data)
		return v, n, err
	},
	StructUTCTime: func(data []byte) (any, int, error) {
		v, n, err := timeval.DecodeUTCTime(data)
		return v, n, err
	},
	StructGeneralizedTime: func(data []byte) (any, int, error) {
		v, n, err := timeval.DecodeGeneralizedTime(data)
		return v, n, err
	},
	StructName: func(data []byte) (any, int, error) {
		v, n, err := namecodec.DecodeName(data)
		return v, n, err
	},
	StructRdn: func(data []byte) (any, int, error) {
		v, n, err := namecodec.DecodeRdn(data)
		return v, n, err
	},
	StructRdnAttr: func(data []byte) (any, int, error) {
		v, n, err := namecodec.DecodeRdnAttr(data)
		return v, n, err
	},
}

var wellKnownEncoders = map[string]encodeFunc{
	OidSigningTime:          builtinEncoders[StructUTCTime],
	OidCRLReasonCode:        builtinEncoders[StructEnumerated],
	OidKeyUsage:             builtinEncoders[StructBitString],
	OidSubjectKeyIdentifier: builtinEncoders[StructOctetString],
}

var wellKnownDecoders = map[string]decodeFunc{
	OidSigningTime:          builtinDecoders[StructUTCTime],
	OidCRLReasonCode:        builtinDecoders[StructEnumerated],
	OidKeyUsage:             builtinDecoders[StructBitString],
	OidSubjectKeyIdentifier: builtinDecoders[StructOctetString],
}

// Dispatcher holds the registry capabilities consulted when a
// structure id misses the built-in table (spec.md §4.8).
type Dispatcher struct {
	store    registry.Store
	resolver registry.PluginResolver
}

// Option configures a Dispatcher at construction time.
type Option = options.Option[*Dispatcher]

// WithStore overrides the registry store consulted on a built-in miss.
// Defaults to a fresh registry.MemStore.
func WithStore(store registry.Store) Option {
	return options.NoError[*Dispatcher](func(d *Dispatcher) { d.store = store })
}

// WithResolver sets the PluginResolver used to load a registered
// plugin's symbol. Without one, a registry hit still fails
// errs.ErrNotFound since there is nothing to call.
func WithResolver(resolver registry.PluginResolver) Option {
	return options.NoError[*Dispatcher](func(d *Dispatcher) { d.resolver = resolver })
}

// New builds a Dispatcher, applying opts in order.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{store: registry.NewMemStore()}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Encode dispatches to the built-in codec for id, falling back to a
// well-known OID (string ids only) and then the plugin registry.
func (d *Dispatcher) Encode(family EncodingFamily, id StructureId, input any, out []byte) (int, error) {
	if family != FamilyX509ASN1 && family != FamilyPKCS7ASN1 {
		return 0, errs.At(errs.ErrNotFound, 0)
	}

	if !id.IsString {
		if enc, ok := builtinEncoders[id.Numeric]; ok {
			return enc(input, out)
		}
	} else if enc, ok := wellKnownEncoders[id.Oid]; ok {
		return enc(input, out)
	}

	return d.encodeViaRegistry(family, id, input, out)
}

// Decode dispatches to the built-in codec for id, falling back to a
// well-known OID (string ids only) and then the plugin registry.
func (d *Dispatcher) Decode(family EncodingFamily, id StructureId, data []byte) (any, int, error) {
	if family != FamilyX509ASN1 && family != FamilyPKCS7ASN1 {
		return nil, 0, errs.At(errs.ErrNotFound, 0)
	}

	if !id.IsString {
		if dec, ok := builtinDecoders[id.Numeric]; ok {
			return dec(data)
		}
	} else if dec, ok := wellKnownDecoders[id.Oid]; ok {
		return dec(data)
	}

	return d.decodeViaRegistry(family, id, data)
}

func (d *Dispatcher) encodeViaRegistry(family EncodingFamily, id StructureId, input any, out []byte) (int, error) {
	entry, ok := d.store.Lookup(registry.Key{
		EncodingFamily: uint32(family),
		FuncName:       registry.FuncEncodeObjectEx,
		StructureId:    id.key(),
	})
	if !ok || d.resolver == nil {
		return 0, errs.At(errs.ErrNotFound, 0)
	}

	fn, err := d.resolver.Resolve(entry)
	if err != nil {
		return 0, err
	}

	return fn(input, out)
}

func (d *Dispatcher) decodeViaRegistry(family EncodingFamily, id StructureId, data []byte) (any, int, error) {
	entry, ok := d.store.Lookup(registry.Key{
		EncodingFamily: uint32(family),
		FuncName:       registry.FuncDecodeObjectEx,
		StructureId:    id.key(),
	})
	if !ok || d.resolver == nil {
		return nil, 0, errs.At(errs.ErrNotFound, 0)
	}

	fn, err := d.resolver.Resolve(entry)
	if err != nil {
		return nil, 0, err
	}

	n, err := fn(data, nil)
	if err != nil {
		return nil, 0, err
	}

	buf := make([]byte, n)
	if _, err := fn(data, buf); err != nil {
		return nil, 0, err
	}

	return buf, n, nil
}
