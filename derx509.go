// Package derx509 provides a DER (Distinguished Encoding Rules) codec
// for the fixed menu of ASN.1 structures X.509 and PKCS#7 build on:
// integers, bit strings, octet strings, object identifiers, UTCTime and
// GeneralizedTime, and Distinguished Names.
//
// Every codec follows the same two-phase capacity contract: call with a
// nil output buffer to learn how many bytes are needed, then call again
// with a buffer of that size to write.
//
//	n, err := derx509.EncodeOid("1.2.840.113549.1.1.11", nil)
//	buf := make([]byte, n)
//	derx509.EncodeOid("1.2.840.113549.1.1.11", buf)
//
// This package provides thin top-level wrappers around the oid, timeval
// and namecodec codec packages and the dispatch/registry layer. The
// integer, bitstring and octetstring codecs have no wrappers here; for
// those, and for fine-grained control — enumerated values, big integers,
// the plugin registry — use the packages directly.
package derx509

import (
	"github.com/dercert/derx509/dispatch"
	"github.com/dercert/derx509/namecodec"
	"github.com/dercert/derx509/oid"
	"github.com/dercert/derx509/registry"
	"github.com/dercert/derx509/timeval"
	"github.com/dercert/derx509/types"
)

// Re-exported types so callers need only import this package for the
// common path.
type (
	Timestamp = types.Timestamp
	Name      = types.Name
	Rdn       = types.Rdn
	RdnAttr   = types.RdnAttr
	NameValue = types.NameValue
	ByteBlob  = types.ByteBlob
	BitBlob   = types.BitBlob
	IntBlob   = types.IntBlob
	StringKind = types.StringKind
)

// Re-exported StringKind values.
const (
	KindNumeric   = types.KindNumeric
	KindPrintable = types.KindPrintable
	KindIA5       = types.KindIA5
)

// EncodeOid writes dotted as a DER OBJECT IDENTIFIER. See package oid.
func EncodeOid(dotted string, out []byte) (int, error) {
	return oid.Encode(dotted, out)
}

// DecodeOid parses a DER OBJECT IDENTIFIER into its dotted-decimal form.
func DecodeOid(data []byte) (string, int, error) {
	return oid.Decode(data)
}

// EncodeUTCTime formats ts as a DER UTCTime. See package timeval.
func EncodeUTCTime(ts Timestamp, out []byte) (int, error) {
	return timeval.EncodeUTCTime(ts, out)
}

// EncodeGeneralizedTime formats ts as a DER GeneralizedTime.
func EncodeGeneralizedTime(ts Timestamp, out []byte) (int, error) {
	return timeval.EncodeGeneralizedTime(ts, out)
}

// EncodeChoiceOfTime picks UTCTime or GeneralizedTime based on ts.Year.
func EncodeChoiceOfTime(ts Timestamp, out []byte) (int, error) {
	return timeval.EncodeChoiceOfTime(ts, out)
}

// DecodeUTCTime parses a DER UTCTime into a Timestamp.
func DecodeUTCTime(data []byte) (Timestamp, int, error) {
	return timeval.DecodeUTCTime(data)
}

// DecodeGeneralizedTime parses a DER GeneralizedTime into a Timestamp.
func DecodeGeneralizedTime(data []byte) (Timestamp, int, error) {
	return timeval.DecodeGeneralizedTime(data)
}

// EncodeName writes name as a DER Distinguished Name (SEQUENCE OF Rdn).
// See package namecodec.
func EncodeName(name Name, out []byte) (int, error) {
	return namecodec.EncodeName(name, out)
}

// DecodeName parses a DER Distinguished Name into a Name.
func DecodeName(data []byte) (Name, int, error) {
	return namecodec.DecodeName(data)
}

// NewDispatcher builds a structure-id dispatcher (package dispatch) with
// a fresh in-memory plugin registry, applying opts in order.
func NewDispatcher(opts ...dispatch.Option) (*dispatch.Dispatcher, error) {
	return dispatch.New(opts...)
}

// NewRegistry builds an empty in-memory plugin registry store (package
// registry), for callers wiring a custom Dispatcher by hand.
func NewRegistry() *registry.MemStore {
	return registry.NewMemStore()
}
