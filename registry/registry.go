// Package registry implements the plugin bridge described in spec.md
// §4.8: a mapping (encodingFamily, functionName, structureId) ->
// {moduleName, symbolName}, consulted by the dispatch layer (§4.7) on a
// built-in codec miss.
//
// Per spec.md §9 design note 4, lookup of a stored value follows the
// same two-phase sizing contract every codec uses (internal/phase):
// a successful Phase A probe (nil output, non-error return with a
// size) is the predicate for "this field exists", rather than the
// source's practice of checking a legacy ERROR_MORE_DATA code whose
// success path is not itself guaranteed.
package registry

import (
	"sync"

	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/internal/hash"
	"github.com/dercert/derx509/internal/phase"
)

// Well-known function names the codec dispatcher looks entries up
// under (spec.md §4.8).
const (
	FuncEncodeObject   = "CryptEncodeObject"
	FuncEncodeObjectEx = "CryptEncodeObjectEx"
	FuncDecodeObject   = "CryptDecodeObject"
	FuncDecodeObjectEx = "CryptDecodeObjectEx"
)

// Key identifies a registry entry: an encoding family, the function
// name being resolved, and the structure id (a well-known OID string,
// or a plugin-defined identifier) it applies to.
type Key struct {
	EncodingFamily uint32
	FuncName       string
	StructureId    string
}

// Entry is the module/symbol pair a Key resolves to.
type Entry struct {
	ModuleName string
	SymbolName string
}

// PluginFunc is the uniform shape a resolved plugin symbol is called
// through: encode and decode plugins both take an opaque input and a
// Phase A/B output buffer (spec.md §4.1), matching the signature of
// this module's built-in codecs.
type PluginFunc func(input any, out []byte) (int, error)

// PluginResolver loads a module and resolves a symbol to a callable
// PluginFunc. Production adapters back this with a real dynamic-loading
// facility; tests inject a mock (spec.md §9: "Plugin dispatch").
type PluginResolver interface {
	Resolve(entry Entry) (PluginFunc, error)
}

// Store is the capability interface the codec dispatcher consults:
// register/unregister entries, and get/set small generic key/value
// pairs scoped to an entry (spec.md §4.8's "setValue"/"lookupValue").
type Store interface {
	Register(key Key, entry Entry) error
	Unregister(key Key) error
	Lookup(key Key) (Entry, bool)
	SetValue(key Key, field string, value []byte) error
	LookupValue(key Key, field string, out []byte) (int, error)
}

type record struct {
	entry  Entry
	values map[string][]byte
}

// MemStore is the default in-memory Store implementation, keyed by
// internal/hash.RegistryKey to avoid string-concatenation allocations
// on every lookup.
type MemStore struct {
	mu      sync.RWMutex
	records map[uint64]record
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[uint64]record)}
}

func keyHash(key Key) uint64 {
	return hash.RegistryKey(key.EncodingFamily, key.FuncName, key.StructureId)
}

// certificate families this registry accepts entries for, mirroring
// dispatch.FamilyX509ASN1 and dispatch.FamilyPKCS7ASN1 — the only two
// EncodingFamily values this module's dispatcher ever routes through.
const (
	certFamilyX509ASN1  uint32 = 1
	certFamilyPKCS7ASN1 uint32 = 2
)

func isCertificateFamily(family uint32) bool {
	return family == certFamilyX509ASN1 || family == certFamilyPKCS7ASN1
}

// Register adds or replaces the entry for key.
//
// Per spec.md §6, a null funcName or structureId is rejected as
// errs.ErrInvalidParameter; otherwise Register is a silent no-op if the
// encoding family isn't a certificate family, or if entry.ModuleName is
// empty.
func (s *MemStore) Register(key Key, entry Entry) error {
	if key.FuncName == "" || key.StructureId == "" {
		return errs.At(errs.ErrInvalidParameter, 0)
	}
	if !isCertificateFamily(key.EncodingFamily) || entry.ModuleName == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[keyHash(key)] = record{entry: entry, values: make(map[string][]byte)}

	return nil
}

// Unregister removes the entry for key. Fails errs.ErrNotFound if key
// was never registered.
func (s *MemStore) Unregister(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := keyHash(key)
	if _, ok := s.records[h]; !ok {
		return errs.At(errs.ErrNotFound, 0)
	}

	delete(s.records, h)

	return nil
}

// Lookup returns the entry registered for key, if any.
func (s *MemStore) Lookup(key Key) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[keyHash(key)]
	if !ok {
		return Entry{}, false
	}

	return rec.entry, true
}

// SetValue stores value under field, scoped to key's entry. Fails
// errs.ErrNotFound if key has no registered entry.
func (s *MemStore) SetValue(key Key, field string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[keyHash(key)]
	if !ok {
		return errs.At(errs.ErrNotFound, 0)
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	rec.values[field] = cp

	return nil
}

// LookupValue reads the value stored under field, following the same
// two-phase contract as the codec packages: out == nil reports the
// bytes available (a successful return here is the existence check
// callers should rely on); otherwise out must have enough capacity or
// LookupValue fails errs.ErrBufferTooSmall. Fails errs.ErrNotFound if
// key or field was never registered.
func (s *MemStore) LookupValue(key Key, field string, out []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[keyHash(key)]
	if !ok {
		return 0, errs.At(errs.ErrNotFound, 0)
	}

	val, ok := rec.values[field]
	if !ok {
		return 0, errs.At(errs.ErrNotFound, 0)
	}

	return phase.Run(out, len(val), func(buf []byte) {
		copy(buf, val)
	})
}
