// Package hash provides the key hashing used by the registry bridge's
// in-memory RegistryStore to turn (encodingFamily, funcName, oid) lookup
// keys into O(1) map keys.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// RegistryKey hashes the (encodingFamily, funcName, oid) triple used to
// register and look up plugin bridge entries (spec.md §4.8).
func RegistryKey(encodingFamily uint32, funcName, oid string) uint64 {
	var buf [8]byte
	buf[0] = byte(encodingFamily)
	buf[1] = byte(encodingFamily >> 8)
	buf[2] = byte(encodingFamily >> 16)
	buf[3] = byte(encodingFamily >> 24)

	d := xxhash.New()
	_, _ = d.Write(buf[:4])
	_, _ = d.Write([]byte(funcName))
	_, _ = d.Write([]byte{0})
	_, _ = d.Write([]byte(oid))

	return d.Sum64()
}
