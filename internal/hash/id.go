// Package hash provides xxHash64 fingerprints for raw payloads and source
// names, used by the snapshot store for cheap change detection.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 fingerprint of a raw payload.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
