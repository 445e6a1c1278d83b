// Package words converts between byte strings and little-endian 64-bit words.
package words

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Load decodes len(dst) little-endian words from src. src must be at least 8*len(dst) bytes long.
func Load(dst []uint64, src []byte) {
	_ = src[:8*len(dst)]
	if !cpu.IsBigEndian {
		copy(asBytes(dst), src)
		return
	}
	loadGeneric(dst, src)
}

// Store encodes src as little-endian words into dst. dst must be at least 8*len(src) bytes long.
func Store(dst []byte, src []uint64) {
	_ = dst[:8*len(src)]
	if !cpu.IsBigEndian {
		copy(dst, asBytes(src))
		return
	}
	storeGeneric(dst, src)
}

func loadGeneric(dst []uint64, src []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
}

func storeGeneric(dst []byte, src []uint64) {
	for i, w := range src {
		binary.LittleEndian.PutUint64(dst[i*8:], w)
	}
}

// asBytes returns the in-memory representation of w, which is its little-endian encoding on little-endian hosts.
func asBytes(w []uint64) []byte {
	if len(w) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&w[0])), len(w)*8) //nolint:gosec // length is exact
}
