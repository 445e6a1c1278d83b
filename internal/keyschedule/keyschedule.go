// Package keyschedule derives the Threefish subkeys from a key and a tweak.
//
// A key of NW words is extended with a parity word, the XOR of every key word and [C240]; a two-word tweak is
// extended with the XOR of its words. Subkey group s is then built from the extended key read cyclically from
// word s, with tweak words added to the third- and second-from-last words and s added to the last word.
package keyschedule

import "github.com/codahale/threefish/internal/tables"

// C240 is the constant folded into the key parity word.
const C240 = 0x1BD11BDAA9FC1A22

// Mode selects how key words are chosen for each subkey word.
type Mode int

const (
	// Cyclic reads extended key word (s+i) mod (NW+1) for subkey word i of group s. This is standard Threefish.
	Cyclic Mode = iota

	// FixedKeyWord reads extended key word 0 for every subkey word. It exists for compatibility with
	// implementations which transcribed the schedule that way, and discards most of the key.
	FixedKeyWord
)

// A Set holds the subkey groups for one (key, tweak) pair. Only the first Groups() rows, and the first NW words of
// each row, are meaningful.
type Set [tables.MaxGroups][tables.MaxWords]uint64

// ExtendKey returns the key followed by its parity word. The caller's slice is not modified.
func ExtendKey(key []uint64) (ext [tables.MaxWords + 1]uint64) {
	parity := uint64(C240)
	for i, k := range key {
		ext[i] = k
		parity ^= k
	}
	ext[len(key)] = parity
	return ext
}

// ExtendTweak returns the tweak followed by the XOR of its two words.
func ExtendTweak(tweak []uint64) [3]uint64 {
	return [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}
}

// Generate fills ks with the subkey groups for the given variant. key must hold v.Words words and tweak two.
func Generate(ks *Set, v *tables.Variant, mode Mode, key, tweak []uint64) {
	nw := v.Words
	k := ExtendKey(key[:nw])
	t := ExtendTweak(tweak[:2])

	for s := range v.Groups() {
		g := ks[s][:nw]
		for i := range g {
			if mode == FixedKeyWord {
				g[i] = k[0]
			} else {
				g[i] = k[(s+i)%(nw+1)]
			}
		}
		g[nw-3] += t[s%3]
		g[nw-2] += t[(s+1)%3]
		g[nw-1] += uint64(s)
	}

	clear(k[:])
}
