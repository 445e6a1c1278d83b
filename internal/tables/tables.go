// Package tables holds the per-variant constants of the Threefish block cipher: the MIX rotation amounts and the
// word permutations applied after each round, as given in the [Skein 1.3] specification.
//
// [Skein 1.3]: https://www.schneier.com/wp-content/uploads/2015/01/skein.pdf
package tables

import "strconv"

const (
	// MaxWords is the number of 64-bit words in the widest variant's block.
	MaxWords = 16

	// MaxGroups is the number of subkey groups of the variant with the most rounds.
	MaxGroups = 80/4 + 1
)

// A Variant describes one width of the cipher.
type Variant struct {
	// Bits is the block, key, and state size in bits.
	Bits int

	// Words is the number of 64-bit words in a block (NW).
	Words int

	// Rounds is the number of MIX rounds.
	Rounds int

	// Rotations holds the rotation amount for each word pair, indexed by round mod 8.
	Rotations [8][MaxWords / 2]int

	// Permutation maps output word i to source word Permutation[i].
	Permutation [MaxWords]int

	// Inverse is the positional inverse of Permutation.
	Inverse [MaxWords]int
}

// Groups returns the number of subkey groups the key schedule produces for the variant.
func (v *Variant) Groups() int {
	return v.Rounds/4 + 1
}

// Name returns the conventional name of the variant, e.g. "Threefish-512".
func (v *Variant) Name() string {
	return "Threefish-" + strconv.Itoa(v.Bits)
}

// Lookup returns the variant with the given block size in bits, or false if there is none.
func Lookup(bits int) (*Variant, bool) {
	v, ok := variants[bits]
	return v, ok
}

//nolint:gochecknoglobals // constant tables
var variants = map[int]*Variant{
	256:  &threefish256,
	512:  &threefish512,
	1024: &threefish1024,
}

//nolint:gochecknoglobals // constant tables
var threefish256 = Variant{
	Bits:   256,
	Words:  4,
	Rounds: 72,
	Rotations: [8][MaxWords / 2]int{
		{14, 16},
		{52, 57},
		{23, 40},
		{5, 37},
		{25, 33},
		{46, 12},
		{58, 22},
		{32, 32},
	},
	Permutation: [MaxWords]int{0, 3, 2, 1},
	Inverse:     [MaxWords]int{0, 3, 2, 1},
}

//nolint:gochecknoglobals // constant tables
var threefish512 = Variant{
	Bits:   512,
	Words:  8,
	Rounds: 72,
	Rotations: [8][MaxWords / 2]int{
		{46, 36, 19, 37},
		{33, 27, 14, 42},
		{17, 49, 36, 39},
		{44, 9, 54, 56},
		{39, 30, 34, 24},
		{13, 50, 10, 17},
		{25, 29, 39, 43},
		{8, 35, 56, 22},
	},
	Permutation: [MaxWords]int{2, 1, 4, 7, 6, 5, 0, 3},
	Inverse:     [MaxWords]int{6, 1, 0, 7, 2, 5, 4, 3},
}

//nolint:gochecknoglobals // constant tables
var threefish1024 = Variant{
	Bits:   1024,
	Words:  16,
	Rounds: 80,
	Rotations: [8][MaxWords / 2]int{
		{24, 13, 8, 47, 8, 17, 22, 37},
		{38, 19, 10, 55, 49, 18, 23, 52},
		{33, 4, 51, 13, 34, 41, 59, 17},
		{5, 20, 48, 41, 47, 28, 16, 25},
		{41, 9, 37, 31, 12, 47, 44, 30},
		{16, 34, 56, 51, 4, 53, 42, 41},
		{31, 44, 47, 46, 19, 42, 44, 25},
		{9, 48, 35, 52, 23, 31, 37, 20},
	},
	Permutation: [MaxWords]int{0, 9, 2, 13, 6, 11, 4, 15, 10, 7, 12, 3, 14, 5, 8, 1},
	Inverse:     [MaxWords]int{0, 15, 2, 11, 6, 13, 4, 9, 14, 1, 8, 5, 10, 3, 12, 7},
}
