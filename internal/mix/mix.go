// Package mix implements the MIX function of the Threefish round and its inverse.
package mix

import "math/bits"

// Mix combines the word pair (x0, x1) using a 64-bit addition, a left rotation by r bits, and an XOR.
func Mix(x0, x1 uint64, r int) (y0, y1 uint64) {
	y0 = x0 + x1
	y1 = bits.RotateLeft64(x1, r) ^ y0
	return y0, y1
}

// Unmix inverts Mix for the same rotation amount.
func Unmix(y0, y1 uint64, r int) (x0, x1 uint64) {
	x1 = bits.RotateLeft64(y0^y1, -r)
	x0 = y0 - x1
	return x0, x1
}

// Pairs applies Mix to each adjacent pair of words in state, using rot[j] for the j-th pair.
func Pairs(state []uint64, rot []int) {
	for j := range len(state) / 2 {
		state[2*j], state[2*j+1] = Mix(state[2*j], state[2*j+1], rot[j])
	}
}

// UnmixPairs inverts Pairs.
func UnmixPairs(state []uint64, rot []int) {
	for j := range len(state) / 2 {
		state[2*j], state[2*j+1] = Unmix(state[2*j], state[2*j+1], rot[j])
	}
}
