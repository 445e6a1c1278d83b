// Package permute reorders the words of a Threefish block between rounds.
package permute

// Forward sets dst[i] to src[p[i]] for each of the len(dst) words. dst and src must not overlap.
func Forward(dst, src []uint64, p []int) {
	for i := range dst {
		dst[i] = src[p[i]]
	}
}

// Inverse undoes Forward. inv must be the positional inverse of the permutation passed to Forward.
func Inverse(dst, src []uint64, inv []int) {
	for i := range dst {
		dst[i] = src[inv[i]]
	}
}
