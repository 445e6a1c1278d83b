package threefish

import "errors"

var (
	// ErrInvalidVariant is returned when the block size is not 256, 512, or 1024 bits.
	ErrInvalidVariant = errors.New("threefish: invalid block size, must be 256, 512, or 1024 bits")

	// ErrInvalidKeyLength is returned when the key is not exactly one block long.
	ErrInvalidKeyLength = errors.New("threefish: invalid key length")

	// ErrInvalidTweakLength is returned when the tweak is not exactly TweakSize bytes long.
	ErrInvalidTweakLength = errors.New("threefish: invalid tweak length")

	// ErrInvalidBlockLength is returned when the plaintext or ciphertext is not exactly one block long.
	ErrInvalidBlockLength = errors.New("threefish: invalid block length")
)
