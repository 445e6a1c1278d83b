// Package threefish implements the [Threefish] tweakable block cipher with 256-, 512-, and 1024-bit blocks.
//
// Threefish is a keyed permutation of a block of 64-bit words which is also parameterized by a public 128-bit tweak.
// Each round applies the MIX function (addition, rotation, and XOR) to adjacent word pairs and then permutes the
// words; every fourth round a subkey derived from the key and the tweak is added to the block. Threefish-256 and
// Threefish-512 run 72 rounds, Threefish-1024 runs 80.
//
// This package encrypts and decrypts single blocks. Padding, chaining, and the encoding of messages are the
// caller's concern; no mode of operation is provided and none of the outputs are authenticated. The implementation
// uses no secret-dependent branches or table lookups but makes no further constant-time guarantees.
//
// Keys, tweaks, and blocks are read as little-endian 64-bit words.
//
// [Threefish]: https://www.schneier.com/wp-content/uploads/2015/01/skein.pdf
package threefish

import (
	"fmt"

	"github.com/codahale/threefish/internal/keyschedule"
	"github.com/codahale/threefish/internal/mix"
	"github.com/codahale/threefish/internal/permute"
	"github.com/codahale/threefish/internal/tables"
	"github.com/codahale/threefish/internal/words"
)

const (
	// TweakSize is the size of a tweak in bytes, for every block size.
	TweakSize = 16

	// KeyScheduleConstant is XORed into the parity word appended to every key.
	KeyScheduleConstant = keyschedule.C240
)

// A Cipher is a Threefish instance of a fixed block size. It holds no key material and is safe for concurrent use.
type Cipher struct {
	variant *tables.Variant
	mode    keyschedule.Mode
}

// An Option configures a Cipher.
type Option func(*Cipher)

// WithFixedKeyWordSchedule makes the key schedule read the first extended key word for every subkey word instead of
// cycling through the key. This matches implementations which transcribed the schedule that way. It is not
// compatible with standard Threefish and ignores most of the key; use it only to interoperate with such data.
func WithFixedKeyWordSchedule() Option {
	return func(c *Cipher) {
		c.mode = keyschedule.FixedKeyWord
	}
}

// NewCipher returns a Cipher with the given block size in bits, which must be 256, 512, or 1024.
func NewCipher(blockSize int, opts ...Option) (*Cipher, error) {
	v, ok := tables.Lookup(blockSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVariant, blockSize)
	}

	c := &Cipher{variant: v, mode: keyschedule.Cyclic}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int { return c.variant.Words * 8 }

// KeySize returns the cipher's key size in bytes, which is equal to its block size.
func (c *Cipher) KeySize() int { return c.variant.Words * 8 }

// Rounds returns the number of rounds the cipher runs.
func (c *Cipher) Rounds() int { return c.variant.Rounds }

// String returns the name of the cipher's variant.
func (c *Cipher) String() string { return c.variant.Name() }

// Encrypt encrypts a single block of plaintext with the given key and tweak and returns the ciphertext. The key and
// plaintext must be BlockSize bytes long and the tweak must be TweakSize bytes long.
func (c *Cipher) Encrypt(key, tweak, plaintext []byte) ([]byte, error) {
	if err := c.checkLengths(key, tweak, plaintext); err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(plaintext))
	c.encryptBlock(ciphertext, key, tweak, plaintext)
	return ciphertext, nil
}

// Decrypt decrypts a single block of ciphertext with the given key and tweak and returns the plaintext. The key and
// ciphertext must be BlockSize bytes long and the tweak must be TweakSize bytes long.
func (c *Cipher) Decrypt(key, tweak, ciphertext []byte) ([]byte, error) {
	if err := c.checkLengths(key, tweak, ciphertext); err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	c.decryptBlock(plaintext, key, tweak, ciphertext)
	return plaintext, nil
}

func (c *Cipher) checkLengths(key, tweak, block []byte) error {
	n := c.BlockSize()
	if len(key) != n {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), n)
	}

	if len(tweak) != TweakSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidTweakLength, len(tweak), TweakSize)
	}

	if len(block) != n {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockLength, len(block), n)
	}

	return nil
}

// encryptBlock encrypts src into dst. All lengths must already be checked; dst and src may overlap.
func (c *Cipher) encryptBlock(dst, key, tweak, src []byte) {
	var k, b [tables.MaxWords]uint64
	var t [2]uint64

	nw := c.variant.Words
	words.Load(k[:nw], key)
	words.Load(t[:], tweak)
	words.Load(b[:nw], src)

	c.encrypt(b[:nw], k[:nw], t[:])

	words.Store(dst, b[:nw])
	clear(k[:])
	clear(b[:])
}

// decryptBlock decrypts src into dst. All lengths must already be checked; dst and src may overlap.
func (c *Cipher) decryptBlock(dst, key, tweak, src []byte) {
	var k, b [tables.MaxWords]uint64
	var t [2]uint64

	nw := c.variant.Words
	words.Load(k[:nw], key)
	words.Load(t[:], tweak)
	words.Load(b[:nw], src)

	c.decrypt(b[:nw], k[:nw], t[:])

	words.Store(dst, b[:nw])
	clear(k[:])
	clear(b[:])
}

// encrypt runs the forward transform over block in place.
func (c *Cipher) encrypt(block, key, tweak []uint64) {
	v := c.variant
	nw := v.Words

	var ks keyschedule.Set
	keyschedule.Generate(&ks, v, c.mode, key, tweak)

	var tmp [tables.MaxWords]uint64
	x, y := block, tmp[:nw]
	for d := range v.Rounds {
		if d%4 == 0 {
			inject(x, ks[d/4][:nw])
		}

		mix.Pairs(x, v.Rotations[d%8][:nw/2])
		permute.Forward(y, x, v.Permutation[:nw])
		x, y = y, x
	}
	inject(x, ks[v.Rounds/4][:nw])

	copy(block, x)

	clear(ks[:])
	clear(tmp[:])
}

// decrypt runs the inverse transform over block in place.
func (c *Cipher) decrypt(block, key, tweak []uint64) {
	v := c.variant
	nw := v.Words

	var ks keyschedule.Set
	keyschedule.Generate(&ks, v, c.mode, key, tweak)

	var tmp [tables.MaxWords]uint64
	x, y := block, tmp[:nw]
	eject(x, ks[v.Rounds/4][:nw])
	for d := v.Rounds - 1; d >= 0; d-- {
		permute.Inverse(y, x, v.Inverse[:nw])
		x, y = y, x

		mix.UnmixPairs(x, v.Rotations[d%8][:nw/2])
		if d%4 == 0 {
			eject(x, ks[d/4][:nw])
		}
	}

	copy(block, x)

	clear(ks[:])
	clear(tmp[:])
}

// inject adds the subkey to the state word-wise.
func inject(state, subkey []uint64) {
	for i := range state {
		state[i] += subkey[i]
	}
}

// eject subtracts the subkey from the state word-wise.
func eject(state, subkey []uint64) {
	for i := range state {
		state[i] -= subkey[i]
	}
}
