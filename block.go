package threefish

import (
	"crypto/cipher"
	"slices"
)

type block struct {
	c     *Cipher
	key   []byte
	tweak [TweakSize]byte
}

// NewBlock returns a cipher.Block which encrypts and decrypts with a Threefish cipher of the given block size in bits
// using a fixed key and tweak. The key and tweak are copied.
//
// The returned block derives its subkeys on every call; it holds only the key and tweak.
func NewBlock(blockSize int, key, tweak []byte, opts ...Option) (cipher.Block, error) {
	c, err := NewCipher(blockSize, opts...)
	if err != nil {
		return nil, err
	}

	if err := c.checkLengths(key, tweak, make([]byte, c.BlockSize())); err != nil {
		return nil, err
	}

	b := &block{c: c, key: slices.Clone(key)}
	copy(b.tweak[:], tweak)
	return b, nil
}

func (b *block) BlockSize() int { return b.c.BlockSize() }

func (b *block) Encrypt(dst, src []byte) {
	n := b.c.BlockSize()
	if len(src) < n {
		panic("threefish: input not full block")
	}

	if len(dst) < n {
		panic("threefish: output not full block")
	}

	b.c.encryptBlock(dst[:n], b.key, b.tweak[:], src[:n])
}

func (b *block) Decrypt(dst, src []byte) {
	n := b.c.BlockSize()
	if len(src) < n {
		panic("threefish: input not full block")
	}

	if len(dst) < n {
		panic("threefish: output not full block")
	}

	b.c.decryptBlock(dst[:n], b.key, b.tweak[:], src[:n])
}
