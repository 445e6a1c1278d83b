package main

import (
	"bufio"
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// pad splits data into blocks of the given size, zero-padding the last one. Empty input yields no blocks.
func pad(data []byte, size int) [][]byte {
	var blocks [][]byte
	for len(data) > 0 {
		b := make([]byte, size)
		n := copy(b, data)
		blocks = append(blocks, b)
		data = data[n:]
	}
	return blocks
}

// encryptBlocks zero-pads the input, encrypts each block independently, and writes one hex-encoded block per line.
// It returns the number of blocks written.
func encryptBlocks(block cipher.Block, in io.Reader, out io.Writer) (int, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return 0, err
	}

	w := bufio.NewWriter(out)
	blocks := pad(data, block.BlockSize())
	for _, b := range blocks {
		block.Encrypt(b, b)
		if _, err := fmt.Fprintln(w, hex.EncodeToString(b)); err != nil {
			return 0, err
		}
	}
	return len(blocks), w.Flush()
}

// decryptBlocks reads one hex-encoded block per line, decrypts each, and writes the concatenated plaintext. If trim is
// set, trailing zero bytes are removed from the output.
func decryptBlocks(block cipher.Block, in io.Reader, out io.Writer, trim bool) (int, error) {
	var plaintext []byte

	n := 0
	s := bufio.NewScanner(in)
	s.Buffer(nil, 1<<20)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		n++

		b, err := hex.DecodeString(line)
		if err != nil {
			return 0, fmt.Errorf("block %d: %w", n, err)
		}

		if len(b) != block.BlockSize() {
			return 0, fmt.Errorf("block %d: got %d bytes, want %d", n, len(b), block.BlockSize())
		}

		block.Decrypt(b, b)
		plaintext = append(plaintext, b...)
	}

	if err := s.Err(); err != nil {
		return 0, err
	}

	if trim {
		plaintext = bytes.TrimRight(plaintext, "\x00")
	}

	_, err := out.Write(plaintext)
	return n, err
}
