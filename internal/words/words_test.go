package words

import (
	"bytes"
	"encoding/hex"
	"slices"
	"testing"

	"github.com/codahale/threefish/internal/testdata"
)

func TestLoad(t *testing.T) {
	src, _ := hex.DecodeString("0001020304050607f8f9fafbfcfdfeff")
	dst := make([]uint64, 2)
	Load(dst, src)

	if got, want := dst, []uint64{0x0706050403020100, 0xFFFEFDFCFBFAF9F8}; !slices.Equal(got, want) {
		t.Errorf("Load(%x) = %x, want = %x", src, got, want)
	}
}

func TestStore(t *testing.T) {
	dst := make([]byte, 16)
	Store(dst, []uint64{0x0706050403020100, 0xFFFEFDFCFBFAF9F8})

	if got, want := hex.EncodeToString(dst), "0001020304050607f8f9fafbfcfdfeff"; got != want {
		t.Errorf("Store() = %s, want = %s", got, want)
	}
}

func TestEmpty(t *testing.T) {
	Load(nil, nil)
	Store(nil, nil)
}

func TestShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Load with a short source did not panic")
		}
	}()

	Load(make([]uint64, 2), make([]byte, 15))
}

func FuzzGenericConsistency(f *testing.F) {
	drbg := testdata.New("threefish words")
	for _, n := range []int{0, 8, 32, 64, 128} {
		f.Add(drbg.Data(n))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		n := len(data) / 8
		w1, w2 := make([]uint64, n), make([]uint64, n)
		Load(w1, data)
		loadGeneric(w2, data)

		if !slices.Equal(w1, w2) {
			t.Fatalf("Load(%x) = %x, loadGeneric = %x", data, w1, w2)
		}

		b1, b2 := make([]byte, n*8), make([]byte, n*8)
		Store(b1, w1)
		storeGeneric(b2, w1)

		if !bytes.Equal(b1, b2) {
			t.Errorf("Store(%x) = %x, storeGeneric = %x", w1, b1, b2)
		}

		if got, want := b1, data[:n*8]; !bytes.Equal(got, want) {
			t.Errorf("Store(Load(%x)) = %x", want, got)
		}
	})
}
