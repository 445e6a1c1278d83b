package mix

import (
	"encoding/binary"
	"slices"
	"testing"

	"github.com/codahale/threefish/internal/testdata"
)

func TestMix(t *testing.T) {
	tests := []struct {
		x0, x1 uint64
		r      int
		y0, y1 uint64
	}{
		{0, 0, 14, 0, 0},
		{1, 1, 1, 2, 0},
		{0xFFFFFFFFFFFFFFFF, 1, 63, 0, 0x8000000000000000},
		{0x8000000000000000, 0x8000000000000000, 1, 0, 1},
		{0x0123456789ABCDEF, 0xFEDCBA9876543210, 32, 0xFFFFFFFFFFFFFFFF, 0x89ABCDEF01234567},
	}

	for _, tt := range tests {
		y0, y1 := Mix(tt.x0, tt.x1, tt.r)
		if y0 != tt.y0 || y1 != tt.y1 {
			t.Errorf("Mix(%#x, %#x, %d) = (%#x, %#x), want = (%#x, %#x)", tt.x0, tt.x1, tt.r, y0, y1, tt.y0, tt.y1)
		}

		x0, x1 := Unmix(tt.y0, tt.y1, tt.r)
		if x0 != tt.x0 || x1 != tt.x1 {
			t.Errorf("Unmix(%#x, %#x, %d) = (%#x, %#x), want = (%#x, %#x)", tt.y0, tt.y1, tt.r, x0, x1, tt.x0, tt.x1)
		}
	}
}

func TestUnmixInvertsMixForAllRotations(t *testing.T) {
	drbg := testdata.New("threefish mix")
	for r := 1; r < 64; r++ {
		for range 64 {
			w := drbg.Data(16)
			x0, x1 := binary.LittleEndian.Uint64(w), binary.LittleEndian.Uint64(w[8:])
			y0, y1 := Mix(x0, x1, r)
			if a, b := Unmix(y0, y1, r); a != x0 || b != x1 {
				t.Fatalf("Unmix(Mix(%#x, %#x, %d)) = (%#x, %#x)", x0, x1, r, a, b)
			}
		}
	}
}

func TestPairs(t *testing.T) {
	rot := []int{14, 16}
	state := []uint64{1, 2, 3, 4}
	want := slices.Clone(state)

	Pairs(state, rot)
	a0, a1 := Mix(1, 2, 14)
	b0, b1 := Mix(3, 4, 16)
	if got, w := state, []uint64{a0, a1, b0, b1}; !slices.Equal(got, w) {
		t.Errorf("Pairs = %x, want = %x", got, w)
	}

	UnmixPairs(state, rot)
	if got := state; !slices.Equal(got, want) {
		t.Errorf("UnmixPairs(Pairs(x)) = %x, want = %x", got, want)
	}
}

func FuzzMix(f *testing.F) {
	f.Add(uint64(0), uint64(0), 1)
	f.Add(uint64(0xFFFFFFFFFFFFFFFF), uint64(0xFFFFFFFFFFFFFFFF), 63)
	f.Fuzz(func(t *testing.T, x0, x1 uint64, r int) {
		r = 1 + (r&0x7fffffff)%63
		y0, y1 := Mix(x0, x1, r)
		if a, b := Unmix(y0, y1, r); a != x0 || b != x1 {
			t.Errorf("Unmix(Mix(%#x, %#x, %d)) = (%#x, %#x)", x0, x1, r, a, b)
		}
	})
}

func BenchmarkMix(b *testing.B) {
	x0, x1 := uint64(0x0123456789ABCDEF), uint64(0xFEDCBA9876543210)
	for b.Loop() {
		x0, x1 = Mix(x0, x1, 37)
	}
	_, _ = x0, x1
}
