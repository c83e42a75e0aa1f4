package spectral

import (
	"fmt"
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, numBits, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 4},
		{3, 3, 6},
		{6, 3, 3},
		{1, 1, 1},
		{0b0001, 4, 0b1000},
		{0b1011, 4, 0b1101},
		{1, 10, 512},
	}
	for _, tt := range tests {
		if got := ReverseBits(tt.x, tt.numBits); got != tt.want {
			t.Errorf("ReverseBits(%b, %d) = %b, want %b", tt.x, tt.numBits, got, tt.want)
		}
	}
}

func TestBitReversePermuteOrder(t *testing.T) {
	t.Parallel()
	v := make([]complex128, 8)
	for i := range v {
		v[i] = complex(float64(i), 0)
	}
	BitReversePermute(v)
	want := []float64{0, 4, 2, 6, 1, 5, 3, 7}
	for i, w := range want {
		if real(v[i]) != w {
			t.Fatalf("permuted[%d] = %v, want %v (full: %v)", i, real(v[i]), w, v)
		}
	}
}

func TestBitReversePermuteIsInvolution(t *testing.T) {
	t.Parallel()
	for lg := 0; lg <= 12; lg++ {
		n := 1 << lg
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			v := make([]complex128, n)
			for i := range v {
				v[i] = complex(float64(i), float64(-i))
			}
			BitReversePermute(v)
			BitReversePermute(v)
			for i := range v {
				if v[i] != complex(float64(i), float64(-i)) {
					t.Fatalf("index %d = %v after double permutation", i, v[i])
				}
			}
		})
	}
}

func TestBitReverseCopyMatchesPermute(t *testing.T) {
	t.Parallel()
	src := randomSequence(64, 3)
	inPlace := append([]complex128(nil), src...)
	BitReversePermute(inPlace)

	dst := make([]complex128, len(src))
	bitReverseCopy(dst, src)
	for i := range dst {
		if dst[i] != inPlace[i] {
			t.Fatalf("bitReverseCopy[%d] = %v, BitReversePermute gives %v", i, dst[i], inPlace[i])
		}
	}
}

func TestBitReversePermutePanicsOnBadLength(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for length 6")
		}
	}()
	BitReversePermute(make([]complex128, 6))
}
