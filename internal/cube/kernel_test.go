package cube

import "testing"

func TestFactorialPickComb(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"factorial(0)", factorial(0), 1},
		{"factorial(5)", factorial(5), 120},
		{"pick(8,8)", pick(8, 8), 40320},
		{"pick(12,4)", pick(12, 4), 11880},
		{"comb(12,4)", comb(12, 4), 495},
		{"comb(8,0)", comb(8, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestPermutationIndexBijection(t *testing.T) {
	// A permutation of 0..8 must round-trip through its Lehmer index.
	perm := []uint64{3, 1, 4, 0, 6, 2, 7, 5}
	idx, err := permutationIndex(perm, 8)
	if err != nil {
		t.Fatalf("permutationIndex: %v", err)
	}
	if idx >= pick(8, 8) {
		t.Fatalf("index %d out of range 0..%d", idx, pick(8, 8))
	}

	back := inversePermutationIndex(idx, 8, 8)
	for i := range perm {
		if back[i] != perm[i] {
			t.Fatalf("round trip mismatch at %d: got %v, want %v", i, back, perm)
		}
	}
}

func TestPermutationIndexExhaustive4of12(t *testing.T) {
	seen := make(map[uint64]bool)
	total := pick(12, 4)
	for i := uint64(0); i < total; i++ {
		arr := inversePermutationIndex(i, 4, 12)
		idx, err := permutationIndex(arr, 12)
		if err != nil {
			t.Fatalf("permutationIndex(%v): %v", arr, err)
		}
		if idx != i {
			t.Fatalf("round trip: inversePermutationIndex(%d) -> permutationIndex -> %d", i, idx)
		}
		if seen[idx] {
			t.Fatalf("index %d produced twice", idx)
		}
		seen[idx] = true
	}
}

func TestPermutationIndexRejectsInvalidInput(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		if _, err := permutationIndex([]uint64{1, 1, 2}, 8); err == nil {
			t.Fatal("expected an error for a duplicate value")
		}
	})
	t.Run("out of range", func(t *testing.T) {
		if _, err := permutationIndex([]uint64{0, 1, 8}, 8); err == nil {
			t.Fatal("expected an error for an out-of-range value")
		}
	})
}

func TestUDSliceCombinationBijection(t *testing.T) {
	seen := make(map[uint64][4]uint64)
	for a := uint64(0); a < 12; a++ {
		for b := a + 1; b < 12; b++ {
			for c := b + 1; c < 12; c++ {
				for d := c + 1; d < 12; d++ {
					tuple := [4]uint64{a, b, c, d}
					idx := udSliceCombination(tuple)
					if idx >= 495 {
						t.Fatalf("udSliceCombination(%v) = %d, out of range 0..495", tuple, idx)
					}
					if prior, ok := seen[idx]; ok {
						t.Fatalf("index %d produced by both %v and %v", idx, prior, tuple)
					}
					seen[idx] = tuple
				}
			}
		}
	}
	if len(seen) != 495 {
		t.Fatalf("got %d distinct indices, want 495", len(seen))
	}
}

func TestDecodeBaseZeroPads(t *testing.T) {
	// The known bug this spec calls out: decodeBase must always emit
	// exactly `length` digits, including trailing zero digits, rather
	// than stopping early once the remaining value is zero.
	digits := decodeBase(0, 3, 7)
	if len(digits) != 7 {
		t.Fatalf("decodeBase(0, 3, 7) returned %d digits, want 7", len(digits))
	}
	for i, d := range digits {
		if d != 0 {
			t.Fatalf("digit %d = %d, want 0", i, d)
		}
	}
}

func TestDecodeBaseRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 17, 2186} {
		digits := decodeBase(n, 3, 7)
		var back uint64
		for i := len(digits) - 1; i >= 0; i-- {
			back = back*3 + digits[i]
		}
		if back != n {
			t.Fatalf("decodeBase(%d) round trip = %d", n, back)
		}
	}
}
