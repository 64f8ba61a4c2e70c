package cube

import "testing"

func TestPhase1CoordinateBijectionSample(t *testing.T) {
	// encode(decode(x)) == x for a representative sample of each axis,
	// exercised through the From*/Phase1CubeFrom round trip rather than the
	// full 0..2187, 0..2048, 0..495 ranges (a transition table fills those
	// exhaustively at build time; see the table-builder spot check in
	// solver_test.go).
	for _, twists := range []uint64{0, 1, 17, 2186} {
		c := FromCornerOrientation(twists)
		if got := Phase1CubeFrom(c).Twists; uint64(got) != twists {
			t.Errorf("twists %d -> cube -> %d", twists, got)
		}
	}
	for _, flips := range []uint64{0, 1, 33, 2047} {
		c := FromEdgeOrientation(flips)
		if got := Phase1CubeFrom(c).Flips; uint64(got) != flips {
			t.Errorf("flips %d -> cube -> %d", flips, got)
		}
	}
}

func TestPhase1SolvedCoordinates(t *testing.T) {
	p := Phase1CubeFrom(NewCubieCube())
	if !p.IsSolved() {
		t.Fatalf("solved cubie cube has phase-1 coordinates %+v, want solved", p)
	}
	if p.UDCombination != SolvedUDCombination {
		t.Fatalf("solved ud_combination = %d, want %d", p.UDCombination, SolvedUDCombination)
	}
}

func TestPhase2CubeFromRequiresPhase1Solved(t *testing.T) {
	c := NewCubieCube()
	c.ApplyMove(R1) // breaks phase-1 (twists corners)
	if _, err := Phase2CubeFrom(c); err == nil {
		t.Fatal("expected an error for a phase-1-unsolved cube")
	}
}

func TestPhase2CubeFromSolved(t *testing.T) {
	p, err := Phase2CubeFrom(NewCubieCube())
	if err != nil {
		t.Fatalf("Phase2CubeFrom(solved): %v", err)
	}
	if !p.IsSolved() {
		t.Fatalf("Phase2CubeFrom(solved) = %+v, want solved", p)
	}
}

func TestPhase2CubeFromAfterPhase2Moves(t *testing.T) {
	// A sequence drawn entirely from the phase-2 alphabet always lands back
	// in the phase-1 subgroup, so Phase2CubeFrom must accept it.
	c := NewCubieCube()
	c.ApplyAll([]Move{U1, D2, R2, L2, F2, B2, U3})
	if _, err := Phase2CubeFrom(c); err != nil {
		t.Fatalf("Phase2CubeFrom after phase-2-only moves: %v", err)
	}
}

func TestFromCornerPermutationRoundTrip(t *testing.T) {
	for _, perm := range []uint64{0, 1, 5039, 40319} {
		c := FromCornerPermutation(perm)
		p, err := Phase2CubeFrom(c)
		if err != nil {
			t.Fatalf("Phase2CubeFrom(FromCornerPermutation(%d)): %v", perm, err)
		}
		if uint64(p.Corners) != perm {
			t.Errorf("corners %d -> cube -> %d", perm, p.Corners)
		}
	}
}

func TestFromUDSlicePhase2PermutationRoundTrip(t *testing.T) {
	for _, perm := range []uint64{0, 1, 13, 23} {
		c := FromUDSlicePhase2Permutation(perm)
		p, err := Phase2CubeFrom(c)
		if err != nil {
			t.Fatalf("Phase2CubeFrom(FromUDSlicePhase2Permutation(%d)): %v", perm, err)
		}
		if uint64(p.UDSlice) != perm {
			t.Errorf("ud_slice %d -> cube -> %d", perm, p.UDSlice)
		}
	}
}
