package cube

import "testing"

func TestNewCubieCubeIsSolved(t *testing.T) {
	if !NewCubieCube().IsSolved() {
		t.Fatal("a fresh CubieCube should be solved")
	}
}

func TestMoveInvolutions(t *testing.T) {
	for _, f := range []Face{U, D, L, R, F, B} {
		t.Run(f.String()+" then "+f.String()+"'", func(t *testing.T) {
			c := NewCubieCube()
			c.ApplyMove(FromFaceDirection(f, CW))
			c.ApplyMove(FromFaceDirection(f, CCW))
			if !c.IsSolved() {
				t.Fatalf("%s %s' did not return to solved", f, f)
			}
		})
		t.Run(f.String()+"2 twice", func(t *testing.T) {
			c := NewCubieCube()
			c.ApplyMove(FromFaceDirection(f, Double))
			c.ApplyMove(FromFaceDirection(f, Double))
			if !c.IsSolved() {
				t.Fatalf("%s2 %s2 did not return to solved", f, f)
			}
		})
		t.Run(f.String()+"^4", func(t *testing.T) {
			c := NewCubieCube()
			for i := 0; i < 4; i++ {
				c.ApplyMove(FromFaceDirection(f, CW))
			}
			if !c.IsSolved() {
				t.Fatalf("%s^4 did not return to solved", f)
			}
		})
	}
}

func cornerTwistSum(c CubieCube) int {
	sum := 0
	for _, corner := range c.Corners {
		sum += int(corner.Orientation)
	}
	return sum % 3
}

func edgeFlipSum(c CubieCube) int {
	sum := 0
	for _, edge := range c.Edges {
		sum += int(edge.Orientation)
	}
	return sum % 2
}

func permutationSign(labels []int) int {
	sign := 1
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if labels[i] > labels[j] {
				sign = -sign
			}
		}
	}
	return sign
}

func cornerSign(c CubieCube) int {
	labels := make([]int, 8)
	for i, corner := range c.Corners {
		labels[i] = solvedIndexCorner(corner.Piece)
	}
	return permutationSign(labels)
}

func edgeSign(c CubieCube) int {
	labels := make([]int, 12)
	for i, edge := range c.Edges {
		labels[i] = solvedIndexEdge(edge.Piece)
	}
	return permutationSign(labels)
}

func TestParityInvariantsHoldAfterRandomSequences(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		c := NewCubieCube()
		scramble := GenerateScramble(40)
		c.ApplyAll(scramble)

		if sum := cornerTwistSum(c); sum != 0 {
			t.Fatalf("corner twist sum = %d after %s, want 0 mod 3", sum, FormatMoves(scramble))
		}
		if sum := edgeFlipSum(c); sum != 0 {
			t.Fatalf("edge flip sum = %d after %s, want 0 mod 2", sum, FormatMoves(scramble))
		}
		if cs, es := cornerSign(c), edgeSign(c); cs != es {
			t.Fatalf("corner sign %d != edge sign %d after %s", cs, es, FormatMoves(scramble))
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		c := NewCubieCube()
		c.ApplyAll(GenerateScramble(15))

		colors := c.ToColors()
		back, err := FromColors(colors)
		if err != nil {
			t.Fatalf("FromColors(ToColors(c)): %v", err)
		}
		if back != c {
			t.Fatalf("FromColors(ToColors(c)) != c\ngot:  %+v\nwant: %+v", back, c)
		}
	}
}

func TestFromEquator(t *testing.T) {
	equator := sliceIndices(SliceE) // always slots {4,5,6,7}
	for _, layer := range []SliceLayer{SliceE, SliceM, SliceS} {
		c := FromEquator(layer)
		for _, slot := range equator {
			if got := sliceOfPiece(c.Edges[slot].Piece); got != layer {
				t.Fatalf("FromEquator(%v): equator slot %d holds a %v-slice piece", layer, slot, got)
			}
		}
	}
}

// sliceOfPiece reports which slice layer's home slots the given edge piece
// occupies when the cube is solved, used only to check FromEquator.
func sliceOfPiece(piece EdgePiece) SliceLayer {
	switch piece {
	case BL, BR, FR, FL:
		return SliceE
	case UF, UB, DF, DB:
		return SliceM
	default: // UR, UL, DR, DL
		return SliceS
	}
}
