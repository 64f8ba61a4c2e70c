package cube

import "testing"

func sameMoves(a, b []Move) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReduceCombinesSameFaceRuns(t *testing.T) {
	tests := []struct {
		name string
		in   []Move
		want []Move
	}{
		{"R R -> R2", []Move{R1, R1}, []Move{R2}},
		{"R R' -> nothing", []Move{R1, R3}, []Move{}},
		{"R2 R2 -> nothing", []Move{R2, R2}, []Move{}},
		{"R R2 -> R'", []Move{R1, R2}, []Move{R3}},
		{"U F -> unchanged", []Move{U1, F1}, []Move{U1, F1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.in)
			if !sameMoves(got, tt.want) {
				t.Errorf("Reduce(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReduceFoldsOppositeFaceSandwich(t *testing.T) {
	// U D U' sandwiches D between two U turns that cancel; U and D commute
	// (disjoint layers), so the whole sequence is equivalent to D alone.
	got := Reduce([]Move{U1, D1, U3})
	want := []Move{D1}
	if !sameMoves(got, want) {
		t.Fatalf("Reduce(U D U') = %v, want %v", got, want)
	}
}

func TestReduceIsIdempotent(t *testing.T) {
	scrambles := [][]Move{
		{R1, R1, U1, D1, U3, F2, B2},
		GenerateScramble(30),
		GenerateScramble(30),
	}
	for _, s := range scrambles {
		once := Reduce(append([]Move(nil), s...))
		twice := Reduce(append([]Move(nil), once...))
		if !sameMoves(once, twice) {
			t.Fatalf("Reduce is not idempotent on %v: Reduce(s)=%v, Reduce(Reduce(s))=%v", s, once, twice)
		}
	}
}

func TestReducePreservesCubeState(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		scramble := GenerateScramble(40)

		direct := NewCubieCube()
		direct.ApplyAll(scramble)

		reduced := NewCubieCube()
		reduced.ApplyAll(Reduce(append([]Move(nil), scramble...)))

		if direct != reduced {
			t.Fatalf("Reduce changed the cube's effect on scramble %v", FormatMoves(scramble))
		}
	}
}
