package cube

import "strings"

// Move is one of the 18 face turns: each of the six faces times the three
// turn directions. The zero value is U1 (a clockwise U turn).
type Move int

const (
	U1 Move = iota
	U2
	U3
	F1
	F2
	F3
	B1
	B2
	B3
	D1
	D2
	D3
	R1
	R2
	R3
	L1
	L2
	L3
)

// AllMoves is the full 18-move alphabet in index order.
var AllMoves = [18]Move{U1, U2, U3, F1, F2, F3, B1, B2, B3, D1, D2, D3, R1, R2, R3, L1, L2, L3}

// Phase2Moves is the 10-move alphabet {U,D}x{CW,Double,CCW} ∪ {R,L,F,B}x{Double}
// that phase 2 of the solver is restricted to.
var Phase2Moves = [10]Move{U1, U2, U3, D1, D2, D3, R2, L2, F2, B2}

// Face returns the face this move turns.
func (m Move) Face() Face {
	switch m {
	case U1, U2, U3:
		return U
	case F1, F2, F3:
		return F
	case B1, B2, B3:
		return B
	case D1, D2, D3:
		return D
	case R1, R2, R3:
		return R
	default:
		return L
	}
}

// Direction returns how far this move turns its face.
func (m Move) Direction() TurnDirection {
	switch m {
	case U1, F1, B1, D1, R1, L1:
		return CW
	case U2, F2, B2, D2, R2, L2:
		return Double
	default:
		return CCW
	}
}

// Index returns this move's position in the 18-move alphabet, 0..18 — the
// column used to index transition tables built over all moves.
func (m Move) Index() int {
	return int(m)
}

// Stage2Index returns this move's position in the 10-move phase-2 alphabet,
// 0..10. It panics for a move outside Phase2Moves; callers must only call
// this on a move known to be phase-2 legal.
func (m Move) Stage2Index() int {
	switch m {
	case U1:
		return 0
	case U2:
		return 1
	case U3:
		return 2
	case D1:
		return 3
	case D2:
		return 4
	case D3:
		return 5
	case R2:
		return 6
	case L2:
		return 7
	case F2:
		return 8
	case B2:
		return 9
	default:
		panic("cube: Stage2Index called on a non-phase-2 move")
	}
}

// IsPhase2 reports whether m belongs to the phase-2 alphabet.
func (m Move) IsPhase2() bool {
	switch m {
	case U1, U2, U3, D1, D2, D3, R2, L2, F2, B2:
		return true
	default:
		return false
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case U1:
		return U3
	case U3:
		return U1
	case F1:
		return F3
	case F3:
		return F1
	case B1:
		return B3
	case B3:
		return B1
	case D1:
		return D3
	case D3:
		return D1
	case R1:
		return R3
	case R3:
		return R1
	case L1:
		return L3
	case L3:
		return L1
	default:
		return m // the four double-turns are self-inverse
	}
}

// FromFaceDirection builds the move that turns face f by direction d.
func FromFaceDirection(f Face, d TurnDirection) Move {
	switch f {
	case U:
		return [3]Move{U1, U2, U3}[d]
	case D:
		return [3]Move{D1, D2, D3}[d]
	case R:
		return [3]Move{R1, R2, R3}[d]
	case L:
		return [3]Move{L1, L2, L3}[d]
	case F:
		return [3]Move{F1, F2, F3}[d]
	default:
		return [3]Move{B1, B2, B3}[d]
	}
}

// String renders m in standard notation: "U", "U2", "U'", etc.
func (m Move) String() string {
	switch m {
	case U1:
		return "U"
	case U2:
		return "U2"
	case U3:
		return "U'"
	case F1:
		return "F"
	case F2:
		return "F2"
	case F3:
		return "F'"
	case B1:
		return "B"
	case B2:
		return "B2"
	case B3:
		return "B'"
	case D1:
		return "D"
	case D2:
		return "D2"
	case D3:
		return "D'"
	case R1:
		return "R"
	case R2:
		return "R2"
	case R3:
		return "R'"
	case L1:
		return "L"
	case L2:
		return "L2"
	case L3:
		return "L'"
	default:
		return "?"
	}
}

// ParseMove parses a single notation token, e.g. "R", "R2", "R'".
func ParseMove(token string) (Move, error) {
	switch token {
	case "U":
		return U1, nil
	case "U2":
		return U2, nil
	case "U'":
		return U3, nil
	case "F":
		return F1, nil
	case "F2":
		return F2, nil
	case "F'":
		return F3, nil
	case "B":
		return B1, nil
	case "B2":
		return B2, nil
	case "B'":
		return B3, nil
	case "D":
		return D1, nil
	case "D2":
		return D2, nil
	case "D'":
		return D3, nil
	case "R":
		return R1, nil
	case "R2":
		return R2, nil
	case "R'":
		return R3, nil
	case "L":
		return L1, nil
	case "L2":
		return L2, nil
	case "L'":
		return L3, nil
	default:
		return 0, wrapParse("unrecognized move token %q", token)
	}
}

// ParseScramble splits s on whitespace and parses each token as a move.
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move list as space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// legalNext reports whether candidate may legally follow last under the
// redundancy filter shared by table generation and the solver: never repeat
// a face, and never place U right after D, L right after R, or F right after
// B (each such pair is just a reordering of the canonical D-after-U,
// R-after-L or B-after-F order, which stays legal).
func legalNext(candidate Move, last Move, hasLast bool) bool {
	if !hasLast {
		return true
	}
	cf, lf := candidate.Face(), last.Face()
	if cf == lf {
		return false
	}
	switch lf {
	case D:
		if cf == U {
			return false
		}
	case R:
		if cf == L {
			return false
		}
	case B:
		if cf == F {
			return false
		}
	}
	return true
}
