package cube

// CubieCube is the ground-truth cube representation: an 8-tuple of corners
// and a 12-tuple of edges, each held at a fixed slot. The tuple at slot i
// holds whichever piece currently occupies it, tagged with that piece's
// orientation relative to the slot.
type CubieCube struct {
	Corners [8]Corner
	Edges   [12]Edge
}

// corner slot order: UBL, UBR, UFR, UFL, DFL, DFR, DBR, DBL
// edge slot order:   UB, UR, UF, UL, BL, BR, FR, FL, DF, DR, DB, DL

// NewCubieCube returns the identity (solved) state.
func NewCubieCube() CubieCube {
	return CubieCube{
		Corners: [8]Corner{
			cornerFromPiece(UBL), cornerFromPiece(UBR), cornerFromPiece(UFR), cornerFromPiece(UFL),
			cornerFromPiece(DFL), cornerFromPiece(DFR), cornerFromPiece(DBR), cornerFromPiece(DBL),
		},
		Edges: [12]Edge{
			edgeFromPiece(UB), edgeFromPiece(UR), edgeFromPiece(UF), edgeFromPiece(UL),
			edgeFromPiece(BL), edgeFromPiece(BR), edgeFromPiece(FR), edgeFromPiece(FL),
			edgeFromPiece(DF), edgeFromPiece(DR), edgeFromPiece(DB), edgeFromPiece(DL),
		},
	}
}

// IsSolved reports whether c is the identity state.
func (c CubieCube) IsSolved() bool {
	return c == NewCubieCube()
}

// faceIndices gives the four corner and four edge slot indices each face turn
// cycles, in the fixed order used both here and by the table builder.
func faceIndices(f Face) (corners, edges [4]int) {
	switch f {
	case U:
		return [4]int{0, 1, 2, 3}, [4]int{0, 1, 2, 3}
	case D:
		return [4]int{4, 5, 6, 7}, [4]int{8, 9, 10, 11}
	case L:
		return [4]int{0, 3, 4, 7}, [4]int{3, 7, 11, 4}
	case R:
		return [4]int{2, 1, 6, 5}, [4]int{1, 5, 9, 6}
	case F:
		return [4]int{3, 2, 5, 4}, [4]int{2, 6, 8, 7}
	default: // B
		return [4]int{1, 0, 7, 6}, [4]int{0, 4, 10, 5}
	}
}

func sliceIndices(s SliceLayer) [4]int {
	switch s {
	case SliceE:
		return [4]int{4, 5, 6, 7}
	case SliceM:
		return [4]int{2, 0, 10, 8}
	default: // SliceS
		return [4]int{3, 1, 9, 11}
	}
}

func cycle4[T any](a, b, c, d T, dir TurnDirection) (T, T, T, T) {
	switch dir {
	case CW:
		return d, a, b, c
	case Double:
		return c, d, a, b
	default: // CCW
		return b, c, d, a
	}
}

// ApplyMove mutates c under face turn m and returns c, so calls can chain:
// cube.ApplyMove(m1).ApplyMove(m2).
func (c *CubieCube) ApplyMove(m Move) *CubieCube {
	face, dir := m.Face(), m.Direction()
	corners, edges := faceIndices(face)

	if (face == R || face == F || face == L || face == B) && dir != Double {
		c.Corners[corners[0]].Twist()
		c.Corners[corners[1]].DoubleTwist()
		c.Corners[corners[2]].Twist()
		c.Corners[corners[3]].DoubleTwist()
	}

	if (face == F || face == B) && dir != Double {
		for _, e := range edges {
			c.Edges[e].Flip()
		}
	}

	c.Corners[corners[0]], c.Corners[corners[1]], c.Corners[corners[2]], c.Corners[corners[3]] =
		cycle4(c.Corners[corners[0]], c.Corners[corners[1]], c.Corners[corners[2]], c.Corners[corners[3]], dir)
	c.Edges[edges[0]], c.Edges[edges[1]], c.Edges[edges[2]], c.Edges[edges[3]] =
		cycle4(c.Edges[edges[0]], c.Edges[edges[1]], c.Edges[edges[2]], c.Edges[edges[3]], dir)

	return c
}

// ApplySliceMove cycles the four edges of the named middle slice. It is not
// part of the 18-move alphabet; it exists to build fixtures like FromEquator.
func (c *CubieCube) ApplySliceMove(s SliceLayer, dir TurnDirection) {
	idx := sliceIndices(s)
	c.Edges[idx[0]], c.Edges[idx[1]], c.Edges[idx[2]], c.Edges[idx[3]] =
		cycle4(c.Edges[idx[0]], c.Edges[idx[1]], c.Edges[idx[2]], c.Edges[idx[3]], dir)
}

// FromEquator returns a solved cube reoriented so that the named slice layer
// sits on the equator (the UD-slice). Useful for building regression
// fixtures that exercise the non-default slice axes.
func FromEquator(layer SliceLayer) CubieCube {
	c := NewCubieCube()
	switch layer {
	case SliceE:
		return c
	case SliceS:
		c.ApplyMove(R1)
		c.ApplyMove(L3)
		c.ApplySliceMove(SliceM, CCW)
		return c
	default: // SliceM
		c.ApplyMove(F1)
		c.ApplyMove(B3)
		c.ApplySliceMove(SliceS, CCW)
		return c
	}
}

// WhereIsEdge returns the slot currently occupied by the given edge piece.
func (c CubieCube) WhereIsEdge(piece EdgePiece) int {
	for i, e := range c.Edges {
		if e.Piece == piece {
			return i
		}
	}
	return 0
}

// WhereIsCorner returns the slot currently occupied by the given corner piece.
func (c CubieCube) WhereIsCorner(piece CornerPiece) int {
	for i, cr := range c.Corners {
		if cr.Piece == piece {
			return i
		}
	}
	return 0
}

// solvedIndexCorner is the slot a corner piece occupies when the cube is solved.
func solvedIndexCorner(p CornerPiece) int {
	switch p {
	case UBL:
		return 0
	case UBR:
		return 1
	case UFR:
		return 2
	case UFL:
		return 3
	case DFL:
		return 4
	case DFR:
		return 5
	case DBR:
		return 6
	default: // DBL
		return 7
	}
}

// solvedIndexEdge is the slot an edge piece occupies when the cube is solved.
func solvedIndexEdge(p EdgePiece) int {
	switch p {
	case UB:
		return 0
	case UR:
		return 1
	case UF:
		return 2
	case UL:
		return 3
	case BL:
		return 4
	case BR:
		return 5
	case FR:
		return 6
	case FL:
		return 7
	case DF:
		return 8
	case DR:
		return 9
	case DB:
		return 10
	default: // DL
		return 11
	}
}

func cornerFromIndex(i int) CornerPiece {
	return [8]CornerPiece{UBL, UBR, UFR, UFL, DFL, DFR, DBR, DBL}[i]
}

func edgeFromIndex(i int) EdgePiece {
	return [12]EdgePiece{UB, UR, UF, UL, BL, BR, FR, FL, DF, DR, DB, DL}[i]
}

// normalizeEdgeIndex compresses a non-UD-slice edge slot index ({0,1,2,3,
// 8,9,10,11}) down to 0..8 for the phase-2 edge-permutation encoding.
func normalizeEdgeIndex(index int) int {
	switch index {
	case 0, 1, 2, 3:
		return index
	default: // 8, 9, 10, 11
		return index - 4
	}
}

// FromCornerOrientation builds a cube whose corners carry exactly the given
// twists coordinate (0..2187) and whose permutation is the identity — used
// by the table builder, which only ever needs the orientation axis isolated.
func FromCornerOrientation(orientation uint64) CubieCube {
	digits := decodeBase(orientation, 3, 7)
	c := NewCubieCube()
	var twists uint64
	for i, d := range digits {
		twists += d
		piece := cornerFromIndex(i)
		var o CornerOrientation
		switch d {
		case 0:
			o = Normal
		case 1:
			o = OneTwist
		default:
			o = TwoTwist
		}
		c.Corners[i] = Corner{Piece: piece, Orientation: o}
	}
	switch twists % 3 {
	case 1:
		c.Corners[7].DoubleTwist()
	case 2:
		c.Corners[7].Twist()
	}
	return c
}

// FromEdgeOrientation builds a cube whose edges carry exactly the given
// flips coordinate (0..2048) and whose permutation is the identity.
func FromEdgeOrientation(orientation uint64) CubieCube {
	digits := decodeBase(orientation, 2, 11)
	c := NewCubieCube()
	flips := 0
	for i, d := range digits {
		if d == 1 {
			c.Edges[i].Flip()
			flips++
		}
	}
	if flips%2 == 1 {
		c.Edges[11].Flip()
	}
	return c
}

// FromUDSliceCombination builds a cube whose UD-slice edges occupy exactly
// the slots named by combination (looked up in udSliceCombinations). Equator
// slots left without a UD-slice edge hold a placeholder UB piece and every
// other slot keeps its solved piece — used to isolate the ud_combination
// axis during table construction.
func FromUDSliceCombination(combination uint64, slots [495][4]uint8) CubieCube {
	slotSet := slots[combination]
	c := NewCubieCube()
	for i := 4; i <= 7; i++ {
		c.Edges[i].Piece = UB
	}
	for i, slot := range slotSet {
		piece := [4]EdgePiece{BL, BR, FL, FR}[i]
		c.Edges[slot] = Edge{Piece: piece, Orientation: EdgeNormal}
	}
	return c
}

// FromUDSlicePhase2Permutation builds a cube whose four UD-slice edges sit
// in the equator in the permutation named by perm (0..24).
func FromUDSlicePhase2Permutation(perm uint64) CubieCube {
	locations := inversePermutationIndex(perm, 4, 4)
	c := NewCubieCube()
	for i, edge := range locations {
		c.Edges[4+i] = Edge{Piece: [4]EdgePiece{BL, BR, FR, FL}[edge], Orientation: EdgeNormal}
	}
	return c
}

// FromCornerPermutation builds a cube with the identity orientation and the
// corner permutation named by perm (0..40320).
func FromCornerPermutation(perm uint64) CubieCube {
	permutation := inversePermutationIndex(perm, 8, 8)
	c := NewCubieCube()
	for i, p := range permutation {
		c.Corners[i] = Corner{Piece: cornerFromIndex(int(p)), Orientation: Normal}
	}
	return c
}

// FromPhase2EdgePermutation builds a cube with the identity orientation and
// the permutation named by perm (0..40320) applied to the 8 non-slice edges.
func FromPhase2EdgePermutation(perm uint64) CubieCube {
	permutation := inversePermutationIndex(perm, 8, 8)
	c := NewCubieCube()
	slots := [8]int{0, 1, 2, 3, 8, 9, 10, 11}
	for i, p := range permutation {
		c.Edges[slots[i]] = Edge{Piece: edgeFromIndex(slots[p]), Orientation: EdgeNormal}
	}
	return c
}

// colorsOfCorner returns a piece's sticker colors in (U/D, F/B, L/R) order.
func colorsOfCorner(p CornerPiece) [3]Color {
	switch p {
	case UFR:
		return [3]Color{White, Green, Red}
	case UFL:
		return [3]Color{White, Green, Orange}
	case UBL:
		return [3]Color{White, Blue, Orange}
	case UBR:
		return [3]Color{White, Blue, Red}
	case DFR:
		return [3]Color{Yellow, Green, Red}
	case DFL:
		return [3]Color{Yellow, Green, Orange}
	case DBL:
		return [3]Color{Yellow, Blue, Orange}
	default: // DBR
		return [3]Color{Yellow, Blue, Red}
	}
}

func colorsOfEdge(p EdgePiece) [2]Color {
	switch p {
	case UF:
		return [2]Color{White, Green}
	case UR:
		return [2]Color{White, Red}
	case UB:
		return [2]Color{White, Blue}
	case UL:
		return [2]Color{White, Orange}
	case BR:
		return [2]Color{Blue, Red}
	case FR:
		return [2]Color{Green, Red}
	case BL:
		return [2]Color{Blue, Orange}
	case FL:
		return [2]Color{Green, Orange}
	case DF:
		return [2]Color{Yellow, Green}
	case DR:
		return [2]Color{Yellow, Red}
	case DB:
		return [2]Color{Yellow, Blue}
	default: // DL
		return [2]Color{Yellow, Orange}
	}
}

// indicesOfCorner gives the three sticker positions (in the 54-sticker
// U,B,R,F,L,D face-block layout) of the corner at the given slot, in
// (top-or-bottom, front-or-back, left-or-right) order.
func indicesOfCorner(slot int) [3]int {
	switch slot {
	case 0:
		return [3]int{0, 9 + 2, 36}
	case 1:
		return [3]int{2, 9, 18 + 2}
	case 2:
		return [3]int{8, 27 + 2, 18}
	case 3:
		return [3]int{6, 27, 36 + 2}
	case 4:
		return [3]int{45, 27 + 6, 36 + 8}
	case 5:
		return [3]int{45 + 2, 27 + 8, 18 + 6}
	case 6:
		return [3]int{45 + 8, 9 + 6, 18 + 8}
	default: // 7
		return [3]int{45 + 6, 9 + 8, 36 + 6}
	}
}

func indicesOfEdge(slot int) [2]int {
	switch slot {
	case 0:
		return [2]int{1, 9 + 1}
	case 1:
		return [2]int{5, 18 + 1}
	case 2:
		return [2]int{7, 27 + 1}
	case 3:
		return [2]int{3, 36 + 1}
	case 4:
		return [2]int{9 + 5, 36 + 3}
	case 5:
		return [2]int{9 + 3, 18 + 5}
	case 6:
		return [2]int{27 + 5, 18 + 3}
	case 7:
		return [2]int{27 + 3, 36 + 5}
	case 8:
		return [2]int{45 + 1, 27 + 7}
	case 9:
		return [2]int{45 + 5, 18 + 7}
	case 10:
		return [2]int{45 + 7, 9 + 7}
	default: // 11
		return [2]int{45 + 3, 36 + 7}
	}
}

func indexOfCenter(face int) int {
	return face*9 + 4
}

// cornerFromColors identifies the piece and orientation implied by the three
// sticker colors observed at slot, read in (top-or-bottom, front-or-back,
// left-or-right) order.
func cornerFromColors(colors [3]Color, slot int) (Corner, error) {
	sorted := colors
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	var piece CornerPiece
	switch sorted {
	case [3]Color{White, Red, Green}:
		piece = UFR
	case [3]Color{White, Red, Blue}:
		piece = UBR
	case [3]Color{White, Orange, Green}:
		piece = UFL
	case [3]Color{White, Orange, Blue}:
		piece = UBL
	case [3]Color{Yellow, Red, Green}:
		piece = DFR
	case [3]Color{Yellow, Red, Blue}:
		piece = DBR
	case [3]Color{Yellow, Orange, Green}:
		piece = DFL
	case [3]Color{Yellow, Orange, Blue}:
		piece = DBL
	default:
		return Corner{}, wrapInvalidInput("cornerFromColors: %v is not a valid corner", colors)
	}

	var axis int
	switch {
	case colors[0] == White || colors[0] == Yellow:
		axis = 0
	case colors[1] == White || colors[1] == Yellow:
		axis = 1
	case colors[2] == White || colors[2] == Yellow:
		axis = 2
	default:
		return Corner{}, wrapInvalidInput("cornerFromColors: %v has no U/D sticker", colors)
	}

	even := slot%2 == 0
	var orientation CornerOrientation
	switch axis {
	case 0:
		orientation = Normal
	case 1:
		if even {
			orientation = TwoTwist
		} else {
			orientation = OneTwist
		}
	default: // 2
		if even {
			orientation = OneTwist
		} else {
			orientation = TwoTwist
		}
	}

	return Corner{Piece: piece, Orientation: orientation}, nil
}

func edgeFromColors(colors [2]Color) (Edge, error) {
	type mapping struct {
		first, second Color
		piece         EdgePiece
		orientation   EdgeOrientation
	}
	table := []mapping{
		{White, Red, UR, EdgeNormal}, {Red, White, UR, Flipped},
		{White, Green, UF, EdgeNormal}, {Green, White, UF, Flipped},
		{White, Orange, UL, EdgeNormal}, {Orange, White, UL, Flipped},
		{White, Blue, UB, EdgeNormal}, {Blue, White, UB, Flipped},
		{Yellow, Red, DR, EdgeNormal}, {Red, Yellow, DR, Flipped},
		{Yellow, Green, DF, EdgeNormal}, {Green, Yellow, DF, Flipped},
		{Yellow, Orange, DL, EdgeNormal}, {Orange, Yellow, DL, Flipped},
		{Yellow, Blue, DB, EdgeNormal}, {Blue, Yellow, DB, Flipped},
		{Green, Red, FR, EdgeNormal}, {Red, Green, FR, Flipped},
		{Blue, Red, BR, EdgeNormal}, {Red, Blue, BR, Flipped},
		{Green, Orange, FL, EdgeNormal}, {Orange, Green, FL, Flipped},
		{Blue, Orange, BL, EdgeNormal}, {Orange, Blue, BL, Flipped},
	}
	for _, row := range table {
		if colors[0] == row.first && colors[1] == row.second {
			return Edge{Piece: row.piece, Orientation: row.orientation}, nil
		}
	}
	return Edge{}, wrapInvalidInput("edgeFromColors: %v is not a valid edge", colors)
}

// FromColors decodes a 54-sticker layout (U,B,R,F,L,D face blocks of 9
// stickers each, each face read left-to-right top-to-bottom) into a cube.
// It fails with ErrInvalidInput if any three (or two) stickers don't name a
// real corner (or edge), or if center colors don't match the fixed
// U=White,B=Blue,R=Red,F=Green,L=Orange,D=Yellow assignment the rest of
// this package assumes. It does not check that each piece appears exactly
// once, nor the twist, flip or permutation parity of the result.
func FromColors(colors [54]Color) (CubieCube, error) {
	for face, col := range [6]Color{White, Blue, Red, Green, Orange, Yellow} {
		if got := colors[indexOfCenter(face)]; got != col {
			return CubieCube{}, wrapInvalidInput("FromColors: center of face %d is %v, want %v", face, got, col)
		}
	}
	var c CubieCube
	for i := 0; i < 12; i++ {
		idx := indicesOfEdge(i)
		edge, err := edgeFromColors([2]Color{colors[idx[0]], colors[idx[1]]})
		if err != nil {
			return CubieCube{}, err
		}
		c.Edges[i] = edge
	}
	for i := 0; i < 8; i++ {
		idx := indicesOfCorner(i)
		corner, err := cornerFromColors([3]Color{colors[idx[0]], colors[idx[1]], colors[idx[2]]}, i)
		if err != nil {
			return CubieCube{}, err
		}
		c.Corners[i] = corner
	}
	return c, nil
}

// ToColors renders c as a 54-sticker layout in U,B,R,F,L,D face-block order.
func (c CubieCube) ToColors() [54]Color {
	var colors [54]Color

	for slot, corner := range c.Corners {
		pieceColors := colorsOfCorner(corner.Piece)
		idx := indicesOfCorner(slot)
		solved := solvedIndexCorner(corner.Piece)

		var topIndex int
		switch corner.Orientation {
		case Normal:
			topIndex = 0
		case OneTwist:
			if solved%2 == 0 {
				topIndex = 1
			} else {
				topIndex = 2
			}
		default: // TwoTwist
			if solved%2 == 0 {
				topIndex = 2
			} else {
				topIndex = 1
			}
		}

		var frontIndex int
		switch corner.Orientation {
		case Normal:
			if solved%2 == slot%2 {
				frontIndex = 1
			} else {
				frontIndex = 2
			}
		case OneTwist:
			switch {
			case solved%2 == 0 && slot%2 == 0:
				frontIndex = 2
			case solved%2 == 0 && slot%2 == 1:
				frontIndex = 0
			case solved%2 == 1 && slot%2 == 0:
				frontIndex = 1
			default:
				frontIndex = 0
			}
		default: // TwoTwist
			switch {
			case solved%2 == 0 && slot%2 == 0:
				frontIndex = 0
			case solved%2 == 0 && slot%2 == 1:
				frontIndex = 1
			case solved%2 == 1 && slot%2 == 0:
				frontIndex = 0
			default:
				frontIndex = 2
			}
		}

		sideIndex := 3 - topIndex - frontIndex

		colors[idx[0]] = pieceColors[topIndex]
		colors[idx[1]] = pieceColors[frontIndex]
		colors[idx[2]] = pieceColors[sideIndex]
	}

	for slot, edge := range c.Edges {
		pieceColors := colorsOfEdge(edge.Piece)
		idx := indicesOfEdge(slot)
		if edge.Orientation == EdgeNormal {
			colors[idx[0]] = pieceColors[0]
			colors[idx[1]] = pieceColors[1]
		} else {
			colors[idx[0]] = pieceColors[1]
			colors[idx[1]] = pieceColors[0]
		}
	}

	for face, col := range [6]Color{White, Blue, Red, Green, Orange, Yellow} {
		colors[indexOfCenter(face)] = col
	}

	return colors
}
