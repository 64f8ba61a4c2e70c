package cube

// Phase1Cube is the cube state projected onto the three coordinates phase 1
// cares about: corner twists, edge flips, and which slots hold the UD-slice
// edges. The solved value is (0, 0, 425).
type Phase1Cube struct {
	Twists        uint16 // 0..2187
	Flips         uint16 // 0..2048
	UDCombination uint16 // 0..495
}

// SolvedUDCombination is the ud_combination value of the solved cube: the
// C(12,4)-rank of slots {4,5,6,7}.
const SolvedUDCombination = 425

// NewPhase1Cube returns the solved phase-1 coordinate state.
func NewPhase1Cube() Phase1Cube {
	return Phase1Cube{Twists: 0, Flips: 0, UDCombination: SolvedUDCombination}
}

// IsSolved reports whether p is the phase-1 target.
func (p Phase1Cube) IsSolved() bool {
	return p.Twists == 0 && p.Flips == 0 && p.UDCombination == SolvedUDCombination
}

// ApplyMove advances p by one move via table lookup.
func (p *Phase1Cube) ApplyMove(t *Tables, m Move) *Phase1Cube {
	idx := m.Index()
	p.Twists = t.CornerOrientationMove[int(p.Twists)*18+idx]
	p.Flips = t.EdgeOrientationMove[int(p.Flips)*18+idx]
	p.UDCombination = t.UDSliceCombinationMove[int(p.UDCombination)*18+idx]
	return p
}

// Index returns a single dense index for p, used only for diagnostics.
func (p Phase1Cube) Index() uint64 {
	return uint64(p.Twists)*495*2048 + uint64(p.Flips)*495 + uint64(p.UDCombination)
}

// Phase1CubeFrom projects a cubie cube onto its phase-1 coordinates.
func Phase1CubeFrom(c CubieCube) Phase1Cube {
	var p Phase1Cube
	for i := 0; i <= 6; i++ {
		p.Twists += uint16(c.Corners[i].Orientation) * pow3(i)
	}
	for i := 0; i <= 10; i++ {
		p.Flips += uint16(c.Edges[i].Orientation) * pow2(i)
	}
	p.UDCombination = uint16(udSliceCombination([4]uint64{
		uint64(c.WhereIsEdge(BL)),
		uint64(c.WhereIsEdge(BR)),
		uint64(c.WhereIsEdge(FL)),
		uint64(c.WhereIsEdge(FR)),
	}))
	return p
}

func pow3(i int) uint16 {
	r := uint16(1)
	for ; i > 0; i-- {
		r *= 3
	}
	return r
}

func pow2(i int) uint16 {
	return 1 << uint(i)
}

// Phase2Cube is the cube state projected onto the three coordinates phase 2
// cares about: the corner permutation, the permutation of the 8 non-slice
// edges, and the permutation of the 4 UD-slice edges within the equator.
// The solved value is (0, 0, 0).
type Phase2Cube struct {
	Corners uint16 // 0..40320
	Edges   uint16 // 0..40320
	UDSlice uint8  // 0..24
}

// NewPhase2Cube returns the solved phase-2 coordinate state.
func NewPhase2Cube() Phase2Cube {
	return Phase2Cube{}
}

// IsSolved reports whether p is fully solved.
func (p Phase2Cube) IsSolved() bool {
	return p.Corners == 0 && p.Edges == 0 && p.UDSlice == 0
}

// ApplyMove advances p by one phase-2 move via table lookup. Only the four
// double-turns of R, L, F, B affect UDSlice; U/D turns leave it invariant.
func (p *Phase2Cube) ApplyMove(t *Tables, m Move) *Phase2Cube {
	idx := m.Stage2Index()
	p.Corners = t.CornerPermutationMove[int(p.Corners)*10+idx]
	p.Edges = t.EdgePermutationMove[int(p.Edges)*10+idx]
	switch m {
	case R2:
		p.UDSlice = t.UDSlicePermutationMove[int(p.UDSlice)*4+0]
	case L2:
		p.UDSlice = t.UDSlicePermutationMove[int(p.UDSlice)*4+1]
	case F2:
		p.UDSlice = t.UDSlicePermutationMove[int(p.UDSlice)*4+2]
	case B2:
		p.UDSlice = t.UDSlicePermutationMove[int(p.UDSlice)*4+3]
	}
	return p
}

// Phase2CubeFrom projects a cubie cube onto its phase-2 coordinates. It
// requires c to already be phase-1 solved and fails with
// ErrPrecondViolated otherwise.
func Phase2CubeFrom(c CubieCube) (Phase2Cube, error) {
	if !Phase1CubeFrom(c).IsSolved() {
		return Phase2Cube{}, wrapPrecond("phase2CubeFrom: cube is not phase-1 solved")
	}

	cornerLabels := make([]uint64, 8)
	for i := 0; i < 8; i++ {
		cornerLabels[i] = uint64(solvedIndexCorner(c.Corners[i].Piece))
	}
	cornersIdx, err := permutationIndex(cornerLabels, 8)
	if err != nil {
		return Phase2Cube{}, err
	}

	edgeSlots := [8]int{0, 1, 2, 3, 8, 9, 10, 11}
	edgeLabels := make([]uint64, 8)
	for i, slot := range edgeSlots {
		edgeLabels[i] = uint64(normalizeEdgeIndex(solvedIndexEdge(c.Edges[slot].Piece)))
	}
	edgesIdx, err := permutationIndex(edgeLabels, 8)
	if err != nil {
		return Phase2Cube{}, err
	}

	udLabels := make([]uint64, 4)
	for i, slot := range [4]int{4, 5, 6, 7} {
		udLabels[i] = uint64(solvedIndexEdge(c.Edges[slot].Piece)) - 4
	}
	udIdx, err := permutationIndex(udLabels, 4)
	if err != nil {
		return Phase2Cube{}, err
	}

	return Phase2Cube{Corners: uint16(cornersIdx), Edges: uint16(edgesIdx), UDSlice: uint8(udIdx)}, nil
}
