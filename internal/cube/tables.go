package cube

// Tables holds every precomputed transition and pruning table the solver
// needs. Once built (or loaded), a Tables value is immutable and safe to
// share by reference across any number of readers.
type Tables struct {
	CornerOrientationMove  []uint16 // 2187*18
	EdgeOrientationMove    []uint16 // 2048*18
	UDSliceCombinationMove []uint16 // 495*18
	UDSliceCombinations    [495][4]uint8

	CornerPermutationMove  []uint16 // 40320*10
	EdgePermutationMove    []uint16 // 40320*10
	UDSlicePermutationMove []uint8  // 24*4

	Phase1PruneCorners []uint8 // 2187
	Phase1PruneEdgesUD []uint8 // 2048*495
	Phase2PruneCorners []uint8 // 40320
	Phase2PruneEdgesUD []uint8 // 40320*24
}

const (
	amountCornerOrientations       = 2187
	amountEdgeOrientations         = 2048
	amountUDSliceCombinations      = 495
	amountCornerPermutations       = 40320
	amountPhase2EdgePermutations   = 40320
	amountUDSlicePhase2Permutation = 24

	phase1PruneBudget = 12
	phase2PruneBudget = 18
)

// BuildTables constructs every table from scratch — transition tables by
// direct enumeration, pruning tables by BFS over the transition tables —
// and no table depends on one not yet built. Table construction is a one-time,
// offline, single-threaded step; the result is handed to the solver as a
// read-only resource.
func BuildTables() *Tables {
	t := &Tables{}
	t.UDSliceCombinations = buildUDSliceCombinations()
	t.CornerOrientationMove = buildCornerOrientationMove()
	t.EdgeOrientationMove = buildEdgeOrientationMove()
	t.UDSliceCombinationMove = buildUDSliceCombinationMove(t.UDSliceCombinations)
	t.CornerPermutationMove = buildCornerPermutationMove()
	t.EdgePermutationMove = buildEdgePermutationMove()
	t.UDSlicePermutationMove = buildUDSlicePermutationMove()
	t.Phase1PruneCorners, t.Phase1PruneEdgesUD = buildPhase1PruneTables(t)
	t.Phase2PruneCorners, t.Phase2PruneEdgesUD = buildPhase2PruneTables(t)
	return t
}

func buildUDSliceCombinations() [495][4]uint8 {
	var combinations [495][4]uint8
	total := pick(12, 4)
	for i := uint64(0); i < total; i++ {
		perm := inversePermutationIndex(i, 4, 12)
		sorted := [4]uint64{perm[0], perm[1], perm[2], perm[3]}
		for a := 1; a < 4; a++ {
			for b := a; b > 0 && sorted[b-1] > sorted[b]; b-- {
				sorted[b-1], sorted[b] = sorted[b], sorted[b-1]
			}
		}
		idx := udSliceCombination(sorted)
		combinations[idx] = [4]uint8{uint8(sorted[0]), uint8(sorted[1]), uint8(sorted[2]), uint8(sorted[3])}
	}
	return combinations
}

func buildCornerOrientationMove() []uint16 {
	table := make([]uint16, amountCornerOrientations*18)
	for i := 0; i < amountCornerOrientations; i++ {
		base := FromCornerOrientation(uint64(i))
		for _, m := range AllMoves {
			c := base
			c.ApplyMove(m)
			var orientation uint16
			for j := 6; j >= 0; j-- {
				orientation = orientation*3 + uint16(c.Corners[j].Orientation)
			}
			table[i*18+m.Index()] = orientation
		}
	}
	return table
}

func buildEdgeOrientationMove() []uint16 {
	table := make([]uint16, amountEdgeOrientations*18)
	for i := 0; i < amountEdgeOrientations; i++ {
		base := FromEdgeOrientation(uint64(i))
		for _, m := range AllMoves {
			c := base
			c.ApplyMove(m)
			var orientation uint16
			for j := 10; j >= 0; j-- {
				orientation = orientation*2 + uint16(c.Edges[j].Orientation)
			}
			table[i*18+m.Index()] = orientation
		}
	}
	return table
}

func buildUDSliceCombinationMove(slots [495][4]uint8) []uint16 {
	table := make([]uint16, amountUDSliceCombinations*18)
	for i := 0; i < amountUDSliceCombinations; i++ {
		base := FromUDSliceCombination(uint64(i), slots)
		for _, m := range AllMoves {
			c := base
			c.ApplyMove(m)
			combo := udSliceCombination([4]uint64{
				uint64(c.WhereIsEdge(BL)),
				uint64(c.WhereIsEdge(BR)),
				uint64(c.WhereIsEdge(FL)),
				uint64(c.WhereIsEdge(FR)),
			})
			table[i*18+m.Index()] = uint16(combo)
		}
	}
	return table
}

func buildCornerPermutationMove() []uint16 {
	table := make([]uint16, amountCornerPermutations*10)
	for i := 0; i < amountCornerPermutations; i++ {
		base := FromCornerPermutation(uint64(i))
		for _, m := range Phase2Moves {
			c := base
			c.ApplyMove(m)
			labels := make([]uint64, 8)
			for j := 0; j < 8; j++ {
				labels[j] = uint64(solvedIndexCorner(c.Corners[j].Piece))
			}
			idx, _ := permutationIndex(labels, 8)
			table[i*10+m.Stage2Index()] = uint16(idx)
		}
	}
	return table
}

func buildEdgePermutationMove() []uint16 {
	table := make([]uint16, amountPhase2EdgePermutations*10)
	slots := [8]int{0, 1, 2, 3, 8, 9, 10, 11}
	for i := 0; i < amountPhase2EdgePermutations; i++ {
		base := FromPhase2EdgePermutation(uint64(i))
		for _, m := range Phase2Moves {
			c := base
			c.ApplyMove(m)
			labels := make([]uint64, 8)
			for j, slot := range slots {
				labels[j] = uint64(normalizeEdgeIndex(solvedIndexEdge(c.Edges[slot].Piece)))
			}
			idx, _ := permutationIndex(labels, 8)
			table[i*10+m.Stage2Index()] = uint16(idx)
		}
	}
	return table
}

func buildUDSlicePermutationMove() []uint8 {
	table := make([]uint8, amountUDSlicePhase2Permutation*4)
	for i := 0; i < amountUDSlicePhase2Permutation; i++ {
		base := FromUDSlicePhase2Permutation(uint64(i))
		for col, m := range []Move{R2, L2, F2, B2} {
			c := base
			c.ApplyMove(m)
			labels := make([]uint64, 4)
			for j, slot := range [4]int{4, 5, 6, 7} {
				labels[j] = uint64(solvedIndexEdge(c.Edges[slot].Piece)) - 4
			}
			idx, _ := permutationIndex(labels, 4)
			table[i*4+col] = uint8(idx)
		}
	}
	return table
}

type pruneBFSNode struct {
	phase1  Phase1Cube
	phase2  Phase2Cube
	depth   int
	lastMv  Move
	hasLast bool
}

// buildPhase1PruneTables runs the "two-coordinate BFS" trick: a single
// breadth-first traversal of phase-1 coordinate space fills both the pure
// corner-twist pruning table and the joint (flips, ud_combination) table.
func buildPhase1PruneTables(t *Tables) (corners []uint8, edgesUD []uint8) {
	corners = make([]uint8, amountCornerOrientations)
	edgesUD = make([]uint8, amountEdgeOrientations*amountUDSliceCombinations)

	start := NewPhase1Cube()
	queue := []pruneBFSNode{{phase1: start, depth: 1}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.depth > phase1PruneBudget {
			break
		}

		for _, m := range AllMoves {
			if !legalNext(m, node.lastMv, node.hasLast) {
				continue
			}
			next := node.phase1
			next.ApplyMove(t, m)

			edgeIdx := int(next.Flips)*amountUDSliceCombinations + int(next.UDCombination)
			cornerSeen := corners[next.Twists] != 0
			edgeSeen := edgesUD[edgeIdx] != 0
			if cornerSeen && edgeSeen {
				continue
			}
			if !cornerSeen {
				corners[next.Twists] = uint8(node.depth)
			}
			if !edgeSeen {
				edgesUD[edgeIdx] = uint8(node.depth)
			}

			queue = append(queue, pruneBFSNode{phase1: next, depth: node.depth + 1, lastMv: m, hasLast: true})
		}
	}

	corners[start.Twists] = 0
	edgesUD[int(start.Flips)*amountUDSliceCombinations+int(start.UDCombination)] = 0
	return corners, edgesUD
}

// buildPhase2PruneTables is the phase-2 analogue, walked over the 10-move
// phase-2 alphabet.
func buildPhase2PruneTables(t *Tables) (corners []uint8, edgesUD []uint8) {
	corners = make([]uint8, amountCornerPermutations)
	edgesUD = make([]uint8, amountPhase2EdgePermutations*amountUDSlicePhase2Permutation)

	start := NewPhase2Cube()
	queue := []pruneBFSNode{{phase2: start, depth: 1}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.depth > phase2PruneBudget {
			break
		}

		for _, m := range Phase2Moves {
			if !legalNext(m, node.lastMv, node.hasLast) {
				continue
			}
			next := node.phase2
			next.ApplyMove(t, m)

			edgeIdx := int(next.Edges)*amountUDSlicePhase2Permutation + int(next.UDSlice)
			cornerSeen := corners[next.Corners] != 0
			edgeSeen := edgesUD[edgeIdx] != 0
			if cornerSeen && edgeSeen {
				continue
			}
			if !cornerSeen {
				corners[next.Corners] = uint8(node.depth)
			}
			if !edgeSeen {
				edgesUD[edgeIdx] = uint8(node.depth)
			}

			queue = append(queue, pruneBFSNode{phase2: next, depth: node.depth + 1, lastMv: m, hasLast: true})
		}
	}

	corners[start.Corners] = 0
	edgesUD[int(start.Edges)*amountUDSlicePhase2Permutation+int(start.UDSlice)] = 0
	return corners, edgesUD
}
