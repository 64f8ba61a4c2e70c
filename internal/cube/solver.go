package cube

import (
	"math"
	"sync/atomic"
)

const (
	maxPhase1Depth = 12
	maxPhase2Depth = 18
)

// Solver runs the two-phase IDA* search against a fixed set of tables.
type Solver struct {
	tables    *Tables
	cancelled atomic.Bool
}

// NewSolver wraps tables in a Solver. tables must already be fully built.
func NewSolver(tables *Tables) *Solver {
	return &Solver{tables: tables}
}

// Cancel signals every in-flight recursion to short-circuit. Advisory only:
// a reader observing a stale false merely expands one more node.
func (s *Solver) Cancel() {
	s.cancelled.Store(true)
}

func (s *Solver) phase1Cost(c Phase1Cube) int {
	corner := int(s.tables.Phase1PruneCorners[c.Twists])
	edgeUD := int(s.tables.Phase1PruneEdgesUD[int(c.Flips)*amountUDSliceCombinations+int(c.UDCombination)])
	if corner > edgeUD {
		return corner
	}
	return edgeUD
}

func (s *Solver) phase2Cost(c Phase2Cube) int {
	corner := int(s.tables.Phase2PruneCorners[c.Corners])
	edgeUD := int(s.tables.Phase2PruneEdgesUD[int(c.Edges)*amountUDSlicePhase2Permutation+int(c.UDSlice)])
	if corner > edgeUD {
		return corner
	}
	return edgeUD
}

// Phase1 runs IDA* against the phase-1 target and returns the move list that
// reaches it, or nil if the search was cancelled before succeeding.
func (s *Solver) Phase1(start Phase1Cube) []Move {
	bound := s.phase1Cost(start)
	path := make([]Move, 0, maxPhase1Depth)
	for {
		cost := s.phase1Search(start, &path, 0, bound, 0, false)
		if cost == 0 {
			return append([]Move(nil), path...)
		}
		if cost == math.MaxInt {
			return nil
		}
		bound = cost
	}
}

func (s *Solver) phase1Search(pos Phase1Cube, path *[]Move, cost, bound int, lastMove Move, hasLast bool) int {
	if s.cancelled.Load() {
		return math.MaxInt
	}

	newCost := cost + s.phase1Cost(pos)
	if newCost > bound {
		return newCost
	}
	if pos.IsSolved() {
		return 0
	}

	min := math.MaxInt
	for _, m := range AllMoves {
		if !legalNext(m, lastMove, hasLast) {
			continue
		}

		next := pos
		next.ApplyMove(s.tables, m)
		*path = append(*path, m)

		result := s.phase1Search(next, path, cost+1, bound, m, true)
		if result == 0 {
			return 0
		}
		if result < min {
			min = result
		}

		*path = (*path)[:len(*path)-1]
	}
	return min
}

// Phase2 runs IDA* against the solved state restricted to the phase-2
// alphabet and returns the move list that reaches it, or nil if cancelled.
func (s *Solver) Phase2(start Phase2Cube) []Move {
	bound := s.phase2Cost(start)
	path := make([]Move, 0, maxPhase2Depth)
	for {
		cost := s.phase2Search(start, &path, 0, bound, 0, false)
		if cost == 0 {
			return append([]Move(nil), path...)
		}
		if cost == math.MaxInt {
			return nil
		}
		bound = cost
	}
}

func (s *Solver) phase2Search(pos Phase2Cube, path *[]Move, cost, bound int, lastMove Move, hasLast bool) int {
	if s.cancelled.Load() {
		return math.MaxInt
	}

	newCost := cost + s.phase2Cost(pos)
	if newCost > bound {
		return newCost
	}
	if pos.IsSolved() {
		return 0
	}

	min := math.MaxInt
	for _, m := range Phase2Moves {
		if !legalNext(m, lastMove, hasLast) {
			continue
		}

		next := pos
		next.ApplyMove(s.tables, m)
		*path = append(*path, m)

		result := s.phase2Search(next, path, cost+1, bound, m, true)
		if result == 0 {
			return 0
		}
		if result < min {
			min = result
		}

		*path = (*path)[:len(*path)-1]
	}
	return min
}

// Solve runs the full concatenation contract: phase-1 IDA*, simplify and
// apply its result, phase-2 IDA* from there, then simplify the
// concatenation of both. It does not retry phase 1 at greater depth to
// search for a shorter overall solution — it takes the first phase-1
// solution at its minimum depth, same as the system this was ported from.
func (s *Solver) Solve(c CubieCube) ([]Move, error) {
	phase1Cube := Phase1CubeFrom(c)
	phase1Solution := s.Phase1(phase1Cube)
	phase1Solution = Reduce(phase1Solution)

	working := c
	working.ApplyAll(phase1Solution)

	phase2Cube, err := Phase2CubeFrom(working)
	if err != nil {
		return nil, err
	}
	phase2Solution := s.Phase2(phase2Cube)

	solution := make([]Move, 0, len(phase1Solution)+len(phase2Solution))
	solution = append(solution, phase1Solution...)
	solution = append(solution, phase2Solution...)
	return Reduce(solution), nil
}
