package cube

import "math/rand/v2"

// GenerateScramble returns length uniformly random moves with no two
// consecutive moves sharing a face. This is deliberately looser than the
// solver's legalNext filter: a scramble is free to place a face immediately
// after its opposite, since that restriction exists only to keep the
// search's heuristic admissible, not to keep a scramble well-formed.
func GenerateScramble(length int) []Move {
	moves := make([]Move, 0, length)
	var lastFace Face
	hasLast := false
	for len(moves) < length {
		m := AllMoves[rand.IntN(len(AllMoves))]
		if hasLast && m.Face() == lastFace {
			continue
		}
		moves = append(moves, m)
		lastFace = m.Face()
		hasLast = true
	}
	return moves
}
