package searcher

import (
	"pegs/board"

	"golang.org/x/exp/rand"
)

// Playout plays uniformly random legal jumps on a copy of b until none is
// left and returns the final board.
func Playout(b *board.Board, rng *rand.Rand) *board.Board {
	state := b.Copy()
	moves := state.ValidMoves()
	for len(moves) > 0 {
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		state.Apply(move)
		moves = state.ValidMoves()
	}
	return state
}

// EstimateWinRate returns the fraction of random playouts from b that end in
// a win. It is a quick solvability probe, not a substitute for Run.
func EstimateWinRate(b *board.Board, playouts int, seed uint64) float64 {
	if playouts <= 0 {
		return 0
	}
	rng := rand.New(rand.NewSource(seed))
	wins := 0
	for i := 0; i < playouts; i++ {
		if Playout(b, rng).IsWin() {
			wins++
		}
	}
	return float64(wins) / float64(playouts)
}
