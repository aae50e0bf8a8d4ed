package searcher

import (
	"pegs/board"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPlayout(t *testing.T) {
	t.Run("ends with no legal move", func(t *testing.T) {
		b := newBoard(t, 5, 0)
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 50; i++ {
			end := Playout(b, rng)
			require.Empty(t, end.ValidMoves())
			require.Equal(t, b.PegCount()-len(end.Route), end.PegCount())
			replayPartial(t, b, end.Route)
		}
		require.Equal(t, 14, b.PegCount(), "playouts should not modify the board")
	})

	t.Run("board without moves", func(t *testing.T) {
		b := newBoard(t, 4, 4)
		end := Playout(b, rand.New(rand.NewSource(1)))
		require.Empty(t, end.Route)
	})
}

func TestEstimateWinRate(t *testing.T) {
	t.Run("unsolvable board", func(t *testing.T) {
		require.Equal(t, 0.0, EstimateWinRate(newBoard(t, 4, 0), 200, 7))
	})

	t.Run("solvable board", func(t *testing.T) {
		rate := EstimateWinRate(newBoard(t, 4, 1), 2000, 7)
		require.Greater(t, rate, 0.0)
		require.Less(t, rate, 1.0)
	})

	t.Run("same seed same estimate", func(t *testing.T) {
		b := newBoard(t, 5, 0)
		require.Equal(t, EstimateWinRate(b, 300, 42), EstimateWinRate(b, 300, 42))
	})

	t.Run("no playouts", func(t *testing.T) {
		require.Equal(t, 0.0, EstimateWinRate(newBoard(t, 5, 0), 0, 1))
	})
}

func replayPartial(t *testing.T, initial *board.Board, route board.Route) {
	t.Helper()
	b := initial.Copy()
	for _, jump := range route {
		var played bool
		for _, move := range b.ValidMoves() {
			if move.Origin == jump.Origin && move.Dest == jump.Dest {
				b.Apply(move)
				played = true
				break
			}
		}
		require.True(t, played, "jump %v is not legal", jump)
	}
}
