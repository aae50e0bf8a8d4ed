package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHoleCounts(t *testing.T) {
	for n := 1; n <= 10; n++ {
		require.Equal(t, n*(n+1)/2, NumHoles(n))
		require.Equal(t, NumHoles(n)-2, WinSize(n))
	}
	require.Equal(t, 15, NumHoles(5))
	require.Equal(t, 13, WinSize(5))
	require.Equal(t, -1, WinSize(1))
}

func TestPositionOfIsBijection(t *testing.T) {
	for n := 1; n <= 8; n++ {
		seen := make(map[int]bool)
		for row := 0; row < n; row++ {
			for offset := 0; offset <= row; offset++ {
				pos := PositionOf(row, offset)
				require.GreaterOrEqual(t, pos, 0)
				require.Less(t, pos, NumHoles(n))
				require.False(t, seen[pos], "position %d produced twice", pos)
				seen[pos] = true

				gotRow, gotOffset := Coordinates(pos)
				require.Equal(t, row, gotRow)
				require.Equal(t, offset, gotOffset)
			}
		}
		require.Len(t, seen, NumHoles(n), "positions should be dense")
	}
}

func TestPositionOfRowMajor(t *testing.T) {
	require.Equal(t, 0, PositionOf(0, 0))
	require.Equal(t, 1, PositionOf(1, 0))
	require.Equal(t, 2, PositionOf(1, 1))
	require.Equal(t, 3, PositionOf(2, 0))
	require.Equal(t, 10, PositionOf(4, 0))
	require.Equal(t, 14, PositionOf(4, 4))
}
