package board

// NumHoles is the triangular number of holes on a board with side length n.
func NumHoles(n int) int {
	return n * (n + 1) / 2
}

// WinSize is the number of jumps that leave a single peg on a full board of
// side length n with one hole emptied.
func WinSize(n int) int {
	return NumHoles(n) - 2
}

// PositionOf maps a (row, offset) coordinate to its linear position.
// Callers guarantee 0 <= offset <= row < n.
func PositionOf(row, offset int) int {
	return row*(row+1)/2 + offset
}

// Coordinates is the inverse of PositionOf.
func Coordinates(pos int) (row, offset int) {
	for NumHoles(row+1) <= pos {
		row++
	}
	return row, pos - NumHoles(row)
}
