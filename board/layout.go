package board

// Candidate is a geometrically possible jump over Mid into Dest.
type Candidate struct {
	Mid  int
	Dest int
}

// Hole is one peg slot and every jump a peg sitting in it could make,
// regardless of occupancy.
type Hole struct {
	Position   int
	Row        int
	Offset     int
	Candidates []Candidate
}

// Layout is the static geometry of a triangular board. It is shared by every
// copy of a board of the same size and never modified after construction.
type Layout struct {
	Size  int
	Holes []Hole // Indexed by position
}

// NewLayout precomputes the candidate jumps for every hole of a board with
// side length n.
func NewLayout(n int) *Layout {
	l := &Layout{
		Size:  n,
		Holes: make([]Hole, 0, NumHoles(n)),
	}
	pos := 0
	for row := 0; row < n; row++ {
		for offset := 0; offset <= row; offset++ {
			l.Holes = append(l.Holes, Hole{
				Position:   pos,
				Row:        row,
				Offset:     offset,
				Candidates: candidates(n, pos, row, offset),
			})
			pos++
		}
	}
	return l
}

// candidates lists jumps in the order east, northeast, west, northwest,
// south-west, south-east. Solution order depends on it.
func candidates(n, pos, row, offset int) []Candidate {
	c := make([]Candidate, 0, 6)
	if offset-row < -1 { // East and northeast
		c = append(c,
			Candidate{Mid: pos + 1, Dest: pos + 2},
			Candidate{Mid: pos - row, Dest: pos - 2*row + 1},
		)
	}
	if offset > 1 { // West and northwest
		c = append(c,
			Candidate{Mid: pos - 1, Dest: pos - 2},
			Candidate{Mid: pos - row - 1, Dest: pos - 2*row - 1},
		)
	}
	if n-row > 2 { // South
		c = append(c,
			Candidate{Mid: pos + row + 1, Dest: pos + 2*(row+1) + 1},
			Candidate{Mid: pos + row + 2, Dest: pos + 2*(row+1) + 3},
		)
	}
	return c
}
