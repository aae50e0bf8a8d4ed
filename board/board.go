package board

import (
	"fmt"
	"slices"
	"strings"
)

// Board is one state of the puzzle. Peg occupancy and the route are owned by
// the board; the geometry is shared with every copy.
type Board struct {
	Layout *Layout // Reference to the static board geometry
	Pegs   []bool  // Peg occupancy, indexed by position
	Route  Route   // Jumps taken to reach this state
}

// New returns a board of side length n with every hole holding a peg.
func New(n int) *Board {
	layout := NewLayout(n)
	pegs := make([]bool, len(layout.Holes))
	for i := range pegs {
		pegs[i] = true
	}
	return &Board{
		Layout: layout,
		Pegs:   pegs,
		Route:  Route{},
	}
}

// Create returns a board of side length n with the given holes emptied.
func Create(n int, empty ...int) (*Board, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cannot create board of size %d: %w", n, ErrInvalidSize)
	}
	b := New(n)
	for _, pos := range empty {
		if err := b.Remove(pos); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Remove takes the peg out of a hole, if any.
func (b *Board) Remove(pos int) error {
	if pos < 0 || pos >= len(b.Pegs) {
		return fmt.Errorf("cannot empty hole %d on a board of %d holes: %w", pos, len(b.Pegs), ErrPositionOutOfRange)
	}
	b.Pegs[pos] = false
	return nil
}

func (b *Board) Size() int {
	return b.Layout.Size
}

func (b *Board) NumHoles() int {
	return len(b.Layout.Holes)
}

func (b *Board) WinSize() int {
	return WinSize(b.Layout.Size)
}

// HasPeg reports whether the hole at pos holds a peg.
func (b *Board) HasPeg(pos int) bool {
	return b.Pegs[pos]
}

// PegCount returns the number of pegs left on the board.
func (b *Board) PegCount() int {
	count := 0
	for _, peg := range b.Pegs {
		if peg {
			count++
		}
	}
	return count
}

// IsWin reports whether the route has reached the winning length.
func (b *Board) IsWin() bool {
	return len(b.Route) == b.WinSize()
}

// ValidMoves finds all legal jumps, ordered by origin position and then by
// candidate direction.
func (b *Board) ValidMoves() []Move {
	moves := []Move{}
	for _, hole := range b.Layout.Holes {
		if !b.Pegs[hole.Position] {
			continue
		}
		for _, c := range hole.Candidates {
			if b.Pegs[c.Mid] && !b.Pegs[c.Dest] {
				moves = append(moves, Move{Origin: hole.Position, Mid: c.Mid, Dest: c.Dest})
			}
		}
	}
	return moves
}

// Apply performs the move in place and records it in the route. The move
// must be legal on this board.
func (b *Board) Apply(move Move) {
	if !b.Pegs[move.Origin] || !b.Pegs[move.Mid] || b.Pegs[move.Dest] {
		panic(fmt.Sprintf("illegal move %+v", move))
	}
	b.Pegs[move.Origin] = false
	b.Pegs[move.Mid] = false
	b.Pegs[move.Dest] = true
	b.Route = append(b.Route, Jump{Origin: move.Origin, Dest: move.Dest})
}

// Copy returns an independent board sharing only the layout.
func (b *Board) Copy() *Board {
	return &Board{
		Layout: b.Layout,
		Pegs:   slices.Clone(b.Pegs),
		Route:  slices.Clone(b.Route),
	}
}

// Play returns a copy of the board with the move applied.
func (b *Board) Play(move Move) *Board {
	next := b.Copy()
	next.Apply(move)
	return next
}

// String draws the board as a triangle, 'o' for a peg and '.' for a hole.
func (b *Board) String() string {
	var sb strings.Builder
	n := b.Size()
	for row := 0; row < n; row++ {
		sb.WriteString(strings.Repeat(" ", n-row-1))
		for offset := 0; offset <= row; offset++ {
			if offset > 0 {
				sb.WriteByte(' ')
			}
			if b.Pegs[PositionOf(row, offset)] {
				sb.WriteByte('o')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
