package board

import (
	"fmt"
	"strings"
)

// Move is a jump from Origin over Mid into the empty hole Dest.
type Move struct {
	Origin int
	Mid    int
	Dest   int
}

// Jump is the part of a move recorded in a route.
type Jump struct {
	Origin int
	Dest   int
}

func (j Jump) String() string {
	return fmt.Sprintf("[%d, %d]", j.Origin, j.Dest)
}

// Route is the ordered history of jumps taken from the initial board.
type Route []Jump

func (r Route) String() string {
	jumps := make([]string, len(r))
	for i, j := range r {
		jumps[i] = j.String()
	}
	return "[" + strings.Join(jumps, ", ") + "]"
}
