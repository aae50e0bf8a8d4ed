// meta/meta.go
package meta

// SIZE defines the default side length of the triangle.
const SIZE = 5

// EMPTY defines the hole emptied at the start of the default puzzle.
const EMPTY = 0

// PLAYOUTS defines the number of random playouts used to probe a board.
const PLAYOUTS = 0

// SEED defines the random playout seed.
const SEED = 1
