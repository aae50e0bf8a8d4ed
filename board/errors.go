package board

import "errors"

var (
	ErrInvalidSize        = errors.New("board size must be positive")
	ErrPositionOutOfRange = errors.New("position out of range")
)
