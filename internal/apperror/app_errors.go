package apperror

import "errors"

// board errors.
var (
	ErrOutOfRange      = errors.New("row and column must be from 1 to 3")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
)

// console errors.
var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrWrongArguments  = errors.New("wrong number of arguments")
	ErrInvalidPosition = errors.New("position is not an integer")
)

var ErrAddrNotFound = errors.New("redis address string is empty")
