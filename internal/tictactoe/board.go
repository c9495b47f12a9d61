package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Size is the number of rows and columns of the grid.
const Size = 3

const rowSeparator = "-------------\n"

// Grid holds the owner of every cell. entity.NoPlayer marks an empty cell.
type Grid [Size][Size]entity.Player

type point struct {
	row, col int
}

// the two diagonals; rows and columns are scanned by index.
var diagonals = [2][Size]point{
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the game state of one session: the grid, whose turn it is,
// who moved first in the current round and the win tally.
//
// Board does not advance the turn by itself. A driver inspects the result
// of Move and then calls SetCurrentPlayer.
type Board struct {
	grid *Grid

	currentPlayer entity.Player
	firstPlayer   entity.Player

	// winner is set by Move for stats bookkeeping only, use Winner instead.
	winner entity.Player
	stats  entity.Stats
}

// NewBoard - creates an empty board where Player1 is current and first.
func NewBoard() *Board {
	return &Board{
		grid:          &Grid{},
		currentPlayer: entity.Player1,
		firstPlayer:   entity.Player1,
	}
}

// Move - marks the cell at (row, col) with the current player.
// If the move ends the round with a winner, the winner's counter is incremented.
func (that *Board) Move(row, col int) (*Board, error) {
	if !inRange(row, col) {
		return that, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that.IsGameOver() {
		return that, apperror.ErrGameAlreadyOver
	}

	if that.grid[row][col] != entity.NoPlayer {
		return that, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.grid[row][col] = that.currentPlayer

	if that.IsGameOver() {
		that.winner = that.Winner()
		that.stats.Increment(that.winner)
	}

	return that, nil
}

// IsGameOver - reports whether the grid is full or holds a winning line.
// A board without a grid is always over.
func (that *Board) IsGameOver() bool {
	if that.grid == nil {
		return true
	}

	return that.isFilled() || that.Winner() != entity.NoPlayer
}

// Winner - scans the grid and returns the owner of a complete line.
// entity.NoPlayer means a tie, or that the round is not over yet.
func (that *Board) Winner() entity.Player {
	if that.grid == nil {
		return entity.NoPlayer
	}

	for i := 0; i < Size; i++ {
		row := [Size]point{{i, 0}, {i, 1}, {i, 2}}
		if owner := that.lineOwner(row); owner != entity.NoPlayer {
			return owner
		}

		col := [Size]point{{0, i}, {1, i}, {2, i}}
		if owner := that.lineOwner(col); owner != entity.NoPlayer {
			return owner
		}
	}

	for _, diagonal := range diagonals {
		if owner := that.lineOwner(diagonal); owner != entity.NoPlayer {
			return owner
		}
	}

	return entity.NoPlayer
}

// Reset - clears the grid. Players, winner and stats are left to the caller.
func (that *Board) Reset() {
	that.grid = &Grid{}
}

// Cell - returns the owner of the cell at (row, col).
func (that *Board) Cell(row, col int) (entity.Player, error) {
	if !inRange(row, col) {
		return entity.NoPlayer, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that.grid == nil {
		return entity.NoPlayer, nil
	}

	return that.grid[row][col], nil
}

// Marker - returns the symbol of the cell at (row, col) for the current first mover.
func (that *Board) Marker(row, col int) (string, error) {
	owner, err := that.Cell(row, col)
	if err != nil {
		return "", err
	}

	return entity.MarkerOf(owner, that.firstPlayer), nil
}

// Render - draws the grid as text, see String.
func (that *Board) Render() string {
	var builder strings.Builder

	builder.WriteString("\n")

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			owner := entity.NoPlayer
			if that.grid != nil {
				owner = that.grid[row][col]
			}

			builder.WriteString(" " + entity.MarkerOf(owner, that.firstPlayer) + " ")
			if col < Size-1 {
				builder.WriteString("|")
			}
		}

		builder.WriteString("\n")

		if row < Size-1 {
			builder.WriteString(rowSeparator)
		}
	}

	return builder.String()
}

func (that *Board) String() string {
	return that.Render()
}

func (that *Board) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

func (that *Board) SetCurrentPlayer(player entity.Player) {
	that.currentPlayer = player
}

func (that *Board) FirstPlayer() entity.Player {
	return that.firstPlayer
}

func (that *Board) SetFirstPlayer(player entity.Player) {
	that.firstPlayer = player
}

// Stats - returns a copy of the win tally.
func (that *Board) Stats() entity.Stats {
	return that.stats
}

func (that *Board) isFilled() bool {
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == entity.NoPlayer {
				return false
			}
		}
	}

	return true
}

func (that *Board) lineOwner(line [Size]point) entity.Player {
	first := that.grid[line[0].row][line[0].col]
	if first == entity.NoPlayer {
		return entity.NoPlayer
	}

	for _, p := range line[1:] {
		if that.grid[p.row][p.col] != first {
			return entity.NoPlayer
		}
	}

	return first
}

func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
