package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	CommandNew   = "new"
	CommandHelp  = "help"
	CommandStats = "stats"
	CommandMove  = "move"
	CommandPrint = "print"
	CommandQuit  = "quit"
)

var abbreviations = map[string]string{
	"n": CommandNew,
	"h": CommandHelp,
	"s": CommandStats,
	"m": CommandMove,
	"p": CommandPrint,
	"q": CommandQuit,
}

// arguments expected by every command.
var arity = map[string]int{
	CommandNew:   0,
	CommandHelp:  0,
	CommandStats: 0,
	CommandMove:  2,
	CommandPrint: 0,
	CommandQuit:  0,
}

// Command is one parsed line of user input. Row and Col are 1-indexed as typed.
type Command struct {
	Name string
	Row  int
	Col  int
}

// ParseCommand - splits the line on whitespace, expands one-letter commands and checks arguments.
func ParseCommand(line string) (*Command, error) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return nil, apperror.ErrEmptyCommand
	}

	name := tokens[0]
	if full, ok := abbreviations[name]; ok {
		name = full
	}

	want, ok := arity[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) != want {
		return &Command{Name: name}, fmt.Errorf("%w: %s takes %d, got %d", apperror.ErrWrongArguments, name, want, len(args))
	}

	command := &Command{Name: name}
	if name != CommandMove {
		return command, nil
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return command, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return command, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, args[1])
	}

	command.Row = row
	command.Col = col

	return command, nil
}
