package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type roundManager interface {
	MakeTurn(ctx context.Context, row, col int) (entity.Outcome, error)
	NewRound(ctx context.Context)

	Board() string
	CurrentPlayer() entity.Player
	Stats() entity.Stats
}

type Options struct {
	ClearScreen bool
}

// Console is the text driver of a session: it reads commands line by line
// and translates them into calls on the round manager.
type Console struct {
	logger *slog.Logger
	rounds roundManager

	in   io.Reader
	out  io.Writer
	opts Options
}

func New(logger *slog.Logger, rounds roundManager, in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		logger: logger,
		rounds: rounds,
		in:     in,
		out:    out,
		opts:   opts,
	}
}

// Run - plays until the user quits, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := that.readLines(ctx)

	that.println(helpText)
	that.prompt()

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.InfoContext(ctx, "input closed")
				return nil
			}

			quit, err := that.handleLine(ctx, line)
			if err != nil {
				return err
			}

			if quit {
				that.println(msgBye)
				return nil
			}
		}
	}
}

// readLines - scans input on its own goroutine so Run can watch ctx while waiting.
func (that *Console) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		errCh <- scanner.Err()
	}()

	return lines, errCh
}

func (that *Console) handleLine(ctx context.Context, line string) (bool, error) {
	log := that.logger.With("method", "handleLine")

	command, err := ParseCommand(line)
	if err != nil {
		that.reportParseError(command, err)
		that.prompt()

		return false, nil
	}

	log.DebugContext(ctx, "command received", "command", command.Name)

	switch command.Name {
	case CommandQuit:
		return true, nil
	case CommandNew:
		that.rounds.NewRound(ctx)
	case CommandHelp:
		that.println(helpText)
	case CommandStats:
		that.printStats()
	case CommandPrint:
		// the prompt below draws the board
	case CommandMove:
		if err = that.handleMove(ctx, command); err != nil {
			return false, err
		}
	}

	that.prompt()

	return false, nil
}

func (that *Console) handleMove(ctx context.Context, command *Command) error {
	outcome, err := that.rounds.MakeTurn(ctx, command.Row-1, command.Col-1)

	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		that.println(msgOutOfRange)
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.println(msgCellFilled)
		return nil
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		that.println(msgGameOver)
		that.rounds.NewRound(ctx)
		return nil
	case err != nil:
		return fmt.Errorf("failed to make move: %w", err)
	}

	if !outcome.Finished {
		return nil
	}

	that.println(that.rounds.Board())

	if outcome.IsTie() {
		that.println(msgTie)
	} else {
		that.println(fmt.Sprintf(msgWon, outcome.Winner))
	}

	that.rounds.NewRound(ctx)

	return nil
}

func (that *Console) reportParseError(command *Command, err error) {
	switch {
	case errors.Is(err, apperror.ErrEmptyCommand):
		return
	case errors.Is(err, apperror.ErrInvalidPosition):
		that.println(msgWrongPositions + "\n\n" + notePositions + "\n\n" + msgTryAgain + "\n")
	case errors.Is(err, apperror.ErrWrongArguments) && command != nil:
		that.println(msgWrongCommand + "\n\n" + notes[command.Name] + "\n\n" + msgTryAgain + "\n")
	default:
		that.println(msgWrongCommand + "\n\n" + helpText + "\n\n" + msgTryAgain + "\n")
	}
}

func (that *Console) printStats() {
	stats := that.rounds.Stats()

	that.printf(msgWins, entity.Player1, stats.Wins(entity.Player1))
	that.printf(msgWins, entity.Player2, stats.Wins(entity.Player2))
}

func (that *Console) prompt() {
	if that.opts.ClearScreen {
		that.printf("%s", clearScreen)
	}

	that.println(that.rounds.Board())
	that.printf(msgPrompt, that.rounds.CurrentPlayer())
}

func (that *Console) println(text string) {
	that.printf("%s\n", text)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
