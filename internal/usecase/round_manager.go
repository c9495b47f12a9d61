package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type roundPublisher interface {
	PublishRound(ctx context.Context, result *entity.RoundResult) error
}

// RoundManager drives one board through consecutive rounds: it hands the turn
// over after every accepted move and picks the first mover of the next round.
type RoundManager struct {
	logger    *slog.Logger
	board     *tictactoe.Board
	publisher roundPublisher

	sessionID string
	round     int
}

// NewRoundManager - publisher may be nil, finished rounds are then only logged.
func NewRoundManager(logger *slog.Logger, board *tictactoe.Board, publisher roundPublisher) *RoundManager {
	return &RoundManager{
		logger:    logger,
		board:     board,
		publisher: publisher,

		sessionID: uuid.NewString(),
		round:     1,
	}
}

// MakeTurn - plays the current player at (row, col), coordinates are 0-indexed.
// The turn stays with the same player when the move is rejected.
func (that *RoundManager) MakeTurn(ctx context.Context, row, col int) (entity.Outcome, error) {
	mover := that.board.CurrentPlayer()

	if _, err := that.board.Move(row, col); err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to make turn: %w", err)
	}

	that.board.SetCurrentPlayer(mover.Opponent())

	if !that.board.IsGameOver() {
		return entity.Outcome{}, nil
	}

	outcome := entity.Outcome{
		Finished: true,
		Winner:   that.board.Winner(),
	}

	that.announce(ctx, outcome)

	return outcome, nil
}

// NewRound - clears the board and starts the next round. The loser of a decisive
// round moves first, otherwise the first move passes to the other player.
func (that *RoundManager) NewRound(ctx context.Context) {
	log := that.logger.With("method", "NewRound", "session", that.sessionID)

	next := that.board.FirstPlayer().Opponent()
	if that.board.IsGameOver() {
		if winner := that.board.Winner(); winner != entity.NoPlayer {
			next = winner.Opponent()
		}
	}

	that.board.Reset()
	that.board.SetFirstPlayer(next)
	that.board.SetCurrentPlayer(next)
	that.round++

	log.DebugContext(ctx, "round started", "round", that.round, "first_player", next.String())
}

func (that *RoundManager) Board() string {
	return that.board.Render()
}

func (that *RoundManager) CurrentPlayer() entity.Player {
	return that.board.CurrentPlayer()
}

func (that *RoundManager) FirstPlayer() entity.Player {
	return that.board.FirstPlayer()
}

func (that *RoundManager) Stats() entity.Stats {
	return that.board.Stats()
}

func (that *RoundManager) Round() int {
	return that.round
}

func (that *RoundManager) SessionID() string {
	return that.sessionID
}

// announce - logs the finished round and hands it to the publisher. Failures are only logged.
func (that *RoundManager) announce(ctx context.Context, outcome entity.Outcome) {
	log := that.logger.With("method", "announce", "session", that.sessionID, "round", that.round)

	result := &entity.RoundResult{
		SessionID:   that.sessionID,
		Round:       that.round,
		Winner:      outcome.Winner,
		Tie:         outcome.IsTie(),
		FirstPlayer: that.board.FirstPlayer(),
		Board:       that.board.Render(),
		Stats:       that.board.Stats(),
	}

	log.InfoContext(ctx, "round finished", "winner", result.Winner.String(), "tie", result.Tie)

	if that.publisher == nil {
		return
	}

	if err := that.publisher.PublishRound(ctx, result); err != nil {
		log.ErrorContext(ctx, "failed to publish round result", "error", err)
	}
}
