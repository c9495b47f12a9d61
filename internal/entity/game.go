package entity

const (
	MarkerX     = "X"
	MarkerO     = "O"
	MarkerEmpty = " "
)

// MarkerOf - derives the symbol of a cell from its owner and the round's first mover.
func MarkerOf(owner, firstPlayer Player) string {
	switch owner {
	case NoPlayer:
		return MarkerEmpty
	case firstPlayer:
		return MarkerX
	default:
		return MarkerO
	}
}

// Stats is the running win tally of a session.
type Stats struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
}

func (that *Stats) Increment(player Player) {
	switch player {
	case Player1:
		that.Player1Wins++
	case Player2:
		that.Player2Wins++
	}
}

func (that Stats) Wins(player Player) int {
	switch player {
	case Player1:
		return that.Player1Wins
	case Player2:
		return that.Player2Wins
	default:
		return 0
	}
}

// Outcome is what a driver learns from a successful turn.
type Outcome struct {
	Finished bool
	Winner   Player
}

func (that Outcome) IsTie() bool {
	return that.Finished && that.Winner == NoPlayer
}

// RoundResult is announced once per finished round.
type RoundResult struct {
	SessionID   string `json:"session_id"`
	Round       int    `json:"round"`
	Winner      Player `json:"winner"`
	Tie         bool   `json:"tie"`
	FirstPlayer Player `json:"first_player"`
	Board       string `json:"board"`
	Stats       Stats  `json:"stats"`
}
