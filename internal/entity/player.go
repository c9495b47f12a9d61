package entity

// Player identifies one of the two seats at the board.
type Player int

// NoPlayer is the zero value: an empty cell, or no winner (a tie).
const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (that Player) String() string {
	switch that {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Nobody"
	}
}

// Opponent - returns the other seat. NoPlayer has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Player1":
		*that = Player1
	case "Player2":
		*that = Player2
	default:
		*that = NoPlayer
	}

	return nil
}
