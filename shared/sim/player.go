package sim

// Player identifies a side of the court. Player1 defends the right goal,
// Player2 the left one.
type Player uint8

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// Players lists both sides in resolution order.
var Players = [2]Player{Player1, Player2}

// Opponent returns the other side. PlayerNone has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return PlayerNone
}

// Index maps a player to its slot in per-player arrays.
func (p Player) Index() int {
	return int(p) - 1
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "None"
}
