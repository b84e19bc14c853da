package sim

// ScoreBoard counts points per player. It only grows within a match.
type ScoreBoard struct {
	points [2]int
}

// Apply folds e into the board. Only EventPointScored has an effect.
func (s *ScoreBoard) Apply(e Event) {
	if e.Kind != EventPointScored || !e.Player.Valid() {
		return
	}
	s.points[e.Player.Index()]++
}

// Get returns p's points, or 0 for an unknown player.
func (s ScoreBoard) Get(p Player) int {
	if !p.Valid() {
		return 0
	}
	return s.points[p.Index()]
}

// Total returns the sum over both players.
func (s ScoreBoard) Total() int {
	return s.points[0] + s.points[1]
}

// Leader returns the player ahead, or PlayerNone on a tie.
func (s ScoreBoard) Leader() Player {
	switch {
	case s.points[0] > s.points[1]:
		return Player1
	case s.points[1] > s.points[0]:
		return Player2
	}
	return PlayerNone
}

// Reset zeroes the board for a new match.
func (s *ScoreBoard) Reset() {
	s.points = [2]int{}
}
