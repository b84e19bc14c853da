package sim

// Goal is the sensor region behind Owner's paddle. A ball reaching it scores
// for the opponent.
type Goal struct {
	Owner  Player
	Bounds Rect
}

// NewGoal builds the goal strip just beyond p's edge of the field.
func NewGoal(cfg Config, p Player) Goal {
	field := cfg.Field()
	g := Goal{Owner: p}
	switch p {
	case Player1:
		g.Bounds = Rect{
			Min: Vector2{X: field.Max.X, Y: field.Min.Y},
			Max: Vector2{X: field.Max.X + cfg.GoalDepth, Y: field.Max.Y},
		}
	case Player2:
		g.Bounds = Rect{
			Min: Vector2{X: field.Min.X - cfg.GoalDepth, Y: field.Min.Y},
			Max: Vector2{X: field.Min.X, Y: field.Max.Y},
		}
	}
	return g
}

// Reached reports whether box touches the goal line or lies beyond it. A ball
// that tunnelled past the back of the goal in one tick still counts.
func (g Goal) Reached(box Rect) bool {
	switch g.Owner {
	case Player1:
		return box.Max.X >= g.Bounds.Min.X
	case Player2:
		return box.Min.X <= g.Bounds.Max.X
	}
	return false
}
