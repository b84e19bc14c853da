package courtdata

import "github.com/automoto/pong/shared/sim"

// Box is a rectangle in map pixels: origin top-left, y grows downward.
type Box struct {
	X, Y, W, H float64
}

func (b Box) centerX() float64 { return b.X + b.W/2 }

// PaddleSpot is a paddle placement read from the Paddles object group.
type PaddleSpot struct {
	Owner sim.Player
	Box   Box
}

// GoalSpot is a goal strip read from the Goals object group.
type GoalSpot struct {
	Owner sim.Player
	Box   Box
}

// Tuning holds optional overrides stored as properties on the field object.
// Zero means "keep the default".
type Tuning struct {
	BallRadius  int
	BallSpeed   int
	PaddleSpeed int
	TargetScore int
}

// Layout is a court read from a TMX map.
type Layout struct {
	Name      string
	Path      string
	MapWidth  int
	MapHeight int
	Field     Box
	Paddles   []PaddleSpot
	Goals     []GoalSpot
	Tuning    Tuning
}
