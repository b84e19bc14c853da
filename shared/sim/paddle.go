package sim

// Paddle is one player's bat. Position is its center.
type Paddle struct {
	Owner      Player
	Position   Vector2
	HalfExtent Vector2
	Speed      float64
	Up, Down   Control

	// MinY and MaxY bound Position.Y so the paddle never leaves the field.
	MinY, MaxY float64
}

// NewPaddle places p's paddle at mid height, inset from its own edge.
func NewPaddle(cfg Config, p Player) Paddle {
	field := cfg.Field()
	paddle := Paddle{
		Owner:      p,
		HalfExtent: cfg.PaddleHalfExtent,
		Speed:      cfg.PaddleSpeed,
		MinY:       field.Min.Y + cfg.PaddleHalfExtent.Y,
		MaxY:       field.Max.Y - cfg.PaddleHalfExtent.Y,
	}

	center := field.Center()
	switch p {
	case Player1:
		paddle.Position = Vector2{X: field.Max.X - cfg.PaddleInset, Y: center.Y}
		paddle.Up, paddle.Down = ControlP1Up, ControlP1Down
	case Player2:
		paddle.Position = Vector2{X: field.Min.X + cfg.PaddleInset, Y: center.Y}
		paddle.Up, paddle.Down = ControlP2Up, ControlP2Down
	}
	return paddle
}

// Move applies this tick's up/down input and clamps the result. Holding both
// directions cancels out.
func (p *Paddle) Move(in InputState, dt float64) {
	var dir float64
	if in.Held(p.Up) {
		dir++
	}
	if in.Held(p.Down) {
		dir--
	}
	p.Position.Y = clamp(p.Position.Y+dir*p.Speed*dt, p.MinY, p.MaxY)
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() Rect {
	return RectAround(p.Position, p.HalfExtent)
}
