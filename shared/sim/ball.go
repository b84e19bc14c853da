package sim

// Ball is the single ball in play. Tint records which paddle touched it last
// and is only used for presentation.
type Ball struct {
	Position Vector2
	Radius   float64
	Velocity Vector2
	Tint     Player
}

// Integrate advances the ball along its velocity.
func (b *Ball) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// ReflectVertical negates the vertical velocity component.
func (b *Ball) ReflectVertical() {
	b.Velocity.Y = -b.Velocity.Y
}

// ReflectHorizontal negates the horizontal velocity component.
func (b *Ball) ReflectHorizontal() {
	b.Velocity.X = -b.Velocity.X
}

// BounceOffWalls reflects the ball when its post-move position touches the top
// or bottom of field, and pulls it back inside so it cannot tunnel through.
// It reports whether a bounce happened.
func (b *Ball) BounceOffWalls(field Rect) bool {
	switch {
	case b.Position.Y-b.Radius <= field.Min.Y:
		b.Position.Y = field.Min.Y + b.Radius
	case b.Position.Y+b.Radius >= field.Max.Y:
		b.Position.Y = field.Max.Y - b.Radius
	default:
		return false
	}
	b.ReflectVertical()
	return true
}

// ResetToCenter puts the ball back on the center spot with the given heading.
func (b *Ball) ResetToCenter(field Rect, heading Vector2) {
	b.Position = field.Center()
	b.Velocity = heading
	b.Tint = PlayerNone
}

// Box returns the ball's bounding box.
func (b Ball) Box() Rect {
	return RectAround(b.Position, Vector2{X: b.Radius, Y: b.Radius})
}
