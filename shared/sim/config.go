package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid match config")

// ConfigError names the geometry setting that made a Config unusable.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config is the court geometry and tuning a Match is built from. Lengths are
// in field units, speeds in units per second, angles in radians.
type Config struct {
	MinX, MaxX float64
	MinY, MaxY float64

	PaddleHalfExtent Vector2
	PaddleInset      float64 // distance from the field edge to the paddle center
	PaddleSpeed      float64

	BallRadius float64
	BallSpeed  float64
	ServeAngle float64 // serve elevation above the horizontal

	GoalDepth float64
	CellSize  int // broadphase cell size

	// TargetScore ends the match when a player reaches it. Zero disables it.
	TargetScore int
}

// DefaultConfig returns the classic 960x540 court.
func DefaultConfig() Config {
	return Config{
		MinX: -480, MaxX: 480,
		MinY: -270, MaxY: 270,

		PaddleHalfExtent: Vector2{X: 8, Y: 50},
		PaddleInset:      40,
		PaddleSpeed:      420,

		BallRadius: 10,
		BallSpeed:  360,
		ServeAngle: 0.35,

		GoalDepth: 40,
		CellSize:  32,
	}
}

// Field returns the playable rectangle.
func (c Config) Field() Rect {
	return Rect{Min: Vector2{X: c.MinX, Y: c.MinY}, Max: Vector2{X: c.MaxX, Y: c.MaxY}}
}

// Heading is the serve velocity for p. Player1 serves toward the right goal,
// Player2 toward the left.
func (c Config) Heading(p Player) Vector2 {
	v := Vector2{X: c.BallSpeed * math.Cos(c.ServeAngle), Y: c.BallSpeed * math.Sin(c.ServeAngle)}
	if p == Player2 {
		return v.Neg()
	}
	return v
}

// Validate reports the first unusable setting as a *ConfigError.
func (c Config) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"MinX", c.MinX}, {"MaxX", c.MaxX}, {"MinY", c.MinY}, {"MaxY", c.MaxY},
		{"PaddleHalfExtent.X", c.PaddleHalfExtent.X}, {"PaddleHalfExtent.Y", c.PaddleHalfExtent.Y},
		{"PaddleInset", c.PaddleInset}, {"PaddleSpeed", c.PaddleSpeed},
		{"BallRadius", c.BallRadius}, {"BallSpeed", c.BallSpeed}, {"ServeAngle", c.ServeAngle},
		{"GoalDepth", c.GoalDepth},
	}
	for _, f := range floats {
		if !isFinite(f.v) {
			return &ConfigError{Field: f.name, Reason: "must be finite"}
		}
	}

	switch {
	case c.MinX >= c.MaxX:
		return &ConfigError{Field: "MinX", Reason: "must be less than MaxX"}
	case c.MinY >= c.MaxY:
		return &ConfigError{Field: "MinY", Reason: "must be less than MaxY"}
	case c.PaddleHalfExtent.X <= 0 || c.PaddleHalfExtent.Y <= 0:
		return &ConfigError{Field: "PaddleHalfExtent", Reason: "must be positive"}
	case 2*c.PaddleHalfExtent.Y > c.MaxY-c.MinY:
		return &ConfigError{Field: "PaddleHalfExtent.Y", Reason: "paddle is taller than the field"}
	case c.PaddleInset < c.PaddleHalfExtent.X || c.PaddleInset > (c.MaxX-c.MinX)/2:
		return &ConfigError{Field: "PaddleInset", Reason: "places the paddle outside its half"}
	case c.PaddleSpeed < 0:
		return &ConfigError{Field: "PaddleSpeed", Reason: "must not be negative"}
	case c.BallRadius < 0:
		return &ConfigError{Field: "BallRadius", Reason: "must not be negative"}
	case 2*c.BallRadius >= c.MaxY-c.MinY:
		return &ConfigError{Field: "BallRadius", Reason: "ball does not fit between the walls"}
	case c.BallSpeed < 0:
		return &ConfigError{Field: "BallSpeed", Reason: "must not be negative"}
	case c.GoalDepth <= 0:
		return &ConfigError{Field: "GoalDepth", Reason: "must be positive"}
	case c.CellSize <= 0:
		return &ConfigError{Field: "CellSize", Reason: "must be positive"}
	case c.TargetScore < 0:
		return &ConfigError{Field: "TargetScore", Reason: "must not be negative"}
	}
	return nil
}
