package sim

import "math"

// Vector2 is a point or velocity in field space. The y axis points up.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Len returns the magnitude of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Rect is an axis-aligned box. Bounds are inclusive.
type Rect struct {
	Min, Max Vector2
}

// RectAround builds a box from a center point and half extents.
func RectAround(center, half Vector2) Rect {
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Center() Vector2 {
	return Vector2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Overlaps reports whether r and o share at least one point. Touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Max.X <= r.Max.X &&
		o.Min.Y >= r.Min.Y && o.Max.Y <= r.Max.Y
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: Vector2{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Vector2{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
