package sim

import (
	"math"

	"github.com/solarlune/resolv"
)

// Tags carried by the broadphase objects.
const (
	TagBall   = "ball"
	TagPaddle = "paddle"
	TagGoal   = "goal"
)

// Source is the random source used for serve direction. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// RandomPlayer picks one of the two players uniformly.
func RandomPlayer(rng Source) Player {
	return Players[rng.IntN(len(Players))]
}

type paddleRef Player
type goalRef Player

// Resolver finds paddle and goal contacts for the ball each tick. A resolv
// space narrows the candidates and an inclusive box test decides contact.
type Resolver struct {
	space  *resolv.Space
	origin Vector2
	bounds Rect
	cell   float64

	ball    *resolv.Object
	paddles [2]*resolv.Object
	goals   [2]Goal
}

// NewResolver builds the broadphase space over field plus both goals.
func NewResolver(field Rect, goals [2]Goal, paddles [2]Paddle, cellSize int) *Resolver {
	cell := float64(cellSize)
	bounds := field
	for _, g := range goals {
		bounds.Min.X = math.Min(bounds.Min.X, g.Bounds.Min.X)
		bounds.Max.X = math.Max(bounds.Max.X, g.Bounds.Max.X)
	}
	bounds = bounds.Inflate(cell)

	cellsX := int(math.Ceil(bounds.Width() / cell))
	cellsY := int(math.Ceil(bounds.Height() / cell))

	r := &Resolver{
		space:  resolv.NewSpace(cellsX*cellSize, cellsY*cellSize, cellSize, cellSize),
		origin: bounds.Min,
		bounds: Rect{Min: bounds.Min, Max: bounds.Min.Add(Vector2{X: float64(cellsX * cellSize), Y: float64(cellsY * cellSize)})},
		cell:   cell,
		goals:  goals,
	}

	for i, p := range paddles {
		obj := r.newObject(p.Box(), TagPaddle)
		obj.Data = paddleRef(p.Owner)
		r.paddles[i] = obj
		r.space.Add(obj)
	}
	for _, g := range goals {
		obj := r.newObject(g.Bounds, TagGoal)
		obj.Data = goalRef(g.Owner)
		r.space.Add(obj)
	}

	r.ball = resolv.NewObject(0, 0, 1, 1, TagBall)
	r.space.Add(r.ball)
	return r
}

// Space exposes the broadphase space for debug drawing. Object coordinates
// are field coordinates minus Origin.
func (r *Resolver) Space() *resolv.Space {
	return r.space
}

// Origin is the field position of the space's (0, 0) corner.
func (r *Resolver) Origin() Vector2 {
	return r.origin
}

func (r *Resolver) newObject(box Rect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(0, 0, 1, 1, tags...)
	r.place(obj, box)
	return obj
}

func (r *Resolver) place(obj *resolv.Object, box Rect) {
	obj.X = box.Min.X - r.origin.X
	obj.Y = box.Min.Y - r.origin.Y
	obj.W = box.Width()
	obj.H = box.Height()
}

// Resolve checks the ball against the paddles and goals and returns what
// happened, in order. A just-pressed serve control short-circuits everything
// into a single random BallReset.
func (r *Resolver) Resolve(ball *Ball, paddles *[2]Paddle, in InputState, rng Source) []Event {
	if in.JustPressed(ControlServe) {
		return []Event{BallReset(RandomPlayer(rng))}
	}

	var events []Event
	paddleCandidates, goalCandidates := r.candidates(ball, paddles)

	for i := range paddles {
		p := &paddles[i]
		if !paddleCandidates[p.Owner.Index()] || !ball.Box().Overlaps(p.Box()) {
			continue
		}
		bounceOffPaddle(ball, p)
		events = append(events, PaddleHit(p.Owner))
		break
	}

	for _, g := range r.goals {
		if !goalCandidates[g.Owner.Index()] || !g.Reached(ball.Box()) {
			continue
		}
		scorer := g.Owner.Opponent()
		events = append(events, PointScored(scorer), BallReset(scorer))
		break
	}
	return events
}

// candidates syncs the space with the current positions and returns which
// paddles and goals share a cell with the ball. Outside the space every
// collider is a candidate.
func (r *Resolver) candidates(ball *Ball, paddles *[2]Paddle) (pads, goals [2]bool) {
	for i := range paddles {
		r.place(r.paddles[i], paddles[i].Box())
		r.paddles[i].Update()
	}

	// Inflated by a cell so that touching boxes always share one.
	box := ball.Box().Inflate(r.cell)
	if !r.bounds.Contains(box) {
		return [2]bool{true, true}, [2]bool{true, true}
	}
	r.place(r.ball, box)
	r.ball.Update()

	check := r.ball.Check(0, 0, TagPaddle, TagGoal)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		switch ref := obj.Data.(type) {
		case paddleRef:
			pads[Player(ref).Index()] = true
		case goalRef:
			goals[Player(ref).Index()] = true
		}
	}
	return
}

// bounceOffPaddle sends the ball back the way it came if it is heading into
// the paddle, then moves it clear of the paddle face.
func bounceOffPaddle(ball *Ball, p *Paddle) {
	box := p.Box()
	if ball.Position.X <= p.Position.X {
		if ball.Velocity.X > 0 {
			ball.ReflectHorizontal()
		}
		ball.Position.X = box.Min.X - ball.Radius
	} else {
		if ball.Velocity.X < 0 {
			ball.ReflectHorizontal()
		}
		ball.Position.X = box.Max.X + ball.Radius
	}
	ball.Tint = p.Owner
}
