package sim

import "fmt"

// EventKind tags an Event.
type EventKind uint8

const (
	EventNone EventKind = iota
	// EventBallReset re-serves the ball from the center with Player's heading.
	EventBallReset
	// EventPointScored awards a point to Player.
	EventPointScored
	// EventPaddleHit reports that Player's paddle returned the ball.
	EventPaddleHit
	// EventWallBounce reports a bounce off the top or bottom wall.
	EventWallBounce
	// EventPhaseChanged reports a transition From -> To.
	EventPhaseChanged
	// EventMatchWon reports that Player reached the target score.
	EventMatchWon
)

var eventKindNames = map[EventKind]string{
	EventNone:         "None",
	EventBallReset:    "BallReset",
	EventPointScored:  "PointScored",
	EventPaddleHit:    "PaddleHit",
	EventWallBounce:   "WallBounce",
	EventPhaseChanged: "PhaseChanged",
	EventMatchWon:     "MatchWon",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is something that happened during a tick. Events are not stored on the
// match; callers react to the slice Step returns.
type Event struct {
	Kind   EventKind
	Player Player
	From   Phase
	To     Phase
}

func (e Event) String() string {
	switch e.Kind {
	case EventPhaseChanged:
		return fmt.Sprintf("%s(%s->%s)", e.Kind, e.From, e.To)
	case EventWallBounce:
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Player)
}

func BallReset(p Player) Event   { return Event{Kind: EventBallReset, Player: p} }
func PointScored(p Player) Event { return Event{Kind: EventPointScored, Player: p} }
func PaddleHit(p Player) Event   { return Event{Kind: EventPaddleHit, Player: p} }
func WallBounce() Event          { return Event{Kind: EventWallBounce} }
func MatchWon(p Player) Event    { return Event{Kind: EventMatchWon, Player: p} }

func PhaseChanged(from, to Phase) Event {
	return Event{Kind: EventPhaseChanged, From: from, To: to}
}

// CountEvents returns how many events in events have kind k.
func CountEvents(events []Event, k EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
