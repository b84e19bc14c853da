package components

import (
	"github.com/automoto/pong/shared/courtdata"
	"github.com/automoto/pong/shared/sim"
	"github.com/yohamta/donburi"
)

// MatchData wraps the running simulation.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Match  *sim.Match
	Court  *courtdata.Layout // nil when the court is laid out from config alone
	Events []sim.Event       // what the last Step produced
	Winner sim.Player        // set once a target score is reached
	Ticks  int
}

var Match = donburi.NewComponentType[MatchData]()
