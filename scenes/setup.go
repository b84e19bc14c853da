package scenes

import (
	"fmt"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/courtdata"
	"github.com/automoto/pong/shared/sim"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MatchSetup is carried from scene to scene and decides how each new match
// is built.
type MatchSetup struct {
	Court *courtdata.Layout // nil lays the court out from config alone
	Seed  uint64            // 0 seeds every match from the clock

	// TargetScore, when not negative, wins over both config and court.
	TargetScore int
}

// NewMatch validates the court and creates a match that has not started yet.
func (s MatchSetup) NewMatch() (*sim.Match, error) {
	config := s.Config()
	m, err := sim.NewMatch(config, s.rng())
	if err != nil {
		name := "config"
		if s.Court != nil {
			name = s.Court.Name
		}
		return nil, fmt.Errorf("build match for court %s: %w", name, err)
	}
	return m, nil
}

// Config is the simulation config for this setup's court.
func (s MatchSetup) Config() sim.Config {
	config := cfg.MatchConfig()
	if s.Court != nil {
		config = s.Court.Apply(config)
	}
	if s.TargetScore >= 0 {
		config.TargetScore = s.TargetScore
	}
	return config
}

func (s MatchSetup) rng() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
