package courtdata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/pong/shared/sim"
	"github.com/lafriks/go-tiled"
)

// Object group names recognised in court maps.
const (
	GroupField   = "Field"
	GroupPaddles = "Paddles"
	GroupGoals   = "Goals"
)

var ErrIncompleteCourt = errors.New("incomplete court")

// Load parses a TMX court. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS for courts on disk.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	courtMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:      strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Path:      tmxPath,
		MapWidth:  courtMap.Width * courtMap.TileWidth,
		MapHeight: courtMap.Height * courtMap.TileHeight,
	}

	var haveField bool
	for _, og := range courtMap.ObjectGroups {
		switch og.Name {
		case GroupField:
			for _, o := range og.Objects {
				layout.Field = Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				layout.Tuning = Tuning{
					BallRadius:  o.Properties.GetInt("ballRadius"),
					BallSpeed:   o.Properties.GetInt("ballSpeed"),
					PaddleSpeed: o.Properties.GetInt("paddleSpeed"),
					TargetScore: o.Properties.GetInt("targetScore"),
				}
				haveField = true
				break
			}
		case GroupPaddles:
			for _, o := range og.Objects {
				layout.Paddles = append(layout.Paddles, PaddleSpot{
					Owner: sim.Player(o.Properties.GetInt("player")),
					Box:   Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		case GroupGoals:
			for _, o := range og.Objects {
				layout.Goals = append(layout.Goals, GoalSpot{
					Owner: sim.Player(o.Properties.GetInt("player")),
					Box:   Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		}
	}

	if !haveField {
		return nil, fmt.Errorf("court %s: %w: no %s object", tmxPath, ErrIncompleteCourt, GroupField)
	}
	if _, ok := layout.paddle(sim.Player1); !ok {
		return nil, fmt.Errorf("court %s: %w: no paddle for %s", tmxPath, ErrIncompleteCourt, sim.Player1)
	}

	// Player order keeps Apply independent of object order in the file.
	sort.Slice(layout.Paddles, func(i, j int) bool { return layout.Paddles[i].Owner < layout.Paddles[j].Owner })
	sort.Slice(layout.Goals, func(i, j int) bool { return layout.Goals[i].Owner < layout.Goals[j].Owner })

	return layout, nil
}

// LoadAll loads every .tmx file in dir, sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Layout, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("list courts in %s: %w", dir, err)
	}
	sort.Strings(paths)

	layouts := make([]*Layout, 0, len(paths))
	for _, p := range paths {
		l, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

func (l *Layout) paddle(p sim.Player) (PaddleSpot, bool) {
	for _, spot := range l.Paddles {
		if spot.Owner == p {
			return spot, true
		}
	}
	return PaddleSpot{}, false
}

func (l *Layout) goal(p sim.Player) (GoalSpot, bool) {
	for _, spot := range l.Goals {
		if spot.Owner == p {
			return spot, true
		}
	}
	return GoalSpot{}, false
}

// Apply overlays the court geometry on base. The field is recentred on the
// origin and flipped so that y points up. Paddle size and inset come from
// Player1's paddle, goal depth from Player1's goal when present.
func (l *Layout) Apply(base sim.Config) sim.Config {
	cfg := base
	halfW, halfH := l.Field.W/2, l.Field.H/2
	cfg.MinX, cfg.MaxX = -halfW, halfW
	cfg.MinY, cfg.MaxY = -halfH, halfH

	if spot, ok := l.paddle(sim.Player1); ok {
		cfg.PaddleHalfExtent = sim.Vector2{X: spot.Box.W / 2, Y: spot.Box.H / 2}
		cfg.PaddleInset = l.Field.X + l.Field.W - spot.Box.centerX()
	}
	if spot, ok := l.goal(sim.Player1); ok {
		cfg.GoalDepth = spot.Box.W
	}

	if l.Tuning.BallRadius > 0 {
		cfg.BallRadius = float64(l.Tuning.BallRadius)
	}
	if l.Tuning.BallSpeed > 0 {
		cfg.BallSpeed = float64(l.Tuning.BallSpeed)
	}
	if l.Tuning.PaddleSpeed > 0 {
		cfg.PaddleSpeed = float64(l.Tuning.PaddleSpeed)
	}
	if l.Tuning.TargetScore > 0 {
		cfg.TargetScore = l.Tuning.TargetScore
	}
	return cfg
}

// ToScreen converts a field position into map pixels for this court.
func (l *Layout) ToScreen(v sim.Vector2) (x, y float64) {
	return l.Field.centerX() + v.X, l.Field.Y + l.Field.H/2 - v.Y
}
