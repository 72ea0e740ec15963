// Package window runs a game session in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window/art"
)

// Options configures the window frontend.
type Options struct {
	Runtime   core.RuntimeConfig
	BirdColor core.Color
	Listener  core.Listener
	Logger    *log.Logger
	Sheet     *assets.Sheet // Defaults to the embedded sheet
	Zoom      float64       // Window size relative to the world, default 1
}

// Game implements ebiten.Game around a session.
type Game struct {
	session  *flappy.Session
	input    flappy.InputSource
	listener core.Listener
	logger   *log.Logger
	dt       float64

	birdFrames []*ebiten.Image
	groundTile *ebiten.Image

	skyTime   float64
	roundTime float64
}

// NewGame prepares the sprites for session.
func NewGame(session *flappy.Session, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sheet := opts.Sheet
	if sheet == nil {
		var err error
		if sheet, err = assets.Default(); err != nil {
			return nil, err
		}
	}

	g := &Game{
		session:  session,
		input:    keyboard{},
		listener: opts.Listener,
		logger:   logger,
		dt:       opts.Runtime.TickSeconds(),
	}

	body := art.RGBA(opts.BirdColor)
	for i := 0; i < assets.BirdFrames; i++ {
		sp, err := sheet.Sprite(assets.BirdFrameName(i))
		if err != nil {
			return nil, err
		}
		g.birdFrames = append(g.birdFrames, ebiten.NewImageFromImage(art.SpriteImage(sp, sheet.Scale, body)))
	}
	sp, err := sheet.Sprite("ground")
	if err != nil {
		return nil, err
	}
	g.groundTile = ebiten.NewImageFromImage(art.SpriteImage(sp, sheet.Scale, body))

	return g, nil
}

// Update runs one fixed simulation tick.
func (g *Game) Update() error {
	in := g.input.Poll()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if handler, ok := g.listener.(flappy.ActionHandler); ok {
		for _, a := range []core.Action{core.ActionVolumeUp, core.ActionVolumeDown, core.ActionMute} {
			if in.Has(a) {
				handler.HandleAction(a)
			}
		}
	}

	res := g.session.Step(g.dt, in)
	core.Dispatch(g.listener, res.Events)

	if !res.State.Paused {
		g.skyTime += g.dt
		g.roundTime += g.dt
	}
	if res.Crashed {
		g.logger.Info("round over",
			"round", res.State.Round-1,
			"score", g.session.Snapshot().Last,
			"best", res.State.Best,
			"duration", time.Duration(g.roundTime*float64(time.Second)).Round(time.Millisecond))
		g.roundTime = 0
	}
	return nil
}

// Layout keeps the logical screen at world size; Ebitengine scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return int(cfg.World.Width), int(cfg.World.Height)
}

// Run opens the window and plays until it is closed or the player quits.
func Run(session *flappy.Session, opts Options) error {
	g, err := NewGame(session, opts)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*zoom), int(float64(h)*zoom))
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(opts.Runtime.TickRate, 1))

	g.logger.Info("window opened", "width", w, "height", h, "tps", opts.Runtime.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
