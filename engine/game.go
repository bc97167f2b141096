package engine

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/beatfield/audio"
	"github.com/lixenwraith/beatfield/input"
	"github.com/lixenwraith/beatfield/parameter"
	"github.com/lixenwraith/beatfield/particle"
	"github.com/lixenwraith/beatfield/physics"
	"github.com/lixenwraith/beatfield/render"
)

// Options configures a Game beyond the screen it draws to
type Options struct {
	// Physics is the full integrator tuning including world extent
	Physics physics.Config

	// Counts is the initial (and reset) population per band
	Counts particle.Counts

	// Seed drives spawn randomness
	Seed int64

	// Source supplies live amplitude samples; nil selects the synthetic
	// energy path
	Source audio.SampleSource
}

// WorldSize derives the simulation extent from a screen: full width, with
// the HUD row and waveform strip carved off the height
func WorldSize(screen tcell.Screen) (width, height float64) {
	w, h := screen.Size()
	usable := h - 1 - parameter.WaveformHeight
	if usable < 4 {
		usable = 4
	}
	return float64(w), float64(usable)
}

// Game wires the simulation core to the terminal host: one Update then
// one Draw per frame, commands applied between frames. Single logical
// thread; the event pump goroutine only forwards tcell events
type Game struct {
	screen   tcell.Screen
	log      *logrus.Logger
	clock    TimeProvider
	store    *particle.Store
	stepper  *physics.Stepper
	energy   *audio.EnergyModel
	source   audio.SampleSource
	renderer *render.Renderer

	frame audio.Frame
	fps   float64

	paused      bool
	showOverlay bool
	showWave    bool
	showHUD     bool

	beatFlash int
}

// NewGame builds the simulation over an initialized screen
func NewGame(screen tcell.Screen, opts Options, log *logrus.Logger) (*Game, error) {
	stepper, err := physics.NewStepper(opts.Physics, log)
	if err != nil {
		return nil, fmt.Errorf("physics setup: %w", err)
	}
	store, err := particle.NewStore(opts.Physics.Width, opts.Physics.Height, opts.Counts, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("store setup: %w", err)
	}

	return &Game{
		screen:   screen,
		log:      log,
		clock:    NewMonotonicTimeProvider(),
		store:    store,
		stepper:  stepper,
		energy:   audio.NewEnergyModel(),
		source:   opts.Source,
		renderer: render.New(screen),
		showWave: true,
		showHUD:  true,
	}, nil
}

// Update advances audio then physics by dt seconds. The energy model
// keeps running while paused so the waveform stays alive, but particles
// hold still
func (g *Game) Update(dt float64) {
	g.frame = g.energy.Update(dt, g.source)

	if g.frame.Beat {
		g.beatFlash = parameter.BeatFlashFrames
	} else if g.beatFlash > 0 {
		g.beatFlash--
	}

	if !g.paused {
		g.stepper.Step(dt, g.store.Particles(), g.frame)
	}

	if dt > 0 {
		g.fps += (1/dt - g.fps) * 0.1
	}
}

// Draw renders the current state; it performs no simulation logic
func (g *Game) Draw() {
	view := render.View{
		Particles: g.store.Particles(),
		ShowHUD:   g.showHUD,
		HUD: render.HUD{
			Population: g.store.Len(),
			Energy:     g.frame,
			Gravity:    g.stepper.Config().Gravity,
			FPS:        g.fps,
			Paused:     g.paused,
			Reactive:   g.energy.Reactive(),
			BeatFlash:  g.beatFlash > 0,
		},
	}
	if g.showOverlay {
		view.Tree = g.stepper.Tree()
	}
	if g.showWave {
		view.Waveform = g.energy
	}
	g.renderer.Draw(view)
}

// Handle applies one command and reports whether the game should quit
func (g *Game) Handle(cmd input.Command) bool {
	switch cmd.Kind {
	case input.Quit:
		return true

	case input.Pause:
		g.paused = !g.paused

	case input.Reset:
		g.store.Reset()
		g.log.Info("simulation reset")

	case input.SpawnBass:
		g.spawnCentered(particle.Bass)
	case input.SpawnMid:
		g.spawnCentered(particle.Mid)
	case input.SpawnTreble:
		g.spawnCentered(particle.Treble)

	case input.SpawnBurst:
		x, y := g.screenToWorld(cmd.X, cmd.Y)
		g.store.SpawnBurst(x, y, parameter.SpawnBurstSize)

	case input.ToggleAudio:
		g.energy.SetReactive(!g.energy.Reactive())
	case input.ToggleOverlay:
		g.showOverlay = !g.showOverlay
	case input.ToggleWaveform:
		g.showWave = !g.showWave
	case input.ToggleHUD:
		g.showHUD = !g.showHUD

	case input.GravityUp:
		g.stepper.AdjustGravity(parameter.GravityAdjustStep)
	case input.GravityDown:
		g.stepper.AdjustGravity(-parameter.GravityAdjustStep)

	case input.Resize:
		g.screen.Sync()
	}
	return false
}

// spawnCentered drops a batch high over the middle of the world
func (g *Game) spawnCentered(b particle.Band) {
	w, h := g.store.Bounds()
	g.store.Spawn(b, w/2, h/4, parameter.SpawnBatchSize)
}

// screenToWorld maps a mouse position into world coordinates, clamped
// inside the simulation bounds
func (g *Game) screenToWorld(sx, sy int) (float64, float64) {
	w, h := g.store.Bounds()
	x, y := float64(sx), float64(sy-1-parameter.HUDRow)
	if x < 0 {
		x = 0
	} else if x > w {
		x = w
	}
	if y < 0 {
		y = 0
	} else if y > h {
		y = h
	}
	return x, y
}

// Run drives the frame loop until quit. tcell events are pumped on their
// own goroutine; all simulation work happens on this one
func (g *Game) Run() error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.TargetFrameInterval)
	defer ticker.Stop()
	defer close(done)

	last := g.clock.Now()
	g.log.WithFields(logrus.Fields{
		"population": g.store.Len(),
		"world":      fmt.Sprintf("%.0fx%.0f", g.stepper.Config().Width, g.stepper.Config().Height),
	}).Info("simulation started")

	for {
		select {
		case ev := <-events:
			if cmd := input.Translate(ev); cmd.Kind != input.None {
				if g.Handle(cmd) {
					g.log.Info("quit requested")
					return nil
				}
			}

		case <-ticker.C:
			now := g.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now
			g.Update(dt)
			g.Draw()
		}
	}
}
