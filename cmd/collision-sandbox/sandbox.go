package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/elle-trudgett/luna/config"
	"github.com/elle-trudgett/luna/physics"
	"github.com/elle-trudgett/luna/vmath"
	"github.com/elle-trudgett/luna/world"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	// Terminals report presses only; input holds this long after the last repeat
	inputHold   = 150 * time.Millisecond
	landToneHz  = 440
	deathToneHz = 220
)

type sandbox struct {
	opts   options
	cfg    config.Config
	logger *zap.Logger
	mover  *physics.Mover
	screen tcell.Screen
	chime  *chime

	scene     *world.Scene
	obstacles *world.StaticSet
	body      *physics.Body

	lastInput time.Time
	last      physics.StepReport
	deaths    int
	width     int
	height    int
}

func newSandbox(opts options, cfg config.Config, logger *zap.Logger, mover *physics.Mover,
	scene *world.Scene, screen tcell.Screen, c *chime) (*sandbox, error) {
	sb := &sandbox{
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		mover:  mover,
		screen: screen,
		chime:  c,
	}
	mover.Trace = opts.Trace
	if err := sb.load(scene); err != nil {
		return nil, err
	}
	sb.width, sb.height = screen.Size()
	screen.HideCursor()
	return sb, nil
}

// load builds obstacles from scene and respawns the player
func (sb *sandbox) load(scene *world.Scene) error {
	set, err := scene.Build()
	if err != nil {
		return err
	}
	sb.scene = scene
	sb.obstacles = set
	sb.respawn()
	sb.logger.Info("scene loaded",
		zap.String("name", scene.Name),
		zap.Int("obstacles", set.Len()),
		zap.Uint64("fingerprint", set.Fingerprint()),
	)
	return nil
}

func (sb *sandbox) respawn() {
	p := sb.scene.Player
	sb.body = physics.NewBody(p.Position.Vec(), p.Width, p.Height, sb.cfg.Movement)
}

func (sb *sandbox) reload() {
	scene, err := world.LoadScene(sb.opts.ScenePath)
	if err != nil {
		sb.logger.Warn("reload failed", zap.String("path", sb.opts.ScenePath), zap.Error(err))
		return
	}
	if err := sb.load(scene); err != nil {
		sb.logger.Warn("reload failed", zap.String("path", sb.opts.ScenePath), zap.Error(err))
	}
}

// handleInput returns false when the sandbox should exit
func (sb *sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			sb.body.SetInput(-1)
			sb.lastInput = time.Now()
		case tcell.KeyRight:
			sb.body.SetInput(1)
			sb.lastInput = time.Now()
		case tcell.KeyUp:
			sb.body.Jump()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				sb.body.Jump()
			case 'r':
				sb.reload()
			case 't':
				sb.mover.Trace = !sb.mover.Trace
			}
		}

	case *tcell.EventResize:
		sb.width, sb.height = sb.screen.Size()
		sb.screen.Sync()
	}
	return true
}

func (sb *sandbox) update(dt float64) {
	if sb.body.Input != 0 && time.Since(sb.lastInput) > inputHold {
		sb.body.SetInput(0)
	}

	report := sb.body.Step(dt, sb.obstacles, sb.mover)
	sb.last = report

	if report.Err != nil {
		sb.logger.Warn("step failed safe", zap.Error(report.Err))
	}
	if report.Landed {
		sb.chime.play(landToneHz, 50*time.Millisecond)
	}
	if report.Died {
		sb.deaths++
		sb.logger.Info("player died",
			zap.Int("deaths", sb.deaths),
			zap.Float64("x", sb.body.Position.X),
			zap.Float64("y", sb.body.Position.Y),
		)
		sb.chime.play(deathToneHz, 200*time.Millisecond)
		sb.respawn()
	}
}

func (sb *sandbox) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- sb.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !sb.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			// Long stalls (debugger, suspended terminal) would tunnel the body through floors
			dt := vmath.Clamp(now.Sub(last).Seconds(), 0, 0.05)
			last = now
			sb.update(dt)
			sb.draw()
		}
	}
}
