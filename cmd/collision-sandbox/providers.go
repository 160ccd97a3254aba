package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/config"
	"github.com/elle-trudgett/luna/logging"
	"github.com/elle-trudgett/luna/physics"
	"github.com/elle-trudgett/luna/world"
)

// options are the command-line settings
type options struct {
	ScenePath  string
	ConfigPath string
	LogPath    string
	Sound      bool
	Trace      bool
}

// provideConfig loads the config file or falls back to defaults tuned for tile-unit scenes
func provideConfig(opts options) (config.Config, error) {
	if opts.ConfigPath == "" {
		cfg := config.Default()
		cfg.Movement = physics.UnitProfile
		return cfg, nil
	}
	return config.Load(opts.ConfigPath)
}

func provideLogger(opts options, cfg config.Config) (*zap.Logger, func(), error) {
	out := cfg.Log.File
	if out == "" {
		out = opts.LogPath
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development, out)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideResolver(cfg config.Config) (collision.Resolver, error) {
	return cfg.Resolver()
}

func provideScene(opts options) (*world.Scene, error) {
	return world.LoadScene(opts.ScenePath)
}

func provideScreen() (tcell.Screen, func(), error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, screen.Fini, nil
}

// chime plays short tones through the speaker when enabled
type chime struct {
	enabled    bool
	sampleRate beep.SampleRate
}

func provideChime(opts options, logger *zap.Logger) (*chime, func()) {
	c := &chime{sampleRate: beep.SampleRate(44100)}
	if !opts.Sound {
		return c, func() {}
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return c, func() {}
	}
	c.enabled = true
	return c, speaker.Close
}

// play emits a tone of freq Hz for d
func (c *chime) play(freq float64, d time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(d), sine))
}
