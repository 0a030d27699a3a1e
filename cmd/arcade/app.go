package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/events"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// app holds what commands share once flags are parsed.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	backend *storage.Backend
	results *events.Client // nil when no NATS url is configured
	logFile io.Closer
}

// loadConfig reads arcade.yaml and applies the difficulty preset, falling
// back to the one named in the file.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty == "" {
		difficulty = string(cfg.Difficulty)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openApp loads the config, opens storage and connects the result feed.
// Interactive commands log to ~/.arcade/arcade.log so the alt screen stays
// clean.
func openApp(ctx context.Context, difficulty string, interactive bool) (*app, error) {
	a := &app{}
	a.logger, a.logFile = newLogger(interactive)

	cfg, err := loadConfig(difficulty)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cfg = cfg

	backend, err := storage.OpenBackend(ctx, cfg.Storage, flagDBPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.backend = backend

	if cfg.Events.NATSURL != "" {
		client, err := events.Connect(cfg.Events, a.logger)
		if err != nil {
			a.logger.Warn("result feed disabled", "error", err)
		} else {
			a.results = client
		}
	}
	return a, nil
}

func newLogger(interactive bool) (*log.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer

	if interactive {
		out = io.Discard
		if path, err := storage.ExpandHome("~/.arcade/arcade.log"); err == nil {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
					out, closer = f, f
				}
			}
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), closer
}

// services is the bundle handed to game factories.
func (a *app) services() registry.Services {
	svc := registry.Services{
		Config: a.cfg,
		Scores: a.backend.Scores,
		Wins:   a.backend.Wins,
		Logger: a.logger,
	}
	if a.results != nil {
		svc.Results = a.results
	}
	return svc
}

func (a *app) env() tui.Env {
	return tui.Env{Services: a.services(), History: a.backend.History}
}

// Close flushes the result feed and closes storage. Safe on a partly
// opened app.
func (a *app) Close() {
	if a.results != nil {
		if err := a.results.Flush(); err != nil {
			a.logger.Warn("cannot flush results", "error", err)
		}
		a.results.Close()
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Warn("cannot close storage", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
