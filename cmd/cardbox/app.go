// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"cardbox/internal/config"
	"cardbox/internal/library"
	"cardbox/internal/store"
	"cardbox/internal/tui"
)

// App wires the CLI to its shared dependencies. All command handlers go
// through an App so tests can substitute the store, the writers, and the
// prompt configuration.
type App struct {
	Config  *config.Config
	Library *library.Library
	Logger  *log.Logger

	tuiCfg tui.Config
	stdout io.Writer
	stderr io.Writer
}

// newApp builds the production App: config from file/env/flags, registry
// hydrated from the JSON store, debug logging when requested.
func newApp() (*App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.Data.File = dataFile
	}
	if verbose {
		cfg.UI.Verbose = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})
	if cfg.UI.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	lib, err := library.Open(store.NewFileStore(cfg.Data.File), logger)
	if err != nil {
		return nil, err
	}

	tuiCfg := tui.DefaultConfig()
	tuiCfg.Theme = tui.Theme(cfg.UI.Theme)
	if cfg.UI.Accessible {
		tuiCfg.Accessible = true
	}

	return &App{
		Config:  cfg,
		Library: lib,
		Logger:  logger,
		tuiCfg:  tuiCfg,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}
