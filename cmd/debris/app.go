package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/game"
)

var (
	flagDifficulty string
	flagAssets     string
)

// app holds what every command needs to start a game.
type app struct {
	cfg     config.GameConfig
	pack    *assets.Pack
	logger  *log.Logger
	logFile io.Closer
}

// newApp loads configuration and sprites and opens the log.
func newApp() (*app, error) {
	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		closer.Close()
		return nil, err
	}

	pack, err := assets.Load(flagAssets)
	if err != nil {
		closer.Close()
		return nil, err
	}

	logger.Debug("configuration loaded",
		"config", flagConfig,
		"start_year", cfg.Clock.StartYear,
		"tick_rate", cfg.TickRate,
		"assets", flagAssets,
	)
	return &app{cfg: cfg, pack: pack, logger: logger, logFile: closer}, nil
}

// loadConfig applies the difficulty preset and tick rate override.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagTPS > 0 {
		cfg.TickRate = flagTPS
	}
	return cfg, nil
}

func (a *app) factory() game.Factory {
	return game.NewFactory(a.cfg, a.pack, flagSeed, a.logger)
}

func (a *app) Close() error {
	return a.logFile.Close()
}

// openLogger logs to a file so the alt screen stays clean.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "debris",
		Level:           lvl,
	})
	return logger, f, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// playerName names local runs in the score table.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
