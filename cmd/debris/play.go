package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/game"
	"github.com/vovakirdan/space-debris/internal/platform/term"
	"github.com/vovakirdan/space-debris/internal/platform/tui"
	"github.com/vovakirdan/space-debris/internal/storage"
)

var (
	flagBackend string
	flagSound   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately.

Controls:
  Arrows/WASD  - Steer the rocket
  Space        - Fire (once the plasma gun is unlocked in 2020)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start in 1957, a few quiet years before the first debris
  normal - Start in 1969
  hard   - Start in 1995

Backends:
  tea    - Bubble Tea frontend with menus and help line (default)
  tcell  - Bare tcell screen driven by the game's own ticker

Examples:
  debris play
  debris play --difficulty hard
  debris play --backend tcell --sound speaker
  debris play --config ./my-debris.toml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Frontend: tea or tcell")
	playCmd.Flags().StringVar(&flagSound, "sound", "bell", "Alerts: bell, speaker or off")
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	alert, err := audio.New(audio.Mode(flagSound), os.Stdout)
	if err != nil {
		a.logger.Warn("sound unavailable, using the terminal bell", "err", err)
	}

	store := openStore(a.logger)
	if store != nil {
		defer store.Close()
	}

	switch flagBackend {
	case "tea", "":
		width, height := terminalSize()
		_, err = tui.Run(tui.GameOptions{
			NewSession: a.factory(),
			Store:      store,
			Alert:      alert,
			Player:     playerName(),
			Width:      width,
			Height:     height,
			Logger:     a.logger,
		})
	case "tcell":
		err = playTcell(a, store, alert)
	default:
		err = fmt.Errorf("unknown backend %q", flagBackend)
	}
	if err != nil {
		a.Close()
		fatal("running game: %v", err)
	}
}

func playTcell(a *app, store *storage.Store, alert audio.Alerter) error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	// The bell must go through tcell, which owns the terminal.
	if audio.Mode(flagSound) == audio.ModeBell || flagSound == "" {
		alert = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := term.Play(ctx, screen, a.factory(), alert, a.logger)
	if session != nil && session.State().GameOver {
		saveRun(store, session, playerName(), a.logger)
	}
	return err
}

// openStore opens the score database. The game still works without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// saveRun records a finished game. Best-effort.
func saveRun(store *storage.Store, session *game.Session, player string, logger *log.Logger) {
	if store == nil {
		return
	}
	stats := session.Stats()
	_, err := store.SaveRun(storage.Run{
		Player:      player,
		StartYear:   session.StartYear(),
		YearReached: stats.FinalYear,
		Destroyed:   stats.Destroyed,
		Fired:       stats.Fired,
		Ticks:       session.Ticks(),
		Seed:        session.Seed(),
	})
	if err != nil {
		logger.Warn("cannot save run", "err", err)
	}
}
