package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  debris menu
  debris menu --tps 15
  debris menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	store := openStore(a.logger)
	if store != nil {
		defer store.Close()
	}

	alert, err := audio.New(audio.ModeBell, os.Stdout)
	if err != nil {
		a.logger.Warn("cannot create alerts", "err", err)
	}
	player := playerName()

	// Menu loop
	for {
		width, height := terminalSize()
		choice, err := tui.RunMenu(store, width, height)
		if err != nil {
			a.logger.Error("menu failed", "err", err)
			return
		}

		switch choice {
		case tui.MenuPlay:
			var back bool
			back, err = tui.Run(tui.GameOptions{
				NewSession: a.factory(),
				Store:      store,
				Alert:      alert,
				Player:     player,
				Width:      width,
				Height:     height,
				Logger:     a.logger,
			})
			if err == nil && !back {
				return
			}
		case tui.MenuScores:
			var back bool
			back, err = tui.RunScoreboard(store, player, width, height)
			if err == nil && !back {
				return
			}
		default:
			return
		}
		if err != nil {
			a.logger.Error("screen failed", "err", err)
			return
		}
	}
}
