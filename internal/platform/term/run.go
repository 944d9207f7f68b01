package term

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/game"
)

// Play runs one game on screen until the player quits, ctx is cancelled or
// no task is left. It returns the finished session for its statistics.
// A nil alert rings the terminal bell through tcell.
func Play(ctx context.Context, screen tcell.Screen, newSession game.Factory, alert audio.Alerter, logger *log.Logger) (*game.Session, error) {
	if alert == nil {
		alert = NewBeeper(screen)
	}
	surface := NewScreen(screen)
	input := &Input{}
	session, err := newSession(surface, input, alert)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalised
				return
			}
			if input.Handle(ev) {
				cancel()
				return
			}
		}
	}()

	err = session.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if logger != nil {
		logger.Info("game finished", "state", session.State(), "ticks", session.Ticks())
	}
	return session, err
}

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}
