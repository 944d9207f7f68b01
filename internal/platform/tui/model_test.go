package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/game"
	"github.com/vovakirdan/space-debris/internal/storage"
)

func testFactory(doomed bool) SessionFactory {
	return func(surface core.Surface, input core.InputSource, alert audio.Alerter) (*game.Session, error) {
		s, err := game.NewSession(game.Options{
			Config:  config.DefaultGameConfig(),
			Surface: surface,
			Input:   input,
			Alert:   alert,
			Seed:    3,
		})
		if err != nil {
			return nil, err
		}
		if doomed {
			rows, cols := surface.Bounds()
			s.Registry().Add(core.NewRect(0, 0, rows, cols))
		}
		return s, nil
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewGameModel(GameOptions{
		NewSession: testFactory(true),
		Store:      store,
		Player:     "ada",
		Width:      80,
		Height:     25,
	})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if !m.State().GameOver {
		t.Fatal("ship should have been hit")
	}
	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Player != "ada" || runs[0].YearReached != 1957 || runs[0].Seed != 3 {
		t.Errorf("saved run = %+v", runs[0])
	}

	m, _ = update(t, m, runeKey('r'))
	if m.State().GameOver {
		t.Error("restart should start a fresh game")
	}
}

func TestGameModelKeys(t *testing.T) {
	m := NewGameModel(GameOptions{NewSession: testFactory(false), Width: 80, Height: 25})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if c := m.input.Poll(); c.Row != -1 || !c.Fire {
		t.Errorf("input = %+v, expected up and fire", c)
	}

	before := m.session
	m, _ = update(t, m, runeKey('r'))
	if m.session != before {
		t.Error("restart must be ignored while the ship is alive")
	}

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelResizeRestarts(t *testing.T) {
	m := NewGameModel(GameOptions{NewSession: testFactory(false), Width: 80, Height: 25})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	rows, cols := m.canvas.Bounds()
	if rows != 30 || cols != 100 {
		t.Errorf("canvas = %dx%d, expected 30x100", rows, cols)
	}
}

func TestRenderCanvasStyles(t *testing.T) {
	c := core.NewCanvas(1, 3, false)
	c.Draw(0, 0, "ab", core.StyleNormal)
	c.Draw(0, 2, "c", core.StyleBold)
	c.Flush()

	out := RenderCanvas(c)
	if got := cellStyles[core.StyleNormal].Render("ab") + cellStyles[core.StyleBold].Render("c"); out != got {
		t.Errorf("RenderCanvas() = %q, expected %q", out, got)
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{
		{Player: "ada", StartYear: 1957, YearReached: 1999, Destroyed: 4},
	})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	want := []string{"#1", "ada", "1999", "42", "4"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], w)
		}
	}
}

func TestSessionModelMenuFlow(t *testing.T) {
	m := NewSessionModel(SessionOptions{NewSession: testFactory(false), Width: 80, Height: 25})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := next.(SessionModel)
	if sm.gameModel == nil {
		t.Fatal("selecting Play should start a game")
	}

	next, _ = sm.Update(runeKey('q'))
	if !next.(SessionModel).quitting {
		t.Error("q in game should end the session")
	}
}
