package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// fakeGame records the input it receives and reports a scripted state.
type fakeGame struct {
	state   core.GameState
	inputs  []core.InputFrame
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake game") }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.state}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelForwardsKeysOnce(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("got %d steps, want 2", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionLeft) || !game.inputs[0].Has(core.ActionRotate) {
		t.Errorf("first frame = %v, want left+rotate", game.inputs[0].Actions)
	}
	if len(game.inputs[1].Actions) != 0 {
		t.Errorf("second frame = %v, want empty", game.inputs[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, core.DefaultConfig())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit must return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view must be empty after quit")
	}
}

func TestModelResizeDoesNotRestart(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, core.DefaultConfig())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if game.resized != [2]int{100, 39} {
		t.Errorf("resized to %v, want [100 39]", game.resized)
	}
	if !strings.Contains(m.View(), "fake game") {
		t.Error("view does not include the game")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := NewModel(game, store, nil, core.DefaultConfig())
	m.Init()

	m = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 1244, Level: 2, Lines: 5, GameOver: true}
	for range 5 {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	if scores[0].Score != 1244 || scores[0].Level != 2 || scores[0].Lines != 5 {
		t.Errorf("saved %+v", scores[0])
	}

	// A new game followed by another game over saves again.
	game.state = core.GameState{Level: 1}
	m = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 88, Level: 1, Lines: 1, GameOver: true}
	update(t, m, TickMsg{})

	scores, _ = store.TopScores("fake", 10)
	if len(scores) != 2 {
		t.Errorf("saved %d results, want 2", len(scores))
	}
}
