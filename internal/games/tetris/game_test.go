package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// useConfig points the package at a temporary config file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

// newTestGame returns a started game where gravity fires every 5 steps.
func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	useConfig(t, "gravity:\n  interval_ms: 500\n")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7})
	return g
}

func step(g *Game, n int, actions ...core.Action) {
	for i := 0; i < n; i++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_hard"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
	g, err := registry.Create("tetris_hard")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Tetris (Hard)" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGravityFiresAtInterval(t *testing.T) {
	g := newTestGame(t, New())

	step(g, 4)
	if y := g.Snapshot().Active.Pos.Y; y != 0 {
		t.Fatalf("after 400ms y = %d, want 0", y)
	}
	step(g, 1)
	if y := g.Snapshot().Active.Pos.Y; y != 1 {
		t.Fatalf("after 500ms y = %d, want 1", y)
	}
	step(g, 5)
	if y := g.Snapshot().Active.Pos.Y; y != 2 {
		t.Errorf("after 1000ms y = %d, want 2", y)
	}
}

func TestSoftDropRestartsGravity(t *testing.T) {
	g := newTestGame(t, New())

	step(g, 4)
	step(g, 1, core.ActionSoftDrop)
	if y := g.Snapshot().Active.Pos.Y; y != 1 {
		t.Fatalf("soft drop y = %d, want 1", y)
	}

	step(g, 3)
	if y := g.Snapshot().Active.Pos.Y; y != 1 {
		t.Fatalf("gravity fired early: y = %d", y)
	}
	step(g, 1)
	if y := g.Snapshot().Active.Pos.Y; y != 2 {
		t.Errorf("y = %d, want 2", y)
	}
}

func TestHardVariantSoftDropPullsTwoRows(t *testing.T) {
	g := newTestGame(t, NewHard())

	step(g, 1, core.ActionSoftDrop)
	if y := g.Snapshot().Active.Pos.Y; y != 2 {
		t.Errorf("hard soft drop y = %d, want 2", y)
	}
}

func TestHardVariantSoftDropKeepsGravityCountdown(t *testing.T) {
	g := newTestGame(t, NewHard())

	step(g, 4)
	step(g, 1, core.ActionSoftDrop)
	if y := g.Snapshot().Active.Pos.Y; y != 3 {
		t.Errorf("y = %d, want 3 (two rows from the drop, one from the 500ms countdown)", y)
	}
}

func TestHardDropAndRestart(t *testing.T) {
	g := newTestGame(t, New())

	step(g, 1, core.ActionHardDrop)
	snap := g.Snapshot()
	if snap.Filled != 4 {
		t.Errorf("filled = %d, want 4", snap.Filled)
	}
	if snap.Score != tetris.NextPieceBonus {
		t.Errorf("score = %d, want %d", snap.Score, tetris.NextPieceBonus)
	}
	if snap.Active.Pos.Y != 0 {
		t.Errorf("new piece y = %d, want spawn row", snap.Active.Pos.Y)
	}

	step(g, 1, core.ActionRestart)
	snap = g.Snapshot()
	if snap.Filled != 0 || snap.Score != 0 {
		t.Errorf("after restart filled=%d score=%d", snap.Filled, snap.Score)
	}
	if snap.State != "running" {
		t.Errorf("state = %q, want running", snap.State)
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t, New())

	step(g, 1, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot().Active

	step(g, 20)
	step(g, 1, core.ActionLeft)
	step(g, 1, core.ActionHardDrop)
	if got := g.Snapshot().Active; got != before {
		t.Errorf("piece moved while paused: %+v -> %+v", before, got)
	}
	if g.Snapshot().State != "paused" {
		t.Errorf("state = %q, want paused", g.Snapshot().State)
	}

	step(g, 1, core.ActionPause)
	if g.State().Paused {
		t.Fatal("expected resumed")
	}
	step(g, 1, core.ActionLeft)
	if got := g.Snapshot().Active.Pos.X; got != before.Pos.X-1 {
		t.Errorf("x = %d, want %d", got, before.Pos.X-1)
	}
}

func TestGameOverStopsEverything(t *testing.T) {
	g := newTestGame(t, New())

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		step(g, 1, core.ActionHardDrop)
	}
	if !g.State().GameOver {
		t.Fatal("stacking in the center never ended the game")
	}

	before := g.Snapshot()
	step(g, 30, core.ActionLeft, core.ActionRotate, core.ActionHardDrop, core.ActionPause)
	after := g.Snapshot()
	if after.Filled != before.Filled || after.Score != before.Score || after.Active != before.Active {
		t.Errorf("game changed after game over: %+v -> %+v", before, after)
	}
	if g.State().Paused {
		t.Error("pause must not toggle after game over")
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, "gravity:\n  interval_ms: 200\n")
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)

	actions := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionRight, core.ActionSoftDrop, core.ActionHardDrop}
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(actions[(i/7)%len(actions)])
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDifficultyPresetScalesInterval(t *testing.T) {
	useConfig(t, "gravity:\n  interval_ms: 1000\n")
	SetDifficultyPreset("easy")

	g := New()
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().Interval; got != 1500*time.Millisecond {
		t.Errorf("easy interval = %v, want 1.5s", got)
	}

	SetDifficultyPreset("hard")
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().Interval; got != 600*time.Millisecond {
		t.Errorf("hard interval = %v, want 600ms", got)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Tetris", "Next", "Score", "Level", "Lines", "Next level in 5 lines"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, blockRune) {
		t.Error("render shows no active piece")
	}
	if !strings.ContainsRune(out, ghostRune) {
		t.Error("render shows no ghost piece")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)

	step(g, 1, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("missing pause overlay")
	}

	step(g, 1, core.ActionPause)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		step(g, 1, core.ActionHardDrop)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("missing game over overlay")
	}
}

func TestTooSmall(t *testing.T) {
	useConfig(t, "")
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 10, Seed: 1})

	before := g.Snapshot().Active
	step(g, 50)
	if got := g.Snapshot().Active; got != before {
		t.Error("gravity ran while the window was too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("missing too-small message")
	}

	g.Resize(80, 24)
	step(g, 20)
	if got := g.Snapshot().Active; got == before {
		t.Error("gravity did not resume after resize")
	}
}
