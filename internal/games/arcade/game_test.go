package arcade

import (
	"testing"

	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/falling"
	"github.com/digiresist/reboot-arcade/internal/progression"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func startGame(t *testing.T, g *Game) {
	t.Helper()
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.phase != core.PhaseRunning {
		t.Fatalf("expected running after confirm, got %v", g.phase)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()

	run := func() core.GameState {
		g := New(progression.NewStore())
		g.Reset(cfg)
		startGame(t, g)

		var state core.GameState
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%7 == 0 {
				in.Set(core.ActionFire)
			}
			if i%11 == 0 {
				in.Set(core.ActionLeft)
			}
			state = g.Step(in).State
			if state.GameOver() {
				break
			}
		}
		return state
	}

	s1 := run()
	s2 := run()
	if s1.Score != s2.Score || s1.Lives != s2.Lives {
		t.Errorf("determinism failed: run1=%+v run2=%+v", s1, s2)
	}
}

func TestGameDoesNotRunBeforeStart(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseNotStarted {
		t.Errorf("game should stay not-started without confirm, got %v", g.phase)
	}
	if g.field.Len() != 0 {
		t.Errorf("nothing should spawn before start, got %d entities", g.field.Len())
	}
}

func TestGameHitScoresAndReportsResistance(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: g.crosshairX, Y: 50, Speed: 0, Kind: falling.Kind{Name: "ADS", Points: 10}})

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.score != 10 {
		t.Errorf("expected score 10 after first hit, got %d", g.score)
	}
	snap := store.Snapshot()
	if snap.BloatwareDestroyed != 1 {
		t.Errorf("expected 1 bloatware destroyed in session, got %d", snap.BloatwareDestroyed)
	}
	if snap.ResistanceScore != 5 {
		t.Errorf("expected +5 resistance, got %d", snap.ResistanceScore)
	}
}

func TestGameWhiffResetsCombo(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: g.crosshairX, Y: 50, Kind: falling.Kind{Points: 10}})
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.combo.Current() != 1 {
		t.Fatalf("expected combo 1, got %d", g.combo.Current())
	}

	// Empty field: same shot hits nothing
	g.field.Clear()
	g.Step(in)

	if g.combo.Current() != 0 {
		t.Errorf("whiff should reset combo, got %d", g.combo.Current())
	}
	if store.Snapshot().CurrentCombo != 0 {
		t.Errorf("whiff should reset session combo, got %d", store.Snapshot().CurrentCombo)
	}
}

func TestGameEscapeCostsLife(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	lives := g.lives
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: 50, Y: 99, Speed: 5})

	// Movement cadence is 3 ticks at 60fps
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.lives != lives-1 {
		t.Errorf("escape should cost one life: had %d, now %d", lives, g.lives)
	}
}

func TestGameFinishedReportedOnce(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	g.lives = 1
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: 50, Y: 99, Speed: 5})

	finishes := 0
	for i := 0; i < 10; i++ {
		if g.Step(core.NewInputFrame()).Finished {
			finishes++
		}
	}

	if finishes != 1 {
		t.Errorf("finished must be reported exactly once, got %d", finishes)
	}
	if g.phase != core.PhaseFailed {
		t.Errorf("running out of lives fails the run, got %v", g.phase)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.phase != core.PhasePaused {
		t.Fatalf("expected paused, got %v", g.phase)
	}

	ticks := g.tickCount
	entities := g.field.Len()
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.tickCount != ticks {
		t.Error("ticks should not advance while paused")
	}
	if g.field.Len() != entities {
		t.Error("nothing should spawn while paused")
	}

	g.Step(pause)
	if g.phase != core.PhaseRunning {
		t.Errorf("expected running after unpause, got %v", g.phase)
	}
}

func TestGameReset(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(testConfig())

	if g.phase != core.PhaseNotStarted {
		t.Errorf("reset should return to not-started, got %v", g.phase)
	}
	if g.score != 0 || g.tickCount != 0 {
		t.Errorf("reset should clear score and ticks, got score=%d ticks=%d", g.score, g.tickCount)
	}
	if g.field.Len() != 0 {
		t.Errorf("reset should clear the field, got %d entities", g.field.Len())
	}
}

func TestGameRender(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("render should draw something")
	}
}
