package survival

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
		Seed:     99,
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

func TestGameReadsChallengeTarget(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())

	// The survivor challenge in the seed catalog asks for 200
	if g.target != 200 {
		t.Errorf("expected target 200 from the challenge catalog, got %d", g.target)
	}
}

func TestGameKillScoresPointsPerKill(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: g.crosshairX, Y: 50, Kind: falling.Kind{Points: 30}})

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	// Survival ignores kind points: every kill is worth the same
	if g.score != g.cfg.PointsPerKill {
		t.Errorf("expected score %d, got %d", g.cfg.PointsPerKill, g.score)
	}
	if g.kills != 1 {
		t.Errorf("expected 1 kill, got %d", g.kills)
	}
}

func TestGameLivesOutBelowTargetFails(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.lives = 1
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: 50, Y: 99, Speed: 5})

	var res core.StepResult
	for i := 0; i < 3; i++ {
		res = g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseFailed {
		t.Errorf("expected failed run, got %v", g.phase)
	}
	if !res.Finished {
		t.Error("expected finished report on the last tick")
	}

	snap := store.Snapshot()
	if ch, _ := snap.ChallengeByID(ChallengeID); ch.Completed {
		t.Error("challenge must not complete below its target")
	}
}

func TestGameTargetReachedCompletesChallenge(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.score = 250
	g.lives = 1
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: 50, Y: 99, Speed: 5})

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseCompleted {
		t.Errorf("expected completed run, got %v", g.phase)
	}

	snap := store.Snapshot()
	ch, ok := snap.ChallengeByID(ChallengeID)
	if !ok || !ch.Completed {
		t.Error("challenge should be completed at 250 points")
	}
	// Reward is 200 XP: level 1 threshold 100, level 2 threshold 150
	if snap.Level != 2 {
		t.Errorf("expected level 2 after the 200 XP reward, got %d", snap.Level)
	}
}

func TestGameTargetReachedEndsRunWithLivesLeft(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.score = g.target + 50
	g.field.Clear()

	res := g.Step(core.NewInputFrame())

	if g.phase != core.PhaseCompleted {
		t.Errorf("expected completed run at target score, got %v", g.phase)
	}
	if !res.Finished {
		t.Error("expected finished report on the tick the target was reached")
	}
	if res.FinalScore != g.target+50 {
		t.Errorf("expected final score %d, got %d", g.target+50, res.FinalScore)
	}
	if g.lives != g.cfg.Lives {
		t.Errorf("lives should be untouched, got %d", g.lives)
	}

	if ch, _ := store.Snapshot().ChallengeByID(ChallengeID); !ch.Completed {
		t.Error("challenge should complete without losing a life")
	}
}

func TestGameSpawnsAccelerate(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	// Push difficulty to max through elapsed time
	g.tickCount = g.cfg.Difficulty.Progression.MaxAt

	interval := g.difficulty.SpawnIntervalMS(
		g.cfg.Spawn.BaseIntervalMS, g.cfg.Spawn.MinIntervalMS, g.score, g.tickCount)

	if interval >= g.cfg.Spawn.BaseIntervalMS {
		t.Errorf("spawn interval should shrink at max difficulty: base %d, got %d",
			g.cfg.Spawn.BaseIntervalMS, interval)
	}
	if interval < g.cfg.Spawn.MinIntervalMS {
		t.Errorf("spawn interval fell through the floor: %d < %d",
			interval, g.cfg.Spawn.MinIntervalMS)
	}
}
