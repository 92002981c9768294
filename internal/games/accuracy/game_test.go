package accuracy

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
		Seed:     4242,
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

// plant replaces the live round with a known target under the crosshair.
func plant(g *Game, safe bool) {
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: g.crosshairX, Y: 40})
	g.currentSafe = safe
	g.roundActive = true
}

func TestShootingMalwareIsAHit(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.Step(core.NewInputFrame()) // spawns round 1
	plant(g, false)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.hits != 1 || g.misses != 0 {
		t.Errorf("expected 1 hit, got hits=%d misses=%d", g.hits, g.misses)
	}
	if store.Snapshot().BloatwareDestroyed != 1 {
		t.Errorf("malware kill should report to the session, got %d", store.Snapshot().BloatwareDestroyed)
	}
}

func TestShootingSafeSoftwareIsAMiss(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.Step(core.NewInputFrame())
	plant(g, true)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.misses != 1 || g.hits != 0 {
		t.Errorf("expected 1 miss, got hits=%d misses=%d", g.hits, g.misses)
	}
	if store.Snapshot().BloatwareDestroyed != 0 {
		t.Error("shooting good software is not a bloatware kill")
	}
}

func TestEscapedMalwareIsAMiss(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	g.Step(core.NewInputFrame())
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: 50, Y: 99, Speed: 5})
	g.currentSafe = false
	g.roundActive = true

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.misses != 1 {
		t.Errorf("escaped malware should count as a miss, got %d", g.misses)
	}
	if g.roundActive {
		t.Error("round should end when the target escapes")
	}
}

func TestRoundGapBeforeNextTarget(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	g.Step(core.NewInputFrame()) // round 1 spawns
	plant(g, false)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if g.roundActive {
		t.Fatal("round should end on the kill")
	}

	gap := falling.TicksFor(roundGapMS, testConfig().TickRate)
	for i := 0; i < gap; i++ {
		g.Step(core.NewInputFrame())
		if g.roundActive {
			t.Fatalf("round restarted %d ticks into the gap", i+1)
		}
	}

	g.Step(core.NewInputFrame())
	if !g.roundActive || g.round != 2 {
		t.Errorf("expected round 2 after the gap, got round=%d active=%v", g.round, g.roundActive)
	}
}

func TestSparedSafeSoftwareIsNotAMiss(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	g.Step(core.NewInputFrame())
	g.field.Clear()
	g.field.Add(falling.Entity{ID: 1, X: 50, Y: 99, Speed: 5})
	g.currentSafe = true
	g.roundActive = true

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.misses != 0 {
		t.Errorf("sparing good software is correct play, got %d misses", g.misses)
	}
}

func TestScoreFormulaAndFinish(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	// 7 hits, 1 miss: 7*50 - 20 = 330, above the 300 target
	g.hits = 7
	g.misses = 1
	g.round = rounds
	g.roundActive = false

	res := g.Step(core.NewInputFrame())

	if !res.Finished {
		t.Fatal("expected the finished report after the last round")
	}
	if res.FinalScore != 330 {
		t.Errorf("expected final score 330, got %d", res.FinalScore)
	}
	if g.phase != core.PhaseCompleted {
		t.Errorf("330 beats the 300 target, got %v", g.phase)
	}

	ch, _ := store.Snapshot().ChallengeByID(ChallengeID)
	if !ch.Completed {
		t.Error("sharpshooter challenge should be completed")
	}
}

func TestScoreNeverNegative(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	g.hits = 0
	g.misses = 10
	g.round = rounds
	g.roundActive = false

	res := g.Step(core.NewInputFrame())

	if res.FinalScore != 0 {
		t.Errorf("score floors at zero, got %d", res.FinalScore)
	}
	if g.phase != core.PhaseFailed {
		t.Errorf("zero score fails the challenge, got %v", g.phase)
	}
}

func TestTenRoundsPlayOut(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())
	startGame(t, g)

	// Never shoot: every round ends by escape
	for i := 0; i < 100000 && !g.phase.Terminal(); i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.phase.Terminal() {
		t.Fatal("game should finish after ten untouched rounds")
	}
	if g.round != rounds {
		t.Errorf("expected %d rounds, got %d", rounds, g.round)
	}
	if g.hits != 0 {
		t.Errorf("no shots fired, got %d hits", g.hits)
	}
}
