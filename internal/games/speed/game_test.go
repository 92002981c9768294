package speed

import (
	"testing"

	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/progression"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
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

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func TestBoardUsesThreeParts(t *testing.T) {
	g := New(progression.NewStore())
	g.Reset(testConfig())

	if len(g.board.Items()) != partsToPlace {
		t.Errorf("expected %d parts, got %d", partsToPlace, len(g.board.Items()))
	}
	if len(g.board.Slots()) != partsToPlace {
		t.Errorf("expected %d slots, got %d", partsToPlace, len(g.board.Slots()))
	}
	// Every part's target must be on the board
	slots := make(map[string]bool)
	for _, s := range g.board.Slots() {
		slots[s.ID] = true
	}
	for _, item := range g.board.Items() {
		if !slots[item.TargetSlot] {
			t.Errorf("part %s has no slot on the board", item.ID)
		}
	}
}

func TestFastClearScoresAndCompletesChallenge(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	// Catalog order aligns parts and slots index for index
	var res core.StepResult
	for i := 0; i < partsToPlace; i++ {
		res = press(g, core.ActionFire)
		if res.Finished {
			break
		}
		press(g, core.ActionDown)
	}

	if g.phase != core.PhaseCompleted {
		t.Fatalf("expected completed run, got %v", g.phase)
	}
	// Under a second elapsed: full 60s left, 60*2+50
	if res.FinalScore != 170 {
		t.Errorf("expected final score 170, got %d", res.FinalScore)
	}

	snap := store.Snapshot()
	ch, _ := snap.ChallengeByID(ChallengeID)
	if !ch.Completed {
		t.Error("speed-run challenge should complete at 170 points")
	}
	// Reward is 100 XP, exactly one level threshold
	if snap.Level != 2 || snap.XP != 0 {
		t.Errorf("expected level 2 with 0 XP, got level %d XP %d", snap.Level, snap.XP)
	}
	if !snap.ShowLevelUp {
		t.Error("level-up flag should be raised")
	}
}

func TestTimeoutFails(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	g.tickCount = g.timeLimit*60 - 1
	res := g.Step(core.NewInputFrame())

	if g.phase != core.PhaseFailed {
		t.Errorf("expected failed run on timeout, got %v", g.phase)
	}
	if !res.Finished || res.FinalScore != 0 {
		t.Errorf("timeout reports a zero final score once, got %+v", res)
	}

	ch, _ := store.Snapshot().ChallengeByID(ChallengeID)
	if ch.Completed {
		t.Error("timed-out run must not complete the challenge")
	}
}

func TestWrongSlotRecordsMistake(t *testing.T) {
	store := progression.NewStore()
	g := New(store)
	g.Reset(testConfig())
	startGame(t, g)

	press(g, core.ActionDown)
	press(g, core.ActionFire)

	if store.Snapshot().Mistakes != 1 {
		t.Errorf("expected 1 session mistake, got %d", store.Snapshot().Mistakes)
	}
	if g.board.Slots()[1].PlacedID != "" {
		t.Error("strict board rejects wrong placements")
	}
}
