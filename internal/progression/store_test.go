package progression

import (
	"reflect"
	"testing"
)

func TestSpendBudgetNeverNegative(t *testing.T) {
	s := NewStore()

	spends := []struct {
		amount int
		want   bool
	}{
		{100, true},
		{100, false}, // only 50 left
		{50, true},
		{1, false},
		{0, true},
		{-10, false}, // refusing negative spends keeps the invariant total
	}

	for _, sp := range spends {
		got := s.SpendBudget(sp.amount)
		if got != sp.want {
			t.Errorf("SpendBudget(%d) = %v, want %v", sp.amount, got, sp.want)
		}
		snap := s.Snapshot()
		if snap.Budget < 0 {
			t.Fatalf("budget went negative: %d", snap.Budget)
		}
		if snap.Budget > snap.MaxBudget {
			t.Fatalf("budget %d exceeds max %d", snap.Budget, snap.MaxBudget)
		}
	}
}

func TestPlaceComponentCorrectSlot(t *testing.T) {
	s := NewStore()

	if !s.PlaceComponent("ram", "ram-slot") {
		t.Fatal("PlaceComponent(ram, ram-slot) should succeed")
	}

	snap := s.Snapshot()
	if snap.Placed["ram-slot"] != "ram" {
		t.Errorf("Placed[ram-slot] = %q, want ram", snap.Placed["ram-slot"])
	}
	if snap.Score.Environmental != 15 {
		t.Errorf("environmental score = %d, want 15", snap.Score.Environmental)
	}
	if snap.Score.Hardware != 20 {
		t.Errorf("hardware score = %d, want 20", snap.Score.Hardware)
	}
	if snap.TotalCarbonSaved != 75 {
		t.Errorf("carbon saved = %d, want 75", snap.TotalCarbonSaved)
	}
	if snap.TotalMoneySaved != 570 {
		t.Errorf("money saved = %d, want 570", snap.TotalMoneySaved)
	}
	if snap.CurrentCombo != 1 {
		t.Errorf("combo = %d, want 1", snap.CurrentCombo)
	}
}

func TestPlaceComponentWrongSlotNoMutation(t *testing.T) {
	s := NewStore()
	before := s.Snapshot()

	if s.PlaceComponent("ram", "cpu-slot") {
		t.Fatal("PlaceComponent(ram, cpu-slot) should fail")
	}
	if s.PlaceComponent("nonexistent", "ram-slot") {
		t.Fatal("PlaceComponent with unknown component should fail")
	}

	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("rejected placement mutated state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestAddXPAssociative(t *testing.T) {
	a := NewStore()
	a.AddXP(30)
	a.AddXP(70)

	b := NewStore()
	b.AddXP(100)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Level != sb.Level || sa.XP != sb.XP || sa.XPToNext != sb.XPToNext {
		t.Errorf("split grant (lvl %d, xp %d, next %d) != single grant (lvl %d, xp %d, next %d)",
			sa.Level, sa.XP, sa.XPToNext, sb.Level, sb.XP, sb.XPToNext)
	}
}

func TestAddXPMultiLevelCrossing(t *testing.T) {
	s := NewStore()
	s.AddXP(250)

	snap := s.Snapshot()
	// 250 consumes the 100 threshold (level 2, next 150), then the 150
	// threshold (level 3, next 225), with 0 left over.
	if snap.Level != 3 {
		t.Errorf("level = %d, want 3", snap.Level)
	}
	if snap.XP != 0 {
		t.Errorf("xp = %d, want 0", snap.XP)
	}
	if snap.XPToNext != 225 {
		t.Errorf("xpToNext = %d, want 225", snap.XPToNext)
	}
	if !snap.ShowLevelUp {
		t.Error("ShowLevelUp should be set after a level gain")
	}

	s.AcknowledgeLevelUp()
	if s.Snapshot().ShowLevelUp {
		t.Error("ShowLevelUp should clear after acknowledgement")
	}
}

func TestComboBonusAndReset(t *testing.T) {
	s := NewStore()

	// Bonus uses the streak value before the hit: first five hits earn
	// nothing extra, the sixth earns one bonus unit.
	wantBonus := []int{0, 0, 0, 0, 0, 5, 5, 5, 5, 5, 10}
	for i, want := range wantBonus {
		if got := s.IncrementCombo(); got != want {
			t.Errorf("hit %d: bonus = %d, want %d", i+1, got, want)
		}
	}

	snap := s.Snapshot()
	if snap.CurrentCombo != 11 || snap.MaxCombo != 11 {
		t.Fatalf("combo = %d/%d, want 11/11", snap.CurrentCombo, snap.MaxCombo)
	}

	s.ResetCombo()
	snap = s.Snapshot()
	if snap.CurrentCombo != 0 {
		t.Errorf("combo after reset = %d, want 0", snap.CurrentCombo)
	}
	if snap.MaxCombo != 11 {
		t.Errorf("max combo after reset = %d, want 11", snap.MaxCombo)
	}
}

func TestComboDivisorTuning(t *testing.T) {
	s := NewStoreWithTuning(Tuning{ComboDivisor: 3, ComboBonusUnit: 5})
	var bonuses []int
	for i := 0; i < 7; i++ {
		bonuses = append(bonuses, s.IncrementCombo())
	}
	want := []int{0, 0, 0, 5, 5, 5, 10}
	if !reflect.DeepEqual(bonuses, want) {
		t.Errorf("bonuses = %v, want %v", bonuses, want)
	}
}

func TestRoomUnlockGating(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	if len(snap.Rooms) != 5 {
		t.Fatalf("expected 5 rooms, got %d", len(snap.Rooms))
	}

	cases := []struct {
		completed []bool
		unlocked  []bool
	}{
		{[]bool{false, false, false, false, false}, []bool{true, false, false, false, false}},
		{[]bool{true, false, false, false, false}, []bool{true, true, false, false, false}},
		{[]bool{true, true, true, false, false}, []bool{true, true, true, true, false}},
		// Holes in the pattern gate on the immediate predecessor only.
		{[]bool{false, true, false, true, false}, []bool{true, false, true, false, true}},
		{[]bool{true, true, true, true, true}, []bool{true, true, true, true, true}},
	}

	for ci, c := range cases {
		st := snap.clone()
		for i, done := range c.completed {
			st.Rooms[i].Completed = done
		}
		for i, want := range c.unlocked {
			if got := st.RoomUnlocked(i); got != want {
				t.Errorf("case %d: RoomUnlocked(%d) = %v, want %v", ci, i, got, want)
			}
		}
	}

	if snap.RoomUnlocked(-1) || snap.RoomUnlocked(5) {
		t.Error("out-of-range rooms must be locked")
	}
}

func TestChallengeUnlockGating(t *testing.T) {
	s := NewStore()

	// Complete only the first challenge: the second unlocks, rest stay locked.
	first := s.Snapshot().Challenges[0]
	if !s.CompleteChallenge(first.ID, first.TargetScore) {
		t.Fatalf("completing %s with exact target score should succeed", first.ID)
	}

	snap := s.Snapshot()
	want := []bool{true, true, false, false}
	for i, w := range want {
		if got := snap.ChallengeUnlocked(i); got != w {
			t.Errorf("ChallengeUnlocked(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestCompleteChallengeThresholdAndOnce(t *testing.T) {
	s := NewStore()
	ch := s.Snapshot().Challenges[0]

	if s.CompleteChallenge(ch.ID, ch.TargetScore-1) {
		t.Fatal("score below target must not complete")
	}
	if s.Snapshot().Challenges[0].Completed {
		t.Fatal("challenge marked completed despite low score")
	}

	if !s.CompleteChallenge(ch.ID, ch.TargetScore) {
		t.Fatal("score at target should complete")
	}
	xpAfterFirst := s.Snapshot()

	// Second completion is refused and grants nothing.
	if s.CompleteChallenge(ch.ID, ch.TargetScore*10) {
		t.Fatal("re-completing must be refused")
	}
	again := s.Snapshot()
	if again.Level != xpAfterFirst.Level || again.XP != xpAfterFirst.XP {
		t.Errorf("re-completion changed XP state: %+v vs %+v",
			again.Level, xpAfterFirst.Level)
	}
}

func TestCompleteRoomIdempotent(t *testing.T) {
	s := NewStore()

	s.CompleteRoom("library")
	once := s.Snapshot()
	if !once.Rooms[0].Completed {
		t.Fatal("library should be completed")
	}
	if once.ResistanceScore != 50 {
		t.Fatalf("resistance = %d, want 50", once.ResistanceScore)
	}

	s.CompleteRoom("library")
	twice := s.Snapshot()
	if twice.ResistanceScore != 50 {
		t.Errorf("re-completion double-granted: resistance = %d", twice.ResistanceScore)
	}

	// Unknown room is a no-op.
	s.CompleteRoom("cafeteria")
	if s.Snapshot().ResistanceScore != 50 {
		t.Error("unknown room changed state")
	}
}

func TestSelectOSGrantsAutonomy(t *testing.T) {
	s := NewStore()
	s.SelectOS("Linux Mint")

	snap := s.Snapshot()
	if snap.SelectedOS != "Linux Mint" {
		t.Errorf("SelectedOS = %q", snap.SelectedOS)
	}
	if snap.Score.Autonomy != 30 || snap.ResistanceScore != 30 {
		t.Errorf("autonomy/resistance = %d/%d, want 30/30",
			snap.Score.Autonomy, snap.ResistanceScore)
	}
}

func TestDestroyBloatware(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		s.DestroyBloatware()
	}

	snap := s.Snapshot()
	if snap.BloatwareDestroyed != 3 {
		t.Errorf("destroyed = %d, want 3", snap.BloatwareDestroyed)
	}
	if snap.ResistanceScore != 15 {
		t.Errorf("resistance = %d, want 15", snap.ResistanceScore)
	}
	if snap.CurrentCombo != 3 {
		t.Errorf("combo = %d, want 3", snap.CurrentCombo)
	}
}

func TestResetRestoresSeedSnapshot(t *testing.T) {
	s := NewStore()
	pristine := s.Snapshot()

	// Dirty every corner of the state.
	s.SelectMachine(MachineLaptop)
	s.SelectOS("Debian")
	s.SelectRoom("library")
	s.SpendBudget(80)
	s.PlaceComponent("ram", "ram-slot")
	s.AddMistake()
	s.AddXP(500)
	s.CompleteRoom("library")
	s.CompleteChallenge("speed-run", 1000)
	s.DestroyBloatware()
	s.AddShooterScore(40)

	s.Reset()
	fresh := s.Snapshot()

	if !reflect.DeepEqual(pristine, fresh) {
		t.Errorf("reset state differs from seed:\nseed  %+v\nfresh %+v", pristine, fresh)
	}

	// The reset state must be deep-independent of older snapshots.
	fresh.Placed["ram-slot"] = "ram"
	fresh.Rooms[0].Completed = true
	if len(s.Snapshot().Placed) != 0 {
		t.Error("mutating a snapshot leaked into the store")
	}
	if s.Snapshot().Rooms[0].Completed {
		t.Error("mutating a snapshot's rooms leaked into the store")
	}
}

func TestWorkbenchBudgetScenario(t *testing.T) {
	// Budget 150, component costing 200: the spend is refused, so the
	// placement must never even be attempted.
	s := NewStore()

	const overpricedCost = 200
	if s.SpendBudget(overpricedCost) {
		t.Fatal("spend above budget should be refused")
	}
	snap := s.Snapshot()
	if snap.Budget != 150 {
		t.Errorf("budget = %d, want 150", snap.Budget)
	}
	if len(snap.Placed) != 0 {
		t.Errorf("nothing should be placed, got %v", snap.Placed)
	}
}

func TestSavings(t *testing.T) {
	s := NewStore()
	s.PlaceComponent("ram", "ram-slot")
	s.PlaceComponent("ssd", "storage-slot")
	s.AddMistake()

	carbon, money := s.Savings()
	if carbon != 250+2*50-10 {
		t.Errorf("carbon = %d, want %d", carbon, 250+2*50-10)
	}
	if money != 560-30-50 {
		t.Errorf("money = %d, want %d", money, 560-30-50)
	}
}

// Catalog lookups work straight off the Snapshot() return value.
func TestSnapshotCatalogLookups(t *testing.T) {
	s := NewStore()

	if c, ok := s.Snapshot().ComponentByID("ram"); !ok || c.TargetSlot != "ram-slot" {
		t.Errorf("ComponentByID(ram) = %+v, %v", c, ok)
	}
	if r, ok := s.Snapshot().RoomByID("library"); !ok || r.Completed {
		t.Errorf("RoomByID(library) = %+v, %v", r, ok)
	}
	if ch, ok := s.Snapshot().ChallengeByID("survivor"); !ok || ch.TargetScore != 200 {
		t.Errorf("ChallengeByID(survivor) = %+v, %v", ch, ok)
	}
	if _, ok := s.Snapshot().ComponentByID("floppy"); ok {
		t.Error("unknown component id should not resolve")
	}
}
