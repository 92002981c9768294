package progression

import "sync"

// Tuning holds the adjustable scoring constants. The combo divisor varies
// between mini-game variants (3 or 5 observed in play-testing), so it is
// configuration rather than a fixed rule.
type Tuning struct {
	ComboDivisor   int `yaml:"combo_divisor"`
	ComboBonusUnit int `yaml:"combo_bonus_unit"`
}

// DefaultTuning returns the standard scoring constants.
func DefaultTuning() Tuning {
	return Tuning{
		ComboDivisor:   5,
		ComboBonusUnit: 5,
	}
}

// Store is the single source of truth for one play session.
//
// Every operation is an atomic read-modify-write over the current state:
// callers never see a half-applied mutation, and operations that reject
// (insufficient budget, wrong slot, score below threshold) leave the state
// untouched and return false rather than erroring.
type Store struct {
	mu     sync.Mutex
	state  State
	tuning Tuning
}

// NewStore creates a session store with the seed catalogs and default
// tuning.
func NewStore() *Store {
	return NewStoreWithTuning(DefaultTuning())
}

// NewStoreWithTuning creates a session store with custom scoring constants.
func NewStoreWithTuning(t Tuning) *Store {
	if t.ComboDivisor <= 0 {
		t.ComboDivisor = DefaultTuning().ComboDivisor
	}
	if t.ComboBonusUnit <= 0 {
		t.ComboBonusUnit = DefaultTuning().ComboBonusUnit
	}
	return &Store{state: newInitialState(), tuning: t}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Reset restores the aggregate to the seed snapshot. The new state shares
// no mutable references with anything handed out before the reset.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newInitialState()
}

// SelectMachine records the machine chosen for this rescue.
func (s *Store) SelectMachine(m MachineType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Machine = m
}

// SelectOS records the chosen operating system and grants the fixed
// autonomy bonus. Choosing is always allowed; re-choosing overwrites.
func (s *Store) SelectOS(os string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedOS = os
	s.state.ResistanceScore += resistanceSelectOS
	s.state.Score.Autonomy += resistanceSelectOS
}

// SelectRoom records the room the player is working in.
func (s *Store) SelectRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentRoom = roomID
}

// SelectChallenge records the challenge the player is attempting.
func (s *Store) SelectChallenge(challengeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentChallenge = challengeID
}

// CompleteRoom marks a room completed and grants the resistance bonus.
// Completing an already-completed room is a no-op, so double invocation
// cannot double-grant.
func (s *Store) CompleteRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Rooms {
		if s.state.Rooms[i].ID != roomID {
			continue
		}
		if s.state.Rooms[i].Completed {
			return
		}
		s.state.Rooms[i].Completed = true
		s.state.ResistanceScore += resistanceCompleteRoom
		return
	}
}

// CompleteChallenge marks a challenge completed iff the score meets its
// target and it was not already completed, granting its XP reward exactly
// once. Returns true when the completion was applied.
func (s *Store) CompleteChallenge(challengeID string, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Challenges {
		c := &s.state.Challenges[i]
		if c.ID != challengeID {
			continue
		}
		if c.Completed || score < c.TargetScore {
			return false
		}
		c.Completed = true
		s.addXPLocked(c.Reward)
		return true
	}
	return false
}

// SpendBudget deducts the amount iff the budget covers it. On refusal
// nothing changes; the budget can never go negative.
func (s *Store) SpendBudget(amount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount < 0 || s.state.Budget < amount {
		return false
	}
	s.state.Budget -= amount
	return true
}

// PlaceComponent installs a component into a slot iff the slot is the
// component's declared target. A wrong slot (or unknown component) leaves
// placements untouched and returns false; the caller is responsible for
// recording the mistake and resetting the combo. Budget is likewise the
// caller's job: spend before placing.
//
// A correct placement updates the environmental and hardware scores, the
// derived savings totals, and extends the combo.
func (s *Store) PlaceComponent(componentID, slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	comp, ok := s.state.ComponentByID(componentID)
	if !ok || comp.TargetSlot != slotID {
		return false
	}

	s.state.Placed[slotID] = componentID
	s.state.Score.Environmental += comp.Impact.Environmental
	s.state.Score.Hardware = len(s.state.Placed) * hardwarePerPlacement
	s.state.TotalCarbonSaved += comp.Impact.Environmental * carbonPerImpact
	s.state.TotalMoneySaved += newMachineCost - comp.Cost
	s.incrementComboLocked()
	return true
}

// RemoveComponent takes a component back out of a slot.
func (s *Store) RemoveComponent(slotID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Placed, slotID)
	s.state.Score.Hardware = len(s.state.Placed) * hardwarePerPlacement
}

// AddMistake bumps the mistake counter.
func (s *Store) AddMistake() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Mistakes++
}

// AddResistance grants resistance points.
func (s *Store) AddResistance(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ResistanceScore += amount
}

// AddShooterScore adds points earned in the installer shooter.
func (s *Store) AddShooterScore(points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ShooterScore += points
}

// DestroyBloatware records one destroyed threat: small resistance grant
// plus a combo extension.
func (s *Store) DestroyBloatware() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.BloatwareDestroyed++
	s.state.ResistanceScore += resistanceDestroy
	s.incrementComboLocked()
}

// AddXP grants experience and applies as many level-ups as the grant
// covers. Crossing several thresholds in one call behaves exactly like
// granting the same XP in smaller pieces.
func (s *Store) AddXP(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addXPLocked(amount)
}

func (s *Store) addXPLocked(amount int) {
	if amount <= 0 {
		return
	}
	var gained int
	s.state.XP, s.state.Level, s.state.XPToNext, gained =
		applyXP(s.state.XP, s.state.Level, s.state.XPToNext, amount)
	if gained > 0 {
		s.state.ShowLevelUp = true
	}
}

// AcknowledgeLevelUp clears the level-up banner flag after the UI has
// shown it.
func (s *Store) AcknowledgeLevelUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ShowLevelUp = false
}

// IncrementCombo extends the streak and returns the bonus points this hit
// earns on top of its base reward: floor(streak/divisor) * bonusUnit,
// computed over the streak value before this hit.
func (s *Store) IncrementCombo() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incrementComboLocked()
}

func (s *Store) incrementComboLocked() int {
	bonus := s.state.CurrentCombo / s.tuning.ComboDivisor * s.tuning.ComboBonusUnit
	s.state.CurrentCombo++
	if s.state.CurrentCombo > s.state.MaxCombo {
		s.state.MaxCombo = s.state.CurrentCombo
	}
	return bonus
}

// ResetCombo drops the streak to zero. The session max is kept.
func (s *Store) ResetCombo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentCombo = 0
}

// Savings reports the derived end-of-run savings: a base grant per rescued
// machine, a bonus per placed component, a penalty per mistake, and the
// money not spent on replacement hardware.
func (s *Store) Savings() (carbon, money int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed := len(s.state.Placed)
	carbon = 250 + placed*50 - s.state.Mistakes*10

	money = 560
	for _, c := range s.state.Components {
		if s.state.Placed[c.TargetSlot] == c.ID {
			money -= c.Cost
		}
	}
	return carbon, money
}
