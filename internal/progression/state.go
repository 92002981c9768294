// Package progression holds the session-wide game state: budget, scores,
// XP and level, room and challenge completion, and the repair workbench.
// All mutation goes through the named Store operations; views only ever
// see immutable snapshots.
package progression

// MachineType identifies the kind of machine being rescued.
type MachineType string

const (
	MachineLaptop     MachineType = "laptop"
	MachineDesktop    MachineType = "desktop"
	MachineThinClient MachineType = "thin-client"
	MachineTablet     MachineType = "tablet"
)

// Difficulty is the tier of a room or challenge.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Impact describes what installing a repair component is worth.
type Impact struct {
	Environmental int // Environmental score points
	Money         int // Money saved (currency units)
	Lifespan      int // Extra years of machine life
}

// Component is a repair part with exactly one correct target slot.
type Component struct {
	ID         string
	Name       string
	Icon       rune
	TargetSlot string
	Cost       int
	Impact     Impact
}

// Room is a gated unit of content on the school map.
type Room struct {
	ID          string
	Name        string
	Difficulty  Difficulty
	Description string
	Machines    int
	Completed   bool
}

// ChallengeType selects which mini-game a challenge runs.
type ChallengeType string

const (
	ChallengeSpeed    ChallengeType = "speed"
	ChallengeAccuracy ChallengeType = "accuracy"
	ChallengeSurvival ChallengeType = "survival"
	ChallengePuzzle   ChallengeType = "puzzle"
)

// Challenge is a gated mini-game with a score threshold and an XP reward.
type Challenge struct {
	ID          string
	Name        string
	Type        ChallengeType
	Difficulty  Difficulty
	Description string
	TargetScore int
	TimeLimit   int // Seconds, 0 = untimed
	Reward      int // XP granted on first completion
	Completed   bool
}

// Scorecard groups the four thematic score tracks.
type Scorecard struct {
	Environmental int
	Money         int
	Autonomy      int
	Hardware      int
}

// State is one full snapshot of the progression aggregate.
// Snapshots returned by the store are deep copies: mutating one never
// affects the store or any other snapshot.
type State struct {
	Machine    MachineType
	SelectedOS string

	// Resources
	Budget          int
	MaxBudget       int
	ResistanceScore int

	// Leveling
	XP          int // XP within the current level
	Level       int
	XPToNext    int // Threshold to reach the next level
	ShowLevelUp bool

	// Catalogs
	Rooms      []Room
	Challenges []Challenge
	Components []Component

	// Session
	CurrentRoom      string
	CurrentChallenge string
	Placed           map[string]string // slot id -> component id
	Mistakes         int
	CurrentCombo     int
	MaxCombo         int

	// Shooter
	ShooterScore       int
	BloatwareDestroyed int

	// Derived monotonic totals
	TotalCarbonSaved int
	TotalMoneySaved  int

	Score Scorecard
}

// RoomUnlocked reports whether the room at the given index is playable.
// Index 0 is always unlocked; any other index requires its predecessor
// to be completed.
func (s State) RoomUnlocked(index int) bool {
	if index < 0 || index >= len(s.Rooms) {
		return false
	}
	if index == 0 {
		return true
	}
	return s.Rooms[index-1].Completed
}

// ChallengeUnlocked reports whether the challenge at the given index is
// playable, using the same predecessor gating as rooms.
func (s State) ChallengeUnlocked(index int) bool {
	if index < 0 || index >= len(s.Challenges) {
		return false
	}
	if index == 0 {
		return true
	}
	return s.Challenges[index-1].Completed
}

// ComponentByID looks up a component in the catalog.
func (s State) ComponentByID(id string) (Component, bool) {
	for _, c := range s.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// RoomByID looks up a room in the catalog.
func (s State) RoomByID(id string) (Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// ChallengeByID looks up a challenge in the catalog.
func (s State) ChallengeByID(id string) (Challenge, bool) {
	for _, c := range s.Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// clone returns a deep copy of the state.
func (s *State) clone() State {
	out := *s

	out.Rooms = make([]Room, len(s.Rooms))
	copy(out.Rooms, s.Rooms)

	out.Challenges = make([]Challenge, len(s.Challenges))
	copy(out.Challenges, s.Challenges)

	out.Components = make([]Component, len(s.Components))
	copy(out.Components, s.Components)

	out.Placed = make(map[string]string, len(s.Placed))
	for k, v := range s.Placed {
		out.Placed[k] = v
	}

	return out
}
