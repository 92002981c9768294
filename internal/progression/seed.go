package progression

// Seed data for a fresh session. Reset restores exactly this snapshot.

const (
	startingBudget = 150

	// Resistance grants per event
	resistanceSelectOS     = 30
	resistanceCompleteRoom = 50
	resistanceDestroy      = 5

	// Hardware score per placed component
	hardwarePerPlacement = 20

	// Derived-savings factors: each environmental point keeps carbon out
	// of the air, each repair avoids buying a new machine.
	carbonPerImpact = 5
	newMachineCost  = 600
)

func seedRooms() []Room {
	return []Room{
		{ID: "library", Name: "Library", Difficulty: DifficultyEasy, Description: "Fix 3 web-browsing PCs for quiet study", Machines: 3},
		{ID: "classroom", Name: "Classroom", Difficulty: DifficultyEasy, Description: "Set up student workstations", Machines: 4},
		{ID: "admin", Name: "Admin Office", Difficulty: DifficultyMedium, Description: "Secure systems for school records", Machines: 2},
		{ID: "teachers", Name: "Teachers Lounge", Difficulty: DifficultyMedium, Description: "Multimedia stations for lesson prep", Machines: 3},
		{ID: "lab", Name: "Computer Lab", Difficulty: DifficultyHard, Description: "High-performance machines for coding", Machines: 5},
	}
}

func seedChallenges() []Challenge {
	return []Challenge{
		{ID: "speed-run", Name: "Speed Run", Type: ChallengeSpeed, Difficulty: DifficultyEasy, Description: "Install all components before the clock runs out", TargetScore: 100, TimeLimit: 60, Reward: 100},
		{ID: "sharpshooter", Name: "Sharpshooter", Type: ChallengeAccuracy, Difficulty: DifficultyMedium, Description: "Hit only the malware, spare the good software", TargetScore: 300, Reward: 150},
		{ID: "survivor", Name: "Survivor", Type: ChallengeSurvival, Difficulty: DifficultyMedium, Description: "Destroy 20 bloatware threats on 3 lives", TargetScore: 200, Reward: 200},
		{ID: "master-builder", Name: "Master Builder", Type: ChallengePuzzle, Difficulty: DifficultyHard, Description: "Place every component in its correct slot", TargetScore: 150, Reward: 250},
	}
}

func seedComponents() []Component {
	return []Component{
		{ID: "ram", Name: "RAM Stick", Icon: '▤', TargetSlot: "ram-slot", Cost: 30, Impact: Impact{Environmental: 15, Money: 30, Lifespan: 2}},
		{ID: "ssd", Name: "SSD Drive", Icon: '▦', TargetSlot: "storage-slot", Cost: 50, Impact: Impact{Environmental: 20, Money: 50, Lifespan: 3}},
		{ID: "thermal", Name: "Thermal Paste", Icon: '≋', TargetSlot: "cpu-slot", Cost: 5, Impact: Impact{Environmental: 5, Money: 5, Lifespan: 1}},
		{ID: "wifi", Name: "WiFi Card", Icon: '≈', TargetSlot: "pcie-slot", Cost: 15, Impact: Impact{Environmental: 10, Money: 15, Lifespan: 2}},
		{ID: "battery", Name: "New Battery", Icon: '▮', TargetSlot: "battery-slot", Cost: 40, Impact: Impact{Environmental: 25, Money: 40, Lifespan: 2}},
	}
}

// Slot describes a placement target on the workbench.
type Slot struct {
	ID   string
	Name string
	Hint string
}

// Slots returns the workbench slot catalog, in display order.
func Slots() []Slot {
	return []Slot{
		{ID: "ram-slot", Name: "RAM Slot", Hint: "Memory goes here"},
		{ID: "storage-slot", Name: "SATA Port", Hint: "Storage drives connect here"},
		{ID: "cpu-slot", Name: "CPU Socket", Hint: "Apply thermal paste here"},
		{ID: "pcie-slot", Name: "PCIe Slot", Hint: "Expansion cards here"},
		{ID: "battery-slot", Name: "Battery Bay", Hint: "Power storage"},
	}
}

func newInitialState() State {
	return State{
		Budget:    startingBudget,
		MaxBudget: startingBudget,

		Level:    1,
		XPToNext: xpBaseThreshold,

		Rooms:      seedRooms(),
		Challenges: seedChallenges(),
		Components: seedComponents(),

		Placed: make(map[string]string),
	}
}
