package falling

import "math/rand"

// SpawnerConfig controls where targets appear and how fast they fall.
type SpawnerConfig struct {
	Kinds []Kind

	// Speed = BaseSpeed + level*LevelFactor + uniform(0, Jitter).
	// Average speed strictly increases with level while individual
	// targets keep some variance.
	BaseSpeed   float64
	LevelFactor float64
	Jitter      float64

	// Horizontal band, kept away from the edges so targets are never
	// half off-screen.
	MinX float64
	MaxX float64

	// StartY is the vertical spawn position, above the visible field.
	StartY float64
}

// DefaultSpawnerConfig returns the tuning shared by the reflex games.
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Kinds:       BloatwareKinds(),
		BaseSpeed:   1.0,
		LevelFactor: 0.3,
		Jitter:      0.5,
		MinX:        10,
		MaxX:        90,
		StartY:      -10,
	}
}

// Spawner produces falling targets with seeded randomness so runs are
// reproducible.
type Spawner struct {
	cfg    SpawnerConfig
	rng    *rand.Rand
	nextID int
}

// NewSpawner creates a spawner from the given seed.
func NewSpawner(cfg SpawnerConfig, seed int64) *Spawner {
	return &Spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the RNG and restarts entity IDs, for a fresh session.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.nextID = 0
}

// Spawn creates one new target for the given difficulty level.
func (sp *Spawner) Spawn(level int) Entity {
	kind := sp.cfg.Kinds[sp.rng.Intn(len(sp.cfg.Kinds))]
	e := Entity{
		ID:    sp.nextID,
		X:     sp.cfg.MinX + sp.rng.Float64()*(sp.cfg.MaxX-sp.cfg.MinX),
		Y:     sp.cfg.StartY,
		Speed: sp.cfg.BaseSpeed + float64(level)*sp.cfg.LevelFactor + sp.rng.Float64()*sp.cfg.Jitter,
		Kind:  kind,
	}
	sp.nextID++
	return e
}
