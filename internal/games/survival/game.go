// Package survival implements the Survivor challenge: ever-faster
// bloatware waves on a fixed life pool. Reaching the challenge target
// score completes the run on the spot and banks the XP reward; running
// out of lives first fails it.
package survival

import (
	"fmt"

	"github.com/digiresist/reboot-arcade/internal/config"
	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/falling"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

// ChallengeID is the progression challenge this game reports into.
const ChallengeID = "survivor"

const (
	aimStep       = 2.5
	shotHalfWidth = 5.0
	clickRadius   = 6.0

	moveIntervalMS = 50

	cannonChar = '▲'
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the survival challenge logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig
	cfg     config.SurvivalConfig

	phase     core.Phase
	score     int
	lives     int
	kills     int
	tickCount int

	target int // challenge target score, from the catalog

	crosshairX float64

	field      *falling.Field
	spawner    *falling.Spawner
	combo      falling.Combo
	spawnCad   *falling.Cadence
	moveCad    *falling.Cadence
	difficulty *config.DifficultyManager
}

// New creates a new survival challenge instance bound to a progression
// session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "survival"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Survivor"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSurvival(configPath)
	if err != nil {
		cfg = config.DefaultSurvivalConfig()
	}
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.phase = core.PhaseNotStarted
	g.score = 0
	g.lives = cfg.Lives
	g.kills = 0
	g.tickCount = 0
	g.crosshairX = core.FieldMax / 2

	g.session.SelectChallenge(ChallengeID)
	g.target = 0
	if ch, ok := g.session.Snapshot().ChallengeByID(ChallengeID); ok {
		g.target = ch.TargetScore
	}

	spawnerCfg := falling.DefaultSpawnerConfig()
	spawnerCfg.BaseSpeed = cfg.Speed.Base
	spawnerCfg.LevelFactor = cfg.Speed.LevelFactor
	spawnerCfg.Jitter = cfg.Speed.Jitter

	if g.spawner == nil {
		g.spawner = falling.NewSpawner(spawnerCfg, runtime.Seed)
	} else {
		g.spawner.Reset(runtime.Seed)
	}
	if g.field == nil {
		g.field = falling.NewField(falling.EscapeY)
	} else {
		g.field.Clear()
	}

	g.combo = falling.NewCombo(cfg.Combo.ComboDivisor, cfg.Combo.ComboBonusUnit)
	g.spawnCad = falling.NewCadence(cfg.Spawn.IntervalMS(1), runtime.TickRate)
	g.moveCad = falling.NewCadence(moveIntervalMS, runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if g.phase == core.PhaseNotStarted {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) || in.Clicked {
			g.phase = core.PhaseRunning
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.phase == core.PhasePaused {
			g.phase = core.PhaseRunning
		} else {
			g.phase = core.PhasePaused
		}
	}
	if g.phase == core.PhasePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionLeft) {
		g.crosshairX = core.ClampF(g.crosshairX-aimStep, 0, core.FieldMax)
	}
	if in.Has(core.ActionRight) {
		g.crosshairX = core.ClampF(g.crosshairX+aimStep, 0, core.FieldMax)
	}

	if in.Clicked {
		g.resolveShot(g.field.ShootAt(in.ClickX, in.ClickY, clickRadius))
	} else if in.Has(core.ActionFire) {
		g.resolveShot(g.field.ShootColumn(g.crosshairX, shotHalfWidth))
	}

	// Waves accelerate over time, never below the configured floor.
	if g.spawnCad.Tick() {
		g.field.Add(g.spawner.Spawn(1))
		interval := g.difficulty.SpawnIntervalMS(
			g.cfg.Spawn.BaseIntervalMS, g.cfg.Spawn.MinIntervalMS, g.score, g.tickCount)
		g.spawnCad.SetEvery(falling.TicksFor(interval, g.runtime.TickRate))
	}

	if g.moveCad.Tick() {
		for range g.field.Advance() {
			g.lives--
			g.combo.RecordMiss()
			g.session.ResetCombo()
		}
	}

	if g.target > 0 && g.score >= g.target {
		return g.finish()
	}
	if g.lives <= 0 {
		g.lives = 0
		return g.finish()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) resolveShot(hit falling.Entity, ok bool) {
	if !ok {
		g.combo.RecordMiss()
		g.session.ResetCombo()
		return
	}
	g.kills++
	g.score += g.cfg.PointsPerKill + g.combo.RecordHit()
	g.session.DestroyBloatware()
}

// finish ends the run: completed when the challenge target was reached,
// failed otherwise. The challenge report is the one-shot path that banks
// the XP reward.
func (g *Game) finish() core.StepResult {
	if g.target > 0 && g.score >= g.target {
		g.phase = core.PhaseCompleted
	} else {
		g.phase = core.PhaseFailed
	}
	g.session.CompleteChallenge(ChallengeID, g.score)
	return core.StepResult{State: g.State(), Finished: true, FinalScore: g.score}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	for _, e := range g.field.Entities() {
		if e.Y < 0 {
			continue
		}
		x := core.FieldToCell(e.X, w)
		y := core.FieldToCell(e.Y, h-1)
		dst.SetColored(x, y, e.Kind.Icon, e.Kind.Color)
	}

	cannonX := core.FieldToCell(g.crosshairX, w)
	dst.SetColored(cannonX, h-2, cannonChar, core.ColorGreen)
	dst.DrawHLine(0, h-1, w, '═')

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d/%d  Lives: %d  Kills: %d ", g.score, g.target, g.lives, g.kills))
	if c := g.combo.Current(); c > 1 {
		dst.DrawTextColored(2, 1, fmt.Sprintf(" Combo x%d ", c), core.ColorYellow)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("SURVIVOR", fmt.Sprintf("Reach %d points. Press Enter to start", g.target))
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseCompleted:
		dst.DrawMessageBox("CHALLENGE COMPLETE", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case core.PhaseFailed:
		dst.DrawMessageBox("OVERRUN", fmt.Sprintf("Score: %d  |  Press R to retry", g.score))
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Lives: g.lives,
		Combo: g.combo.Current(),
	}
}

func init() {
	registry.Register("survival", "Survivor", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
