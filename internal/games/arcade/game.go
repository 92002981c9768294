// Package arcade implements Arcade Mode: bloatware rains from the top of
// the screen and the player destroys it with an aimed cannon before it
// reaches the machines below. Score-attack rules: three lives, the level
// rises with score, and a hit streak pays bonus points.
package arcade

import (
	"fmt"

	"github.com/digiresist/reboot-arcade/internal/config"
	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/falling"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

const (
	// Crosshair movement per tick while a direction is held, in field
	// units.
	aimStep = 2.5

	// Horizontal tolerance of the cannon shot and radius of an aimed
	// click, in field units.
	shotHalfWidth = 5.0
	clickRadius   = 6.0

	// Movement cadence shared by the reflex games.
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
		difficultyPreset = "" // Use config default
	}
}

// Game implements the Arcade Mode logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig
	cfg     config.ArcadeConfig

	phase     core.Phase
	score     int
	lives     int
	level     int
	tickCount int

	crosshairX float64

	field    *falling.Field
	spawner  *falling.Spawner
	combo    falling.Combo
	spawnCad *falling.Cadence
	moveCad  *falling.Cadence
}

// New creates a new Arcade Mode instance bound to a progression session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arcade"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bloatware Blaster"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadArcade(configPath)
	if err != nil {
		cfg = config.DefaultArcadeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArcadePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.phase = core.PhaseNotStarted
	g.score = 0
	g.lives = cfg.Lives
	g.level = 1
	g.tickCount = 0
	g.crosshairX = core.FieldMax / 2

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
	g.spawnCad = falling.NewCadence(cfg.Spawn.IntervalMS(g.level), runtime.TickRate)
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

	// Aim
	if in.Has(core.ActionLeft) {
		g.crosshairX = core.ClampF(g.crosshairX-aimStep, 0, core.FieldMax)
	}
	if in.Has(core.ActionRight) {
		g.crosshairX = core.ClampF(g.crosshairX+aimStep, 0, core.FieldMax)
	}

	// Shoot
	if in.Clicked {
		g.resolveShot(g.field.ShootAt(in.ClickX, in.ClickY, clickRadius))
	} else if in.Has(core.ActionFire) {
		g.resolveShot(g.field.ShootColumn(g.crosshairX, shotHalfWidth))
	}

	// Spawn
	if g.spawnCad.Tick() {
		g.field.Add(g.spawner.Spawn(g.level))
	}

	// Fall
	if g.moveCad.Tick() {
		for range g.field.Advance() {
			g.lives--
			g.combo.RecordMiss()
			g.session.ResetCombo()
		}
	}

	// Level rises with score; spawns speed up to the configured floor.
	if lvl := g.score/g.cfg.LevelEvery + 1; lvl != g.level {
		g.level = lvl
		g.spawnCad.SetEvery(falling.TicksFor(g.cfg.Spawn.IntervalMS(lvl), g.runtime.TickRate))
	}

	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseFailed
		g.session.AddXP(g.score / 10)
		return core.StepResult{State: g.State(), Finished: true, FinalScore: g.score}
	}

	return core.StepResult{State: g.State()}
}

// resolveShot applies a shot outcome: points and combo on a hit, streak
// reset on a whiff.
func (g *Game) resolveShot(hit falling.Entity, ok bool) {
	if !ok {
		g.combo.RecordMiss()
		g.session.ResetCombo()
		return
	}
	g.score += hit.Kind.Points + g.combo.RecordHit()
	g.session.DestroyBloatware()
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	// Targets
	for _, e := range g.field.Entities() {
		if e.Y < 0 {
			continue
		}
		x := core.FieldToCell(e.X, w)
		y := core.FieldToCell(e.Y, h-1)
		dst.SetColored(x, y, e.Kind.Icon, e.Kind.Color)
	}

	// Cannon
	cannonX := core.FieldToCell(g.crosshairX, w)
	dst.SetColored(cannonX, h-2, cannonChar, core.ColorGreen)
	dst.DrawHLine(0, h-1, w, '═')

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Lives: %d  Level: %d ", g.score, g.lives, g.level))
	if c := g.combo.Current(); c > 1 {
		dst.DrawTextColored(2, 1, fmt.Sprintf(" Combo x%d ", c), core.ColorYellow)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("BLOATWARE BLASTER", "Press Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseFailed:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
		Combo: g.combo.Current(),
	}
}

func init() {
	registry.Register("arcade", "Bloatware Blaster", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
