// Package shooter implements the Linux installer defense: an install bar
// fills while bloatware falls toward the install disk. Every threat that
// reaches the disk rolls the bar back. The session completes when the
// bar is full and fails if the time limit expires first.
package shooter

import (
	"fmt"

	"github.com/digiresist/reboot-arcade/internal/config"
	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/falling"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

const (
	aimStep       = 2.5
	shotHalfWidth = 5.0
	clickRadius   = 6.0

	moveIntervalMS = 50

	fullProgress = 100.0
	cannonChar   = '▲'
	diskChar     = '▒'
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

// Game implements the installer shooter logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig

	phase     core.Phase
	score     int
	tickCount int

	// progress is the install bar, 0-100. It fills at a fixed rate per
	// tick and loses cfg.Penalty per escaped threat.
	progress float64
	fillRate float64

	crosshairX float64

	field    *falling.Field
	spawner  *falling.Spawner
	combo    falling.Combo
	spawnCad *falling.Cadence
	moveCad  *falling.Cadence
}

// New creates a new installer shooter instance bound to a progression
// session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Linux Installer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.phase = core.PhaseNotStarted
	g.score = 0
	g.tickCount = 0
	g.progress = 0
	g.fillRate = fullProgress / float64(cfg.InstallSeconds*runtime.TickRate)
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
		g.field = falling.NewField(cfg.EscapeY)
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
	g.progress += g.fillRate

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

	if g.spawnCad.Tick() {
		g.field.Add(g.spawner.Spawn(1))
	}

	if g.moveCad.Tick() {
		for range g.field.Advance() {
			g.progress -= g.cfg.Penalty
			if g.progress < 0 {
				g.progress = 0
			}
			g.combo.RecordMiss()
			g.session.ResetCombo()
		}
	}

	if g.progress >= fullProgress {
		g.progress = fullProgress
		g.phase = core.PhaseCompleted
		// A finished install puts Linux on the machine. Replays keep the
		// first selection's bonus from stacking.
		if g.session.Snapshot().SelectedOS == "" {
			g.session.SelectOS("linux")
		}
		return core.StepResult{State: g.State(), Finished: true, FinalScore: g.score}
	}
	if g.tickCount >= g.cfg.TimeLimitSeconds*g.runtime.TickRate {
		g.phase = core.PhaseFailed
		return core.StepResult{State: g.State(), Finished: true, FinalScore: g.score}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) resolveShot(hit falling.Entity, ok bool) {
	if !ok {
		g.combo.RecordMiss()
		g.session.ResetCombo()
		return
	}
	g.score += hit.Kind.Points + g.combo.RecordHit()
	g.session.AddShooterScore(hit.Kind.Points)
	g.session.DestroyBloatware()
}

// Progress returns the install bar value, 0-100.
func (g *Game) Progress() float64 {
	return g.progress
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
		y := core.FieldToCell(e.Y, h-2)
		dst.SetColored(x, y, e.Kind.Icon, e.Kind.Color)
	}

	// Install disk line the threats are falling toward
	diskY := core.FieldToCell(g.cfg.EscapeY, h-2)
	dst.DrawHLine(0, diskY+1, w, diskChar)

	cannonX := core.FieldToCell(g.crosshairX, w)
	dst.SetColored(cannonX, diskY, cannonChar, core.ColorGreen)

	// Install bar across the bottom row
	filled := int(g.progress / fullProgress * float64(w-12))
	bar := make([]rune, 0, w)
	for i := 0; i < w-12; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	dst.DrawTextColored(1, h-1, string(bar), core.ColorGreen)
	dst.DrawText(w-10, h-1, fmt.Sprintf("%3.0f%%", g.progress))

	timeLeft := g.cfg.TimeLimitSeconds - g.tickCount/g.runtime.TickRate
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Time: %ds ", g.score, timeLeft))
	if c := g.combo.Current(); c > 1 {
		dst.DrawTextColored(2, 1, fmt.Sprintf(" Combo x%d ", c), core.ColorYellow)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("LINUX INSTALLER", "Defend the install! Press Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseCompleted:
		dst.DrawMessageBox("INSTALL COMPLETE", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case core.PhaseFailed:
		dst.DrawMessageBox("INSTALL FAILED", fmt.Sprintf("Score: %d  |  Press R to retry", g.score))
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Combo: g.combo.Current(),
	}
}

func init() {
	registry.Register("shooter", "Linux Installer", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
