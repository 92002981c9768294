// Package accuracy implements the Sharpshooter challenge: ten rounds of
// single falling targets, some malware and some legitimate software.
// Shoot the malware, spare the rest. Hits pay well, mistakes cost.
package accuracy

import (
	"fmt"
	"math/rand"

	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/falling"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

// ChallengeID is the progression challenge this game reports into.
const ChallengeID = "sharpshooter"

const (
	rounds        = 10
	hitPoints     = 50
	missPenalty   = 20
	safeShare     = 0.4 // fraction of rounds that drop legitimate software
	aimStep       = 2.5
	shotHalfWidth = 5.0
	clickRadius   = 6.0

	moveIntervalMS = 50
	roundGapMS     = 500 // breather between rounds

	cannonChar = '▲'
)

// safeKinds is the software the player must NOT shoot.
func safeKinds() []falling.Kind {
	return []falling.Kind{
		{Name: "LIBREOFFICE", Icon: '✓', Points: 0, Color: core.ColorGreen},
		{Name: "FIREFOX", Icon: '✓', Points: 0, Color: core.ColorGreen},
		{Name: "GIMP", Icon: '✓', Points: 0, Color: core.ColorGreen},
	}
}

// Game implements the sharpshooter logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig

	phase     core.Phase
	tickCount int

	round  int // 1-based, current round
	hits   int
	misses int
	target int

	currentSafe bool

	crosshairX float64

	field       *falling.Field
	malware     *falling.Spawner
	safe        *falling.Spawner
	rng         *rand.Rand
	moveCad     *falling.Cadence
	finalScore  int
	roundActive bool
	gapTicks    int
}

// New creates a new sharpshooter instance bound to a progression session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "accuracy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sharpshooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = core.PhaseNotStarted
	g.tickCount = 0
	g.round = 0
	g.hits = 0
	g.misses = 0
	g.finalScore = 0
	g.roundActive = false
	g.gapTicks = 0
	g.crosshairX = core.FieldMax / 2

	g.session.SelectChallenge(ChallengeID)
	g.target = 0
	if ch, ok := g.session.Snapshot().ChallengeByID(ChallengeID); ok {
		g.target = ch.TargetScore
	}

	malwareCfg := falling.DefaultSpawnerConfig()
	safeCfg := falling.DefaultSpawnerConfig()
	safeCfg.Kinds = safeKinds()

	if g.malware == nil {
		g.malware = falling.NewSpawner(malwareCfg, runtime.Seed)
		g.safe = falling.NewSpawner(safeCfg, runtime.Seed+1)
	} else {
		g.malware.Reset(runtime.Seed)
		g.safe.Reset(runtime.Seed + 1)
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed + 2))

	if g.field == nil {
		g.field = falling.NewField(falling.EscapeY)
	} else {
		g.field.Clear()
	}
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

	if !g.roundActive {
		if g.round >= rounds {
			return g.finish()
		}
		if g.gapTicks > 0 {
			g.gapTicks--
			return core.StepResult{State: g.State()}
		}
		g.startRound()
	}

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

	if g.moveCad.Tick() {
		if escaped := g.field.Advance(); len(escaped) > 0 {
			// Letting malware through is a miss; sparing good software
			// is exactly right.
			if g.currentSafe {
				g.session.IncrementCombo()
			} else {
				g.misses++
				g.session.ResetCombo()
			}
			g.endRound()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) startRound() {
	g.round++
	g.currentSafe = g.rng.Float64() < safeShare
	if g.currentSafe {
		g.field.Add(g.safe.Spawn(1))
	} else {
		g.field.Add(g.malware.Spawn(1))
	}
	g.roundActive = true
}

func (g *Game) resolveShot(hit falling.Entity, ok bool) {
	if !ok {
		return // whiffs only waste time here
	}
	if g.currentSafe {
		g.misses++
		g.session.ResetCombo()
	} else {
		g.hits++
		g.session.IncrementCombo()
		g.session.DestroyBloatware()
	}
	g.endRound()
}

func (g *Game) endRound() {
	g.roundActive = false
	g.gapTicks = falling.TicksFor(roundGapMS, g.runtime.TickRate)
}

func (g *Game) score() int {
	s := g.hits*hitPoints - g.misses*missPenalty
	if s < 0 {
		s = 0
	}
	return s
}

func (g *Game) finish() core.StepResult {
	g.finalScore = g.score()
	if g.target > 0 && g.finalScore >= g.target {
		g.phase = core.PhaseCompleted
	} else {
		g.phase = core.PhaseFailed
	}
	g.session.CompleteChallenge(ChallengeID, g.finalScore)
	return core.StepResult{State: g.State(), Finished: true, FinalScore: g.finalScore}
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

	dst.DrawText(2, 0, fmt.Sprintf(" Round: %d/%d  Hits: %d  Misses: %d  Score: %d ",
		g.round, rounds, g.hits, g.misses, g.score()))

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("SHARPSHOOTER", "Shoot malware, spare the green. Press Enter")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseCompleted:
		dst.DrawMessageBox("CHALLENGE COMPLETE", fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore))
	case core.PhaseFailed:
		dst.DrawMessageBox("TARGET MISSED", fmt.Sprintf("Score: %d  |  Press R to retry", g.finalScore))
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score(),
	}
}

func init() {
	registry.Register("accuracy", "Sharpshooter", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
