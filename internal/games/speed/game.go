// Package speed implements the Speed Run challenge: seat three
// components in their slots before the clock runs out. The remaining
// time is the score.
package speed

import (
	"fmt"

	"github.com/digiresist/reboot-arcade/internal/bench"
	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

// ChallengeID is the progression challenge this game reports into.
const ChallengeID = "speed-run"

const (
	partsToPlace     = 3
	defaultTimeLimit = 60

	pointsPerSecond = 2
	clearBonus      = 50
)

// Game implements the speed run logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig

	phase core.Phase
	board *bench.Board

	timeLimit  int // seconds
	tickCount  int
	target     int
	finalScore int
}

// New creates a new speed run instance bound to a progression session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "speed"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Speed Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = core.PhaseNotStarted
	g.tickCount = 0
	g.finalScore = 0

	g.session.SelectChallenge(ChallengeID)
	snap := g.session.Snapshot()

	g.timeLimit = defaultTimeLimit
	g.target = 0
	if ch, ok := snap.ChallengeByID(ChallengeID); ok {
		if ch.TimeLimit > 0 {
			g.timeLimit = ch.TimeLimit
		}
		g.target = ch.TargetScore
	}

	// First three catalog components and only their matching slots.
	items := snap.Components
	if len(items) > partsToPlace {
		items = items[:partsToPlace]
	}
	wanted := make(map[string]bool, len(items))
	for _, item := range items {
		wanted[item.TargetSlot] = true
	}
	var slots []progression.Slot
	for _, s := range progression.Slots() {
		if wanted[s.ID] {
			slots = append(slots, s)
		}
	}
	g.board = bench.NewBoard(bench.Strict, items, slots)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if g.phase == core.PhaseNotStarted {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
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
		g.board.PrevItem()
	}
	if in.Has(core.ActionRight) {
		g.board.NextItem()
	}
	if in.Has(core.ActionUp) {
		g.board.PrevSlot()
	}
	if in.Has(core.ActionDown) {
		g.board.NextSlot()
	}
	if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
		if g.board.TryPlace() == bench.PlacementRejected {
			g.session.AddMistake()
		}
	}

	if g.board.AllItemsPlaced() {
		g.finalScore = g.timeLeft()*pointsPerSecond + clearBonus
		g.phase = core.PhaseCompleted
		g.session.CompleteChallenge(ChallengeID, g.finalScore)
		return core.StepResult{State: g.State(), Finished: true, FinalScore: g.finalScore}
	}
	if g.timeLeft() <= 0 {
		g.finalScore = 0
		g.phase = core.PhaseFailed
		return core.StepResult{State: g.State(), Finished: true, FinalScore: 0}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) timeLeft() int {
	return g.timeLimit - g.tickCount/g.runtime.TickRate
}

// Render draws the timer and the placement board.
func (g *Game) Render(dst *core.Screen) {
	w := dst.Width()

	left := g.timeLeft()
	color := core.ColorGreen
	if left <= 10 {
		color = core.ColorRed
	}
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Time: %2ds  Placed: %d/%d  Mistakes: %d ",
		left, g.board.PlacedCount(), partsToPlace, g.board.Mistakes()), color)

	dst.DrawText(2, 2, "PARTS")
	for i, item := range g.board.Items() {
		cursor := ' '
		if i == g.board.ItemCursor() {
			cursor = '>'
		}
		dst.DrawText(2, 4+i*2, fmt.Sprintf("%c %c %s", cursor, item.Icon, item.Name))
	}

	slotX := w / 2
	dst.DrawText(slotX, 2, "SLOTS")
	for i, slot := range g.board.Slots() {
		cursor := ' '
		if i == g.board.SlotCursor() {
			cursor = '>'
		}
		content := "[empty]"
		clr := core.ColorDefault
		if slot.PlacedID != "" {
			content = "[done]"
			clr = core.ColorGreen
		}
		dst.DrawTextColored(slotX, 4+i*2, fmt.Sprintf("%c %-12s %s", cursor, slot.Name, content), clr)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("SPEED RUN", fmt.Sprintf("Place %d parts in %ds. Press Enter", partsToPlace, g.timeLimit))
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseCompleted:
		dst.DrawMessageBox("CLEAR", fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore))
	case core.PhaseFailed:
		dst.DrawMessageBox("TIME UP", "Press R to retry")
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.finalScore,
	}
}

func init() {
	registry.Register("speed", "Speed Run", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
