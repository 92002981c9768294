// Package puzzle implements the Master Builder challenge: every
// component must land somewhere, wrong slots are accepted but cost
// points. The board is full when all five slots hold something.
package puzzle

import (
	"fmt"

	"github.com/digiresist/reboot-arcade/internal/bench"
	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

// ChallengeID is the progression challenge this game reports into.
const ChallengeID = "master-builder"

const (
	correctPoints  = 40
	mistakePenalty = 10
)

// Game implements the master builder logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig

	phase      core.Phase
	board      *bench.Board
	target     int
	finalScore int
}

// New creates a new master builder instance bound to a progression
// session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "puzzle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Master Builder"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = core.PhaseNotStarted
	g.finalScore = 0

	g.session.SelectChallenge(ChallengeID)
	snap := g.session.Snapshot()
	g.board = bench.NewBoard(bench.Loose, snap.Components, progression.Slots())

	g.target = 0
	if ch, ok := snap.ChallengeByID(ChallengeID); ok {
		g.target = ch.TargetScore
	}
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
		if g.board.TryPlace() == bench.PlacementWrong {
			g.session.AddMistake()
			g.session.ResetCombo()
		}
	}

	if g.board.AllPlaced() {
		return g.finish()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) score() int {
	s := g.board.CorrectCount()*correctPoints - g.board.Mistakes()*mistakePenalty
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

// Render draws the component tray and the slot grid.
func (g *Game) Render(dst *core.Screen) {
	w := dst.Width()
	snap := g.session.Snapshot()

	dst.DrawText(2, 0, fmt.Sprintf(" Correct: %d  Mistakes: %d  Score: %d ",
		g.board.CorrectCount(), g.board.Mistakes(), g.score()))

	placed := make(map[string]bool)
	for _, s := range g.board.Slots() {
		if s.PlacedID != "" {
			placed[s.PlacedID] = true
		}
	}

	dst.DrawText(2, 2, "COMPONENTS")
	for i, item := range g.board.Items() {
		cursor := ' '
		if i == g.board.ItemCursor() {
			cursor = '>'
		}
		color := core.ColorDefault
		if placed[item.ID] {
			color = core.ColorGray
		}
		dst.DrawTextColored(2, 4+i*2, fmt.Sprintf("%c %c %s", cursor, item.Icon, item.Name), color)
	}

	slotX := w / 2
	dst.DrawText(slotX, 2, "SLOTS")
	for i, slot := range g.board.Slots() {
		cursor := ' '
		if i == g.board.SlotCursor() {
			cursor = '>'
		}
		content := "[empty]"
		color := core.ColorDefault
		if slot.PlacedID != "" {
			if c, ok := snap.ComponentByID(slot.PlacedID); ok {
				content = string(c.Icon) + " " + c.Name
				if c.TargetSlot == slot.ID {
					color = core.ColorGreen
				} else {
					color = core.ColorRed
				}
			}
		}
		dst.DrawTextColored(slotX, 4+i*2, fmt.Sprintf("%c %-12s %s", cursor, slot.Name, content), color)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("MASTER BUILDER", "Fill every slot. Press Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseCompleted:
		dst.DrawMessageBox("CHALLENGE COMPLETE", fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore))
	case core.PhaseFailed:
		dst.DrawMessageBox("NOT QUITE", fmt.Sprintf("Score: %d  |  Press R to retry", g.finalScore))
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
	registry.Register("puzzle", "Master Builder", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
