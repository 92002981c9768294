// Package workbench implements the repair bench: pick components from
// the tray, pay for them out of the session budget and seat them in the
// matching slot. Placing every component finishes the machine and
// completes the current room.
package workbench

import (
	"fmt"

	"github.com/digiresist/reboot-arcade/internal/bench"
	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
)

const (
	pointsPerInstall = 50
	mistakePenalty   = 10
	completionBonus  = 250
)

// Game implements the repair bench logic.
type Game struct {
	session *progression.Store
	runtime core.RuntimeConfig

	phase core.Phase
	board *bench.Board
	room  string

	message     string
	messageTTL  int
	installs    int
	finalScore  int
	tickCounter int
}

// New creates a new repair bench instance bound to a progression session.
func New(session *progression.Store) *Game {
	return &Game{session: session}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "workbench"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Repair Bench"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = core.PhaseNotStarted
	g.message = ""
	g.messageTTL = 0
	g.installs = 0
	g.finalScore = 0
	g.tickCounter = 0

	snap := g.session.Snapshot()
	g.board = bench.NewBoard(bench.Strict, snap.Components, progression.Slots())

	// The bench works on whichever room the session selected; default to
	// the first one still open.
	g.room = snap.CurrentRoom
	if g.room == "" {
		for _, r := range snap.Rooms {
			if !r.Completed {
				g.room = r.ID
				break
			}
		}
	}
	if snap.Machine == "" {
		g.session.SelectMachine(progression.MachineDesktop)
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

	g.tickCounter++
	if g.messageTTL > 0 {
		g.messageTTL--
		if g.messageTTL == 0 {
			g.message = ""
		}
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
		g.tryInstall()
	}

	if g.board.AllItemsPlaced() {
		return g.finish(true)
	}
	if g.stuck() {
		return g.finish(false)
	}

	return core.StepResult{State: g.State()}
}

// tryInstall pays for the selected component and seats it. The budget is
// charged only for installs that actually land.
func (g *Game) tryInstall() {
	item, ok := g.board.CurrentItem()
	if !ok {
		return
	}

	switch g.board.TryPlace() {
	case bench.PlacementCorrect:
		if !g.session.SpendBudget(item.Cost) {
			g.board.Unplace(item.ID)
			g.flash("Not enough budget for " + item.Name)
			return
		}
		g.session.PlaceComponent(item.ID, item.TargetSlot)
		g.installs++
		g.flash(item.Name + " installed")
	case bench.PlacementRejected:
		g.session.AddMistake()
		g.session.ResetCombo()
		g.flash("Wrong slot for " + item.Name)
	case bench.PlacementOccupied:
		g.flash("Slot already filled")
	}
}

// stuck reports whether the budget can no longer cover any remaining
// component. The machine cannot be finished from here.
func (g *Game) stuck() bool {
	budget := g.session.Snapshot().Budget
	placed := make(map[string]bool)
	for _, s := range g.board.Slots() {
		if s.PlacedID != "" {
			placed[s.PlacedID] = true
		}
	}
	remaining := false
	for _, item := range g.board.Items() {
		if placed[item.ID] {
			continue
		}
		remaining = true
		if item.Cost <= budget {
			return false
		}
	}
	return remaining
}

func (g *Game) finish(done bool) core.StepResult {
	g.finalScore = g.installs*pointsPerInstall - g.board.Mistakes()*mistakePenalty
	if done {
		g.finalScore += completionBonus
		g.phase = core.PhaseCompleted
		if g.room != "" {
			g.session.CompleteRoom(g.room)
		}
	} else {
		g.phase = core.PhaseFailed
	}
	if g.finalScore < 0 {
		g.finalScore = 0
	}
	return core.StepResult{State: g.State(), Finished: true, FinalScore: g.finalScore}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTTL = 2 * g.runtime.TickRate
}

// Render draws the bench: component tray on the left, machine slots on
// the right.
func (g *Game) Render(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()
	snap := g.session.Snapshot()

	dst.DrawText(2, 0, fmt.Sprintf(" Budget: %d/%d  Mistakes: %d ", snap.Budget, snap.MaxBudget, g.board.Mistakes()))

	placed := make(map[string]bool)
	for _, s := range g.board.Slots() {
		if s.PlacedID != "" {
			placed[s.PlacedID] = true
		}
	}

	// Tray
	dst.DrawText(2, 2, "COMPONENTS")
	for i, item := range g.board.Items() {
		y := 4 + i*2
		cursor := ' '
		if i == g.board.ItemCursor() {
			cursor = '>'
		}
		color := core.ColorDefault
		if placed[item.ID] {
			color = core.ColorGray
		}
		line := fmt.Sprintf("%c %c %-13s $%d", cursor, item.Icon, item.Name, item.Cost)
		dst.DrawTextColored(2, y, line, color)
	}

	// Slots
	slotX := w / 2
	dst.DrawText(slotX, 2, "MACHINE")
	for i, slot := range g.board.Slots() {
		y := 4 + i*2
		cursor := ' '
		if i == g.board.SlotCursor() {
			cursor = '>'
		}
		content := "[empty]"
		color := core.ColorDefault
		if slot.PlacedID != "" {
			if c, ok := snap.ComponentByID(slot.PlacedID); ok {
				content = string(c.Icon) + " " + c.Name
			}
			color = core.ColorGreen
		}
		dst.DrawTextColored(slotX, y, fmt.Sprintf("%c %-12s %s", cursor, slot.Name, content), color)
	}

	if g.message != "" {
		dst.DrawTextCentered(h-2, g.message)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox("REPAIR BENCH", "Fix the machine. Press Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseCompleted:
		dst.DrawMessageBox("MACHINE REPAIRED", fmt.Sprintf("Score: %d  |  Press R for another", g.finalScore))
	case core.PhaseFailed:
		dst.DrawMessageBox("OUT OF BUDGET", fmt.Sprintf("Score: %d  |  Press R to retry", g.finalScore))
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	score := g.finalScore
	if !g.phase.Terminal() {
		score = g.installs*pointsPerInstall - g.board.Mistakes()*mistakePenalty
		if score < 0 {
			score = 0
		}
	}
	return core.GameState{
		Phase: g.phase,
		Score: score,
	}
}

func init() {
	registry.Register("workbench", "Repair Bench", func(session *progression.Store) registry.Game {
		return New(session)
	})
}
