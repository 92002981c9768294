package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
	"github.com/digiresist/reboot-arcade/internal/storage"
)

// levelUpBannerSeconds is how long the level-up banner stays on screen
// before it is acknowledged automatically.
const levelUpBannerSeconds = 3

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	session    *progression.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	finalScore int
	bannerAge  int // Ticks the level-up banner has been visible
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, session *progression.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		session:    session,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.backToMenu = true
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.Phase.Terminal() {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse translates a left click into an aimed fire at the clicked
// cell, converted to normalized field coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	fx := core.CellToField(msg.X, m.config.ScreenW)
	fy := core.CellToField(msg.Y, m.config.ScreenH)
	m.inputFrame.SetClick(fx, fy)

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	if !m.gameState.Phase.Terminal() {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Phase.Terminal() {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.finalScore = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on the finishing tick (once)
	if result.Finished && !m.scoreSaved {
		m.finalScore = result.FinalScore
		if m.store != nil && result.FinalScore > 0 {
			outcome := storage.OutcomeCompleted
			if m.gameState.Phase == core.PhaseFailed {
				outcome = storage.OutcomeFailed
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), result.FinalScore, outcome)
		}
		m.scoreSaved = true
	}

	// Auto-acknowledge the level-up banner after it has been shown
	if m.session != nil && m.session.Snapshot().ShowLevelUp {
		m.bannerAge++
		if m.bannerAge >= levelUpBannerSeconds*m.config.TickRate {
			m.session.AcknowledgeLevelUp()
			m.bannerAge = 0
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)
	m.drawOverlays()

	return RenderScreen(m.screen)
}

// drawOverlays adds the progression footer and the level-up banner on
// top of whatever the game rendered.
func (m Model) drawOverlays() {
	if m.session == nil {
		return
	}
	snap := m.session.Snapshot()

	footer := fmt.Sprintf("LV %d  XP %d/%d  Budget $%d  Resistance %d",
		snap.Level, snap.XP, snap.XPToNext, snap.Budget, snap.ResistanceScore)
	y := m.screen.Height() - 1
	if y >= 0 {
		m.screen.DrawTextColored(1, y, footer, core.ColorGray)
	}

	if snap.ShowLevelUp {
		banner := fmt.Sprintf("  LEVEL UP! You are now level %d  ", snap.Level)
		x := (m.screen.Width() - len(banner)) / 2
		m.screen.DrawTextColored(x, 1, banner, core.ColorBrightYellow)
	}
}

// BackToMenu reports whether the player exited the game back to the menu
// rather than quitting the whole program.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game session.
func Run(game registry.Game, store *storage.Store, session *progression.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to aim
	)

	_, err := p.Run()
	return err
}
