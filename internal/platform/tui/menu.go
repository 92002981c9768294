package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digiresist/reboot-arcade/internal/core"
	"github.com/digiresist/reboot-arcade/internal/progression"
	"github.com/digiresist/reboot-arcade/internal/registry"
	"github.com/digiresist/reboot-arcade/internal/storage"
)

// menuOrder fixes the presentation order: story modes first, then the
// challenge ladder in its unlock order. Registered games not listed here
// are appended after, sorted by ID.
var menuOrder = []string{"arcade", "shooter", "workbench", "speed", "accuracy", "survival", "puzzle"}

// gameChallenges maps challenge-bound game IDs to the challenge that
// gates them. Games absent from this map are always playable.
var gameChallenges = map[string]string{
	"speed":    "speed-run",
	"accuracy": "sharpshooter",
	"survival": "survivor",
	"puzzle":   "master-builder",
}

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Locked bool
	Hint   string // Shown for locked items
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	session        *progression.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Challenge games are shown but
// locked until their predecessor challenge has been completed.
func NewMenuModel(store *storage.Store, session *progression.Store, cfg core.RuntimeConfig) MenuModel {
	snap := session.Snapshot()

	return MenuModel{
		items:     buildMenuItems(snap),
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		session:   session,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// buildMenuItems assembles the menu from the game registry, applying
// challenge gating from the progression snapshot.
func buildMenuItems(snap progression.State) []MenuItem {
	registered := registry.List()
	byID := make(map[string]registry.GameInfo, len(registered))
	for _, g := range registered {
		byID[g.ID] = g
	}

	ids := make([]string, 0, len(registered))
	seen := make(map[string]bool, len(registered))
	for _, id := range menuOrder {
		if _, ok := byID[id]; ok {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	for _, g := range registered {
		if !seen[g.ID] {
			ids = append(ids, g.ID)
		}
	}

	items := make([]MenuItem, 0, len(ids))
	for _, id := range ids {
		item := MenuItem{GameID: id, Title: byID[id].Title}
		if chID, gated := gameChallenges[id]; gated {
			idx := challengeIndex(snap, chID)
			if idx >= 0 && !snap.ChallengeUnlocked(idx) {
				item.Locked = true
				if idx > 0 {
					item.Hint = fmt.Sprintf("complete %s first", snap.Challenges[idx-1].Name)
				}
			}
		}
		items = append(items, item)
	}
	return items
}

// challengeIndex finds a challenge's position in the catalog, -1 if absent.
func challengeIndex(snap progression.State, id string) int {
	for i, c := range snap.Challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 && !m.items[m.cursor].Locked {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScores:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	var b strings.Builder

	title := "  R E B O O T  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	carbon, money := m.session.Savings()
	status := fmt.Sprintf("LV %d  Budget $%d  Resistance %d  Saved %dkg CO2 / $%d",
		snap.Level, snap.Budget, snap.ResistanceScore, carbon, money)
	b.WriteString(centerText(status, m.width))
	b.WriteString("\n\n")

	subtitle := "Select a game"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		suffix := ""
		if item.Locked {
			suffix = " [locked]"
			if i == m.cursor && item.Hint != "" {
				suffix = fmt.Sprintf(" [locked: %s]", item.Hint)
			}
		}

		line := fmt.Sprintf("%s%s%s", cursor, item.Title, suffix)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, session *progression.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
