package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string

	tiers     []string
	scoreKeys []string // parallel to tiers, or a single key
	tier      int
}

// Difficulty returns the selected tier, or "" for games without tiers.
func (i MenuItem) Difficulty() string {
	if len(i.tiers) == 0 {
		return ""
	}
	return i.tiers[i.tier]
}

func (i MenuItem) scoreKey() string {
	if len(i.tiers) == 0 {
		return i.scoreKeys[0]
	}
	return i.scoreKeys[i.tier]
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	scores         core.ScoreKeeper
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model. cfg.Difficulty preselects a tier.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, scoreKeys: []string{g.ID}}
		if len(g.Tiers) > 0 {
			if game, err := registry.Create(g.ID); err == nil {
				if t, ok := game.(registry.Tiered); ok {
					item.tiers = g.Tiers
					item.scoreKeys = make([]string, len(g.Tiers))
					for i, name := range g.Tiers {
						item.scoreKeys[i] = t.ScoreKeyFor(name)
						if strings.EqualFold(name, cfg.Difficulty) {
							item.tier = i
						}
					}
				}
			}
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		scores: cfg.Scores,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevTier):
		m.cycleTier(-1)

	case key.Matches(msg, m.keys.NextTier):
		m.cycleTier(1)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.config.Difficulty = selected.Difficulty()
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
	}

	return m, nil
}

// cycleTier moves the tier of the highlighted game by delta, wrapping.
func (m *MenuModel) cycleTier(delta int) {
	if len(m.items) == 0 {
		return
	}
	item := &m.items[m.cursor]
	if n := len(item.tiers); n > 0 {
		item.tier = (item.tier + delta + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R I C K R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if d := item.Difficulty(); d != "" {
			line = fmt.Sprintf("%s  < %s >", line, strings.ToUpper(d))
		}
		if m.scores != nil {
			line = fmt.Sprintf("%s  best %d", line, m.scores.Best(item.scoreKey()))
		}

		if i == m.cursor {
			line = cursorStyle.Render("> " + line + " ")
		} else {
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
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

// Config returns the current runtime config, updated by resizes and the
// selected tier.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
