// Package browser is an interactive viewer for the card themes of the
// active theme.
package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/walletthemes/internal/present"
	"github.com/unkn0wn-root/walletthemes/internal/preview"
	"github.com/unkn0wn-root/walletthemes/internal/registry"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// SwitchFunc makes id the active theme and reloads its collections.
type SwitchFunc func(id string) error

type Option func(*Model)

func WithSwitcher(fn SwitchFunc) Option {
	return func(m *Model) {
		m.switchTheme = fn
	}
}

func WithCardWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.cardWidth = width
		}
	}
}

type Model struct {
	reg         *registry.Registry
	view        present.OptionalAccessor
	render      *preview.Renderer
	switchTheme SwitchFunc
	keys        keyMap
	help        help.Model

	cards     []theme.CardTheme
	cursor    int
	cardWidth int
	width     int
	status    string
	quitting  bool
}

// New builds a browser over reg. A nil registry shows the built-in
// defaults.
func New(reg *registry.Registry, render *preview.Renderer, opts ...Option) Model {
	m := Model{
		reg:       reg,
		view:      present.Optional(reg),
		render:    render,
		keys:      defaultKeyMap(),
		help:      help.New(),
		cardWidth: 36,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	m.cards = nil
	if m.view.Available() {
		m.cards = m.reg.Cards().List()
	}
	// An empty match info reaches the fallback theme.
	if def := m.view.CardTheme(theme.CredentialMatchInfo{}); !containsCard(m.cards, def.ID) {
		m.cards = append(m.cards, def)
	}
	if m.cursor >= len(m.cards) {
		m.cursor = len(m.cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func containsCard(list []theme.CardTheme, id string) bool {
	for _, ct := range list {
		if ct.ID == id {
			return true
		}
	}
	return false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.NextTheme):
			m.cycleTheme(1)
		case key.Matches(msg, m.keys.PrevTheme):
			m.cycleTheme(-1)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) cycleTheme(step int) {
	if m.switchTheme == nil || !m.view.Available() {
		return
	}
	infos := m.reg.List()
	if len(infos) < 2 {
		return
	}
	current := 0
	for i, info := range infos {
		if info.ID == m.reg.ActiveID() {
			current = i
			break
		}
	}
	next := (current + step + len(infos)) % len(infos)
	if err := m.switchTheme(infos[next].ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.cursor = 0
	m.reload()
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Quitting() bool {
	return m.quitting
}

// Selected returns the card theme under the cursor.
func (m Model) Selected() (theme.CardTheme, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return theme.CardTheme{}, false
	}
	return m.cards[m.cursor], true
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := "no active theme"
	if active := m.view.Theme(); active != nil {
		header = fmt.Sprintf("%s (%s)", active.Name, active.ID)
	}

	var list strings.Builder
	for i, ct := range m.cards {
		name := ct.DisplayName
		if name == "" {
			name = ct.ID
		}
		if ct.IsFallback() {
			name += " (fallback)"
		}
		if i == m.cursor {
			list.WriteString(selectedStyle.Render("> " + name))
		} else {
			list.WriteString("  " + name)
		}
		list.WriteByte('\n')
	}

	detail := ""
	if ct, ok := m.Selected(); ok {
		detail = lipgloss.JoinVertical(
			lipgloss.Left,
			m.render.Card(ct, ct.DisplayName, m.cardWidth),
			"",
			m.render.Palette(ct),
			"",
			describePatterns(ct),
		)
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().PaddingRight(4).Render(strings.TrimRight(list.String(), "\n")),
		detail,
	)

	tabBar := m.view.TabBar()
	footer := subtleStyle.Render(fmt.Sprintf(
		"background: %s  tab bar: %s",
		m.view.Background("credentials").ID,
		tabBar.Variant,
	))

	parts := []string{titleStyle.Render(header), "", body, "", footer}
	if m.status != "" {
		parts = append(parts, subtleStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func describePatterns(ct theme.CardTheme) string {
	if ct.IsFallback() {
		return subtleStyle.Render("used when no other card theme matches")
	}
	if len(ct.Matcher.Patterns) == 0 {
		return subtleStyle.Render("no patterns")
	}
	lines := make([]string, len(ct.Matcher.Patterns))
	for i, p := range ct.Matcher.Patterns {
		lines[i] = fmt.Sprintf("%-16s /%s/", p.Type, p.Regex)
	}
	return strings.Join(lines, "\n")
}

// Run starts the browser on the terminal.
func Run(reg *registry.Registry, render *preview.Renderer, opts ...Option) error {
	_, err := tea.NewProgram(New(reg, render, opts...), tea.WithAltScreen()).Run()
	return err
}
