package browser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/walletthemes/internal/preview"
	"github.com/unkn0wn-root/walletthemes/internal/registry"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	reg.Register(theme.Manifest{ID: "light", Name: "Light"})
	reg.Register(theme.Manifest{ID: "dark", Name: "Dark"})
	reg.SetCardThemes([]theme.CardTheme{
		{
			ID:          "university",
			DisplayName: "University",
			Matcher: theme.Matcher{Patterns: []theme.Pattern{
				{Type: theme.PatternIssuerName, Regex: "university"},
			}},
		},
		{ID: "empty", DisplayName: "Empty"},
	})
	return reg
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovesWithinBounds(t *testing.T) {
	m := New(newRegistry(t), preview.NewRenderer(&bytes.Buffer{}, true))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())

	m = update(t, m, runes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, runes("j"))
	assert.Equal(t, 2, m.Cursor(), "two cards plus the built-in fallback")

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.True(t, selected.IsFallback())

	m = update(t, m, runes("k"))
	selected, _ = m.Selected()
	assert.Equal(t, "empty", selected.ID)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := New(newRegistry(t), preview.NewRenderer(&bytes.Buffer{}, true))
		next, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.True(t, next.(Model).Quitting())
		assert.Empty(t, next.(Model).View())
	}
}

func TestViewShowsActiveThemeAndSelection(t *testing.T) {
	m := New(newRegistry(t), preview.NewRenderer(&bytes.Buffer{}, true))
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := preview.Plain(m.View())
	assert.Contains(t, view, "Light (light)")
	assert.Contains(t, view, "> University")
	assert.Contains(t, view, "issuerName")
	assert.Contains(t, view, "/university/")
	assert.Contains(t, view, "Default (fallback)")
}

func TestThemeSwitching(t *testing.T) {
	reg := newRegistry(t)
	var switched []string
	switcher := func(id string) error {
		switched = append(switched, id)
		reg.SetActive(id)
		return nil
	}
	m := New(reg, preview.NewRenderer(&bytes.Buffer{}, true), WithSwitcher(switcher))

	m = update(t, m, runes("j"))
	m = update(t, m, runes("l"))
	assert.Equal(t, []string{"dark"}, switched)
	assert.Equal(t, "dark", reg.ActiveID())
	assert.Equal(t, 0, m.Cursor())

	m = update(t, m, runes("l"))
	assert.Equal(t, []string{"dark", "light"}, switched)

	failing := New(reg, preview.NewRenderer(&bytes.Buffer{}, true), WithSwitcher(func(string) error {
		return errors.New("boom")
	}))
	failing = update(t, failing, runes("h"))
	assert.True(t, strings.Contains(preview.Plain(failing.View()), "boom"))
}

func TestThemeSwitchingDisabledWithoutSwitcher(t *testing.T) {
	reg := newRegistry(t)
	m := New(reg, preview.NewRenderer(&bytes.Buffer{}, true))
	update(t, m, runes("l"))
	assert.Equal(t, "light", reg.ActiveID())
}

func TestViewFooterFollowsActiveCollections(t *testing.T) {
	reg := newRegistry(t)
	reg.SetBackgrounds([]theme.BackgroundConfig{
		{ID: "wallet", Type: theme.BackgroundSolid, Color: "#101010", ScreenIDs: []string{"credentials"}},
	})
	cfg := theme.DefaultTabBarConfig()
	cfg.Variant = "floating"
	cfg.Variants = map[string]theme.TabBarStyle{"floating": {Height: 72}}
	reg.SetTabBarConfig(cfg)

	view := preview.Plain(New(reg, preview.NewRenderer(&bytes.Buffer{}, true)).View())
	assert.Contains(t, view, "background: wallet")
	assert.Contains(t, view, "tab bar: floating")
}

func TestNilRegistryShowsDefaults(t *testing.T) {
	m := New(nil, preview.NewRenderer(&bytes.Buffer{}, true), WithSwitcher(func(string) error {
		t.Fatal("switcher called without a registry")
		return nil
	}))
	m = update(t, m, runes("l"))

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, theme.DefaultID, selected.ID)

	view := preview.Plain(m.View())
	assert.Contains(t, view, "no active theme")
	assert.Contains(t, view, "Default (fallback)")
	assert.Contains(t, view, "background: default")
	assert.Contains(t, view, "tab bar: default")
}
