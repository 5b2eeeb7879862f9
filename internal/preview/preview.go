// Package preview renders card themes, backgrounds and tab bars as terminal
// blocks so packs can be inspected without a wallet app.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

const (
	minCardWidth = 16
	ellipsis     = "…"
	swatchGlyph  = "██"
)

type Renderer struct {
	lg      *lipgloss.Renderer
	noColor bool
}

// NewRenderer detects the color profile of w. noColor forces plain output.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{lg: lg, noColor: noColor}
}

// NoColor reports whether the renderer was forced to plain output.
func (r *Renderer) NoColor() bool {
	return r.noColor
}

func color(value string) lipgloss.TerminalColor {
	value = strings.TrimSpace(value)
	if value == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(value)
}

// Swatch renders a color sample followed by its value.
func (r *Renderer) Swatch(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(none)"
	}
	sample := r.lg.NewStyle().Foreground(color(value)).Render(swatchGlyph)
	return sample + " " + value
}

// Card renders ct as a bordered block width cells wide. The title is cut
// to fit the inner width.
func (r *Renderer) Card(ct theme.CardTheme, title string, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	inner := width - 4

	colors := ct.Style.Colors
	titleStyle := r.lg.NewStyle().Foreground(color(colors.Text))
	if strings.EqualFold(ct.Style.Typography.Weight, "bold") {
		titleStyle = titleStyle.Bold(true)
	}
	metaStyle := r.lg.NewStyle().Foreground(color(colors.Accent))

	if strings.TrimSpace(title) == "" {
		title = ct.DisplayName
	}
	lines := []string{
		titleStyle.Render(fit(title, inner)),
		metaStyle.Render(fit(describeCard(ct), inner)),
	}
	if ct.Style.Layout.ShowLogo {
		lines = append(lines, metaStyle.Render(fit("◆ logo", inner)))
	}

	border := lipgloss.NormalBorder()
	if ct.Style.Layout.BorderRadius > 0 {
		border = lipgloss.RoundedBorder()
	}
	box := r.lg.NewStyle().
		Border(border).
		BorderForeground(color(colors.Accent)).
		Background(color(colors.Primary)).
		Padding(0, 1).
		Width(width - 2)
	return box.Render(strings.Join(lines, "\n"))
}

func describeCard(ct theme.CardTheme) string {
	parts := []string{ct.ID}
	if variant := ct.Style.Layout.Variant; variant != "" {
		parts = append(parts, variant)
	}
	if ct.IsFallback() {
		parts = append(parts, "fallback")
	} else {
		parts = append(parts, fmt.Sprintf("%d patterns", len(ct.Matcher.Patterns)))
	}
	return strings.Join(parts, " · ")
}

// Palette lists the card colors one per line.
func (r *Renderer) Palette(ct theme.CardTheme) string {
	c := ct.Style.Colors
	rows := [][2]string{
		{"primary", c.Primary},
		{"secondary", c.Secondary},
		{"text", c.Text},
		{"accent", c.Accent},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-10s %s", row[0], r.Swatch(row[1])))
	}
	return strings.Join(lines, "\n")
}

// Background describes cfg on a single line.
func (r *Renderer) Background(cfg theme.BackgroundConfig) string {
	label := r.lg.NewStyle().Bold(true).Render(cfg.ID)
	switch cfg.Type {
	case theme.BackgroundGradient:
		if cfg.Gradient == nil {
			return label + "  gradient"
		}
		stops := make([]string, len(cfg.Gradient.Colors))
		for i, c := range cfg.Gradient.Colors {
			stops[i] = r.Swatch(c)
		}
		return fmt.Sprintf(
			"%s  gradient %s (%g°)",
			label,
			strings.Join(stops, " → "),
			cfg.Gradient.Angle,
		)
	case theme.BackgroundImage:
		if cfg.Image == nil {
			return label + "  image"
		}
		out := fmt.Sprintf("%s  image %s", label, cfg.Image.Source)
		if cfg.Image.ResizeMode != "" {
			out += " [" + cfg.Image.ResizeMode + "]"
		}
		if cfg.Image.Overlay != "" {
			out += " overlay " + r.Swatch(cfg.Image.Overlay)
		}
		return out
	default:
		return fmt.Sprintf("%s  solid %s", label, r.Swatch(cfg.Color))
	}
}

// TabBar renders the tab row of cfg with active highlighted.
func (r *Renderer) TabBar(cfg theme.TabBarConfig, active string) string {
	bar := r.lg.NewStyle().
		Background(color(cfg.Style.Background)).
		Padding(0, 1)
	activeStyle := r.lg.NewStyle().Foreground(color(cfg.Colors.Active)).Bold(true)
	inactiveStyle := r.lg.NewStyle().Foreground(color(cfg.Colors.Inactive))
	badgeStyle := r.lg.NewStyle().
		Foreground(color(cfg.Badge.Text)).
		Background(color(cfg.Badge.Background))

	cells := make([]string, 0, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		label := tab.Label
		if !cfg.TabItem.ShowLabel || label == "" {
			label = tab.Icon
		}
		if label == "" {
			label = tab.ID
		}
		var cell string
		if tab.ID == active {
			cell = activeStyle.Render("▸ " + label)
		} else {
			cell = inactiveStyle.Render("  " + label)
		}
		if tab.Badge {
			cell += badgeStyle.Render("•")
		}
		cells = append(cells, cell)
	}
	row := strings.Join(cells, "  ")
	if cfg.Style.Floating {
		bar = bar.Border(lipgloss.RoundedBorder()).BorderForeground(color(cfg.Style.BorderColor))
	}
	return bar.Render(row)
}

// ScreenTheme describes a per-screen override on one line.
func (r *Renderer) ScreenTheme(id string, st theme.ScreenTheme) string {
	parts := []string{
		fmt.Sprintf("header %s / %s", r.Swatch(st.Header.Background), r.Swatch(st.Header.Text)),
	}
	if st.StatusBar != "" {
		parts = append(parts, "status "+st.StatusBar)
	}
	if st.BackgroundID != "" {
		parts = append(parts, "background "+st.BackgroundID)
	}
	return r.lg.NewStyle().Bold(true).Render(id) + "  " + strings.Join(parts, "  ")
}

// fit cuts s to width display cells and pads it back out.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// Plain strips terminal escape sequences.
func Plain(s string) string {
	return ansi.Strip(s)
}
