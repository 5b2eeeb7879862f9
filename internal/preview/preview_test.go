package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

func plainRenderer() *Renderer {
	return NewRenderer(&bytes.Buffer{}, true)
}

func TestCardKeepsRequestedWidth(t *testing.T) {
	r := plainRenderer()
	ct := theme.DefaultCardTheme()

	out := Plain(r.Card(ct, "A very long credential title that cannot fit", 40))
	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Fatalf("expected bordered card, got %q", out)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Fatalf("line %d has width %d: %q", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "╭") {
		t.Fatalf("expected rounded border for radius > 0, got %q", lines[0])
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated title, got %q", out)
	}
	if !strings.Contains(out, "fallback") {
		t.Fatalf("expected fallback marker, got %q", out)
	}
}

func TestCardUsesDisplayNameWhenTitleEmpty(t *testing.T) {
	r := plainRenderer()
	ct := theme.CardTheme{
		ID:          "uni",
		DisplayName: "University",
		Matcher: theme.Matcher{Patterns: []theme.Pattern{
			{Type: theme.PatternIssuerName, Regex: "university"},
		}},
	}

	out := Plain(r.Card(ct, "", 4))
	if !strings.Contains(out, "University") {
		t.Fatalf("expected display name in card, got %q", out)
	}
	if !strings.HasPrefix(out, "┌") {
		t.Fatalf("expected square border without radius, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != minCardWidth {
			t.Fatalf("expected width clamped to %d, got %d", minCardWidth, w)
		}
	}
}

func TestBackgroundDescriptions(t *testing.T) {
	r := plainRenderer()
	cases := []struct {
		name string
		cfg  theme.BackgroundConfig
		want []string
	}{
		{
			name: "solid",
			cfg:  theme.DefaultBackground(),
			want: []string{"default", "solid", "#F2F2F2"},
		},
		{
			name: "gradient",
			cfg: theme.BackgroundConfig{
				ID:   "sky",
				Type: theme.BackgroundGradient,
				Gradient: &theme.Gradient{
					Colors: []string{"#000000", "#FFFFFF"},
					Angle:  90,
				},
			},
			want: []string{"sky", "gradient", "#000000", "→", "#FFFFFF", "90°"},
		},
		{
			name: "image",
			cfg: theme.BackgroundConfig{
				ID:   "photo",
				Type: theme.BackgroundImage,
				Image: &theme.ImageBackground{
					Source:     "assets/bg.png",
					ResizeMode: "cover",
					Overlay:    "#00000080",
				},
			},
			want: []string{"photo", "image", "assets/bg.png", "[cover]", "overlay"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Plain(r.Background(tc.cfg))
			for _, fragment := range tc.want {
				if !strings.Contains(out, fragment) {
					t.Fatalf("expected %q in %q", fragment, out)
				}
			}
		})
	}
}

func TestTabBarMarksActiveTab(t *testing.T) {
	r := plainRenderer()
	cfg := theme.DefaultTabBarConfig()

	out := Plain(r.TabBar(cfg, "credentials"))
	if !strings.Contains(out, "▸ Credentials") {
		t.Fatalf("expected active marker on credentials, got %q", out)
	}
	if strings.Contains(out, "▸ Home") {
		t.Fatalf("home should not be active: %q", out)
	}
	if !strings.Contains(out, "Credentials•") {
		t.Fatalf("expected badge on credentials tab, got %q", out)
	}

	cfg.TabItem.ShowLabel = false
	out = Plain(r.TabBar(cfg, "home"))
	if !strings.Contains(out, "▸ home") || !strings.Contains(out, "wallet") {
		t.Fatalf("expected icons when labels are hidden, got %q", out)
	}
}

func TestPaletteAndScreenTheme(t *testing.T) {
	r := plainRenderer()
	palette := Plain(r.Palette(theme.DefaultCardTheme()))
	if !strings.Contains(palette, "accent") || !strings.Contains(palette, "#FCBA19") {
		t.Fatalf("unexpected palette %q", palette)
	}

	st := theme.ScreenTheme{
		Header:    theme.HeaderStyle{Background: "#003366", Text: "#FFFFFF"},
		StatusBar: "light",
	}
	line := Plain(r.ScreenTheme("home", st))
	for _, fragment := range []string{"home", "#003366", "#FFFFFF", "status light"} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %q in %q", fragment, line)
		}
	}
	if got := Plain(r.Swatch("")); got != "(none)" {
		t.Fatalf("expected placeholder for empty color, got %q", got)
	}
}

func TestFitPadsAndTruncates(t *testing.T) {
	if got := fit("ab", 4); got != "ab  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := fit("abcdef", 4); lipgloss.Width(got) != 4 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation, got %q", got)
	}
	if got := fit("abc", 0); got != "" {
		t.Fatalf("expected empty result for zero width, got %q", got)
	}
}

func TestPlainStripsEscapes(t *testing.T) {
	if got := Plain("\x1b[1mbold\x1b[0m"); got != "bold" {
		t.Fatalf("expected escapes stripped, got %q", got)
	}
}
