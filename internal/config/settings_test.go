package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLETTHEMES_CONFIG_DIR", dir)

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.DefaultTheme != "" {
		t.Fatalf("expected empty default theme, got %q", settings.DefaultTheme)
	}
	if settings.Log.Level != "warn" {
		t.Fatalf("expected warn log level, got %q", settings.Log.Level)
	}
	if settings.Preview.CardWidth != PreviewCardWidthDefault {
		t.Fatalf("expected default card width, got %d", settings.Preview.CardWidth)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected toml handle, got %q", handle.Format)
	}
	if handle.Path != filepath.Join(dir, "settings.toml") {
		t.Fatalf("unexpected handle path %q", handle.Path)
	}
}

func TestLoadSettingsTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLETTHEMES_CONFIG_DIR", dir)
	content := `default_theme = "bifold"
theme_dirs = ["/opt/themes"]
no_color = true

[log]
level = "debug"

[preview]
card_width = 500
layout = "GRID"
`
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.DefaultTheme != "bifold" {
		t.Fatalf("expected bifold, got %q", settings.DefaultTheme)
	}
	if !settings.NoColor {
		t.Fatalf("expected no_color to be set")
	}
	if settings.Log.Level != "debug" || settings.Log.Format != "console" {
		t.Fatalf("unexpected log settings %+v", settings.Log)
	}
	if settings.Preview.CardWidth != PreviewCardWidthMax {
		t.Fatalf("expected clamped card width, got %d", settings.Preview.CardWidth)
	}
	if settings.Preview.Layout != PreviewLayoutGrid {
		t.Fatalf("expected grid layout, got %q", settings.Preview.Layout)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected toml handle, got %q", handle.Format)
	}
	dirs := settings.SearchDirs()
	if len(dirs) != 2 || dirs[0] != "/opt/themes" || dirs[1] != filepath.Join(dir, "themes") {
		t.Fatalf("unexpected search dirs %v", dirs)
	}
}

func TestLoadSettingsJSONFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLETTHEMES_CONFIG_DIR", dir)
	content := `{"default_theme":"dark","log":{"format":"json"}}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.DefaultTheme != "dark" {
		t.Fatalf("expected dark, got %q", settings.DefaultTheme)
	}
	if settings.Log.Format != "json" {
		t.Fatalf("expected json log format, got %q", settings.Log.Format)
	}
	if handle.Format != SettingsFormatJSON {
		t.Fatalf("expected json handle, got %q", handle.Format)
	}
}

func TestLoadSettingsParseError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLETTHEMES_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("default_theme = ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := LoadSettings(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLETTHEMES_CONFIG_DIR", dir)

	settings := DefaultSettings()
	settings.DefaultTheme = "ocean"
	settings.ThemeDirs = []string{"/srv/themes"}
	if err := SaveSettings(settings, SettingsHandle{}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if handle.Path != filepath.Join(dir, "settings.toml") {
		t.Fatalf("unexpected handle path %q", handle.Path)
	}
	if loaded.DefaultTheme != "ocean" {
		t.Fatalf("expected ocean, got %q", loaded.DefaultTheme)
	}
	if len(loaded.ThemeDirs) != 1 || loaded.ThemeDirs[0] != "/srv/themes" {
		t.Fatalf("unexpected theme dirs %v", loaded.ThemeDirs)
	}

	loaded.DefaultTheme = "forest"
	jsonHandle := SettingsHandle{
		Path:   filepath.Join(dir, "nested", "settings.json"),
		Format: SettingsFormatJSON,
	}
	if err := SaveSettings(loaded, jsonHandle); err != nil {
		t.Fatalf("SaveSettings json: %v", err)
	}
	data, err := os.ReadFile(jsonHandle.Path)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Fatalf("expected trailing newline in json output")
	}
}

func TestNormalisePreviewSettings(t *testing.T) {
	cases := []struct {
		name string
		in   PreviewSettings
		want PreviewSettings
	}{
		{
			name: "zero uses defaults",
			in:   PreviewSettings{},
			want: PreviewSettings{
				CardWidth:   PreviewCardWidthDefault,
				TabBarWidth: PreviewTabBarWidthDefault,
				Layout:      PreviewLayoutStacked,
			},
		},
		{
			name: "clamps low",
			in:   PreviewSettings{CardWidth: 5, TabBarWidth: 1, Layout: "bogus"},
			want: PreviewSettings{
				CardWidth:   PreviewCardWidthMin,
				TabBarWidth: PreviewTabBarWidthMin,
				Layout:      PreviewLayoutStacked,
			},
		},
		{
			name: "keeps valid",
			in: PreviewSettings{
				CardWidth:   40,
				TabBarWidth: 60,
				Layout:      PreviewLayoutGrid,
				ShowPalette: true,
			},
			want: PreviewSettings{
				CardWidth:   40,
				TabBarWidth: 60,
				Layout:      PreviewLayoutGrid,
				ShowPalette: true,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalisePreviewSettings(tc.in)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestDirPrefersEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLETTHEMES_CONFIG_DIR", dir)
	if got := Dir(); got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
	if got := ThemesDir(); got != filepath.Join(dir, "themes") {
		t.Fatalf("unexpected themes dir %q", got)
	}
}
