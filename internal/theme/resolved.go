package theme

type HeaderStyle struct {
	Background string `json:"background" yaml:"background" toml:"background"`
	Text       string `json:"text"       yaml:"text"       toml:"text"`
}

// ScreenTheme holds per-screen presentation overrides.
type ScreenTheme struct {
	Header       HeaderStyle `json:"header"                  yaml:"header"                  toml:"header"`
	StatusBar    string      `json:"status_bar,omitempty"    yaml:"status_bar,omitempty"    toml:"status_bar,omitempty"`
	BackgroundID string      `json:"background_id,omitempty" yaml:"background_id,omitempty" toml:"background_id,omitempty"`
}

// ResolvedTheme is the cached aggregate built from a manifest. Its
// collections stay empty until setters run while the theme is active.
type ResolvedTheme struct {
	ID                string                 `json:"id"                 yaml:"id"`
	Name              string                 `json:"name"               yaml:"name"`
	Manifest          Manifest               `json:"manifest"           yaml:"manifest"`
	CardThemes        []CardTheme            `json:"card_themes"        yaml:"card_themes"`
	Backgrounds       []BackgroundConfig     `json:"backgrounds"        yaml:"backgrounds"`
	ScreenBackgrounds ScreenBackgrounds      `json:"screen_backgrounds" yaml:"screen_backgrounds"`
	TabBarConfig      TabBarConfig           `json:"tab_bar"            yaml:"tab_bar"`
	ScreenThemes      map[string]ScreenTheme `json:"screen_themes"      yaml:"screen_themes"`
}

func NewResolvedTheme(m Manifest) *ResolvedTheme {
	return &ResolvedTheme{
		ID:                m.ID,
		Name:              m.Name,
		Manifest:          m,
		CardThemes:        []CardTheme{},
		Backgrounds:       []BackgroundConfig{},
		ScreenBackgrounds: ScreenBackgrounds{},
		TabBarConfig:      DefaultTabBarConfig(),
		ScreenThemes:      map[string]ScreenTheme{},
	}
}

// Clone returns a deep copy that shares no slices or maps with rt.
func (rt *ResolvedTheme) Clone() *ResolvedTheme {
	if rt == nil {
		return nil
	}
	out := *rt
	out.Manifest = rt.Manifest.Clone()
	out.CardThemes = make([]CardTheme, len(rt.CardThemes))
	for i, c := range rt.CardThemes {
		out.CardThemes[i] = c.Clone()
	}
	out.Backgrounds = make([]BackgroundConfig, len(rt.Backgrounds))
	for i, b := range rt.Backgrounds {
		out.Backgrounds[i] = b.Clone()
	}
	out.ScreenBackgrounds = rt.ScreenBackgrounds.Clone()
	out.TabBarConfig = rt.TabBarConfig.Clone()
	out.ScreenThemes = make(map[string]ScreenTheme, len(rt.ScreenThemes))
	for k, v := range rt.ScreenThemes {
		out.ScreenThemes[k] = v
	}
	return &out
}
