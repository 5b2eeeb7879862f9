package theme

type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// AllScreens is the screen id wildcard accepted in BackgroundConfig.ScreenIDs.
const AllScreens = "*"

type Gradient struct {
	Colors    []string  `json:"colors"              yaml:"colors"              toml:"colors"`
	Locations []float64 `json:"locations,omitempty" yaml:"locations,omitempty" toml:"locations,omitempty"`
	Angle     float64   `json:"angle,omitempty"     yaml:"angle,omitempty"     toml:"angle,omitempty"`
}

type ImageBackground struct {
	Source     string  `json:"source"                yaml:"source"                toml:"source"`
	ResizeMode string  `json:"resize_mode,omitempty" yaml:"resize_mode,omitempty" toml:"resize_mode,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"     yaml:"opacity,omitempty"     toml:"opacity,omitempty"`
	Overlay    string  `json:"overlay,omitempty"     yaml:"overlay,omitempty"     toml:"overlay,omitempty"`
}

type BackgroundConfig struct {
	ID        string           `json:"id"                   yaml:"id"                   toml:"id"`
	Type      BackgroundType   `json:"type"                 yaml:"type"                 toml:"type"`
	Color     string           `json:"color,omitempty"      yaml:"color,omitempty"      toml:"color,omitempty"`
	Gradient  *Gradient        `json:"gradient,omitempty"   yaml:"gradient,omitempty"   toml:"gradient,omitempty"`
	Image     *ImageBackground `json:"image,omitempty"      yaml:"image,omitempty"      toml:"image,omitempty"`
	ScreenIDs []string         `json:"screen_ids,omitempty" yaml:"screen_ids,omitempty" toml:"screen_ids,omitempty"`
}

func (b BackgroundConfig) Clone() BackgroundConfig {
	out := b
	if b.Gradient != nil {
		g := *b.Gradient
		g.Colors = append([]string(nil), b.Gradient.Colors...)
		g.Locations = append([]float64(nil), b.Gradient.Locations...)
		out.Gradient = &g
	}
	if b.Image != nil {
		img := *b.Image
		out.Image = &img
	}
	if b.ScreenIDs != nil {
		out.ScreenIDs = append([]string(nil), b.ScreenIDs...)
	}
	return out
}

// ScreenBackgrounds maps a screen id to a background id.
type ScreenBackgrounds map[string]string

func (s ScreenBackgrounds) Clone() ScreenBackgrounds {
	out := make(ScreenBackgrounds, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
