package theme

// DefaultVariant names the tab bar variant used when no variants are declared.
const DefaultVariant = "default"

type TabBarStyle struct {
	Background   string  `json:"background"              yaml:"background"              toml:"background"`
	BorderColor  string  `json:"border_color,omitempty"  yaml:"border_color,omitempty"  toml:"border_color,omitempty"`
	Height       int     `json:"height,omitempty"        yaml:"height,omitempty"        toml:"height,omitempty"`
	Floating     bool    `json:"floating,omitempty"      yaml:"floating,omitempty"      toml:"floating,omitempty"`
	BorderRadius int     `json:"border_radius,omitempty" yaml:"border_radius,omitempty" toml:"border_radius,omitempty"`
	Elevation    float64 `json:"elevation,omitempty"     yaml:"elevation,omitempty"     toml:"elevation,omitempty"`
}

type TabItemStyle struct {
	IconSize  int    `json:"icon_size,omitempty"  yaml:"icon_size,omitempty"  toml:"icon_size,omitempty"`
	LabelSize int    `json:"label_size,omitempty" yaml:"label_size,omitempty" toml:"label_size,omitempty"`
	ShowLabel bool   `json:"show_label"           yaml:"show_label"           toml:"show_label"`
	Padding   int    `json:"padding,omitempty"    yaml:"padding,omitempty"    toml:"padding,omitempty"`
	Font      string `json:"font,omitempty"       yaml:"font,omitempty"       toml:"font,omitempty"`
}

type TabBarColors struct {
	Active   string `json:"active"   yaml:"active"   toml:"active"`
	Inactive string `json:"inactive" yaml:"inactive" toml:"inactive"`
	Focused  string `json:"focused"  yaml:"focused"  toml:"focused"`
}

type BadgeStyle struct {
	Background string `json:"background" yaml:"background" toml:"background"`
	Text       string `json:"text"       yaml:"text"       toml:"text"`
	Size       int    `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
}

type TabDefinition struct {
	ID    string `json:"id"              yaml:"id"              toml:"id"`
	Label string `json:"label"           yaml:"label"           toml:"label"`
	Icon  string `json:"icon,omitempty"  yaml:"icon,omitempty"  toml:"icon,omitempty"`
	Badge bool   `json:"badge,omitempty" yaml:"badge,omitempty" toml:"badge,omitempty"`
}

// TabBarConfig keeps Style equal to Variants[Variant] whenever that entry
// exists; the tab bar registry enforces this on every write.
type TabBarConfig struct {
	Variant  string                 `json:"variant"            yaml:"variant"            toml:"variant"`
	Variants map[string]TabBarStyle `json:"variants,omitempty" yaml:"variants,omitempty" toml:"variants,omitempty"`
	Style    TabBarStyle            `json:"style"              yaml:"style"              toml:"style"`
	TabItem  TabItemStyle           `json:"tab_item"           yaml:"tab_item"           toml:"tab_item"`
	Colors   TabBarColors           `json:"colors"             yaml:"colors"             toml:"colors"`
	Badge    BadgeStyle             `json:"badge"              yaml:"badge"              toml:"badge"`
	Tabs     []TabDefinition        `json:"tabs,omitempty"     yaml:"tabs,omitempty"     toml:"tabs,omitempty"`
}

func (c TabBarConfig) Clone() TabBarConfig {
	out := c
	if c.Variants != nil {
		out.Variants = make(map[string]TabBarStyle, len(c.Variants))
		for k, v := range c.Variants {
			out.Variants[k] = v
		}
	}
	if c.Tabs != nil {
		out.Tabs = append([]TabDefinition(nil), c.Tabs...)
	}
	return out
}
