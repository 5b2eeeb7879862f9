package theme

import (
	"fmt"
	"sort"
	"strings"
)

type Manifest struct {
	ID          string         `json:"id"                    yaml:"id"                    toml:"id"`
	Name        string         `json:"name"                  yaml:"name"                  toml:"name"`
	Version     string         `json:"version"               yaml:"version"               toml:"version"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Author      string         `json:"author,omitempty"      yaml:"author,omitempty"      toml:"author,omitempty"`
	Extends     string         `json:"extends,omitempty"     yaml:"extends,omitempty"     toml:"extends,omitempty"`
	Features    Features       `json:"features"              yaml:"features"              toml:"features"`
	Imports     []string       `json:"imports,omitempty"     yaml:"imports,omitempty"     toml:"imports,omitempty"`
	Overrides   map[string]any `json:"overrides,omitempty"   yaml:"overrides,omitempty"   toml:"overrides,omitempty"`
}

// Features holds the well-known flags every theme understands. Theme
// specific flags live in Extra and are limited to bool, string and number
// values.
type Features struct {
	DarkMode       bool           `json:"dark_mode"       yaml:"dark_mode"       toml:"dark_mode"`
	Gradients      bool           `json:"gradients"       yaml:"gradients"       toml:"gradients"`
	CardAnimations bool           `json:"card_animations" yaml:"card_animations" toml:"card_animations"`
	TabBar         bool           `json:"tab_bar"         yaml:"tab_bar"         toml:"tab_bar"`
	Extra          map[string]any `json:"extra,omitempty" yaml:"extra,omitempty" toml:"extra,omitempty"`
}

const (
	FlagDarkMode       = "dark_mode"
	FlagGradients      = "gradients"
	FlagCardAnimations = "card_animations"
	FlagTabBar         = "tab_bar"
)

func (f Features) Flag(name string) (any, bool) {
	switch name {
	case FlagDarkMode:
		return f.DarkMode, true
	case FlagGradients:
		return f.Gradients, true
	case FlagCardAnimations:
		return f.CardAnimations, true
	case FlagTabBar:
		return f.TabBar, true
	}
	value, ok := f.Extra[name]
	return value, ok
}

// Enabled reports whether a flag is set to true. String values "true",
// "yes" and "on" count as enabled.
func (f Features) Enabled(name string) bool {
	value, ok := f.Flag(name)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on":
			return true
		}
	}
	return false
}

func (f Features) ValidateExtra() error {
	keys := make([]string, 0, len(f.Extra))
	for key := range f.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch f.Extra[key].(type) {
		case bool, string, int, int64, uint64, float64:
		default:
			return fmt.Errorf("feature %q: unsupported value type %T", key, f.Extra[key])
		}
	}
	return nil
}

func (f Features) Clone() Features {
	out := f
	if f.Extra != nil {
		out.Extra = make(map[string]any, len(f.Extra))
		for k, v := range f.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func (m Manifest) Clone() Manifest {
	out := m
	out.Features = m.Features.Clone()
	if m.Imports != nil {
		out.Imports = append([]string(nil), m.Imports...)
	}
	if m.Overrides != nil {
		out.Overrides = make(map[string]any, len(m.Overrides))
		for k, v := range m.Overrides {
			out.Overrides[k] = v
		}
	}
	return out
}

func (m Manifest) Info() ThemeInfo {
	return ThemeInfo{
		ID:          m.ID,
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
	}
}

type ThemeInfo struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Version     string `json:"version"     yaml:"version"`
	Description string `json:"description" yaml:"description"`
}
