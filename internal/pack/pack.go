// Package pack loads theme packs: single files that bundle a manifest with
// the card themes, backgrounds, tab bar and screen overrides it installs.
package pack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
	"github.com/unkn0wn-root/walletthemes/internal/util"
	"github.com/unkn0wn-root/walletthemes/internal/vars"
)

var (
	ErrNoManifest        = errors.New("theme pack has no manifest")
	ErrUnsupportedFormat = errors.New("unsupported theme pack format")
)

type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFor maps a file extension to a pack format.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Pack is the decoded content of one pack file. A nil ScreenBackgrounds or
// TabBar means the section was not provided.
type Pack struct {
	Manifest          theme.Manifest               `json:"manifest"                     yaml:"manifest"`
	CardThemes        []theme.CardTheme            `json:"card_themes,omitempty"        yaml:"card_themes,omitempty"`
	Backgrounds       []theme.BackgroundConfig     `json:"backgrounds,omitempty"        yaml:"backgrounds,omitempty"`
	ScreenBackgrounds theme.ScreenBackgrounds      `json:"screen_backgrounds,omitempty" yaml:"screen_backgrounds,omitempty"`
	TabBar            *theme.TabBarConfig          `json:"tab_bar,omitempty"            yaml:"tab_bar,omitempty"`
	ScreenThemes      map[string]theme.ScreenTheme `json:"screen_themes,omitempty"      yaml:"screen_themes,omitempty"`
}

func (p Pack) Clone() Pack {
	out := p
	out.Manifest.Features = p.Manifest.Features.Clone()
	if p.CardThemes != nil {
		out.CardThemes = make([]theme.CardTheme, len(p.CardThemes))
		for i, c := range p.CardThemes {
			out.CardThemes[i] = c.Clone()
		}
	}
	if p.Backgrounds != nil {
		out.Backgrounds = make([]theme.BackgroundConfig, len(p.Backgrounds))
		for i, b := range p.Backgrounds {
			out.Backgrounds[i] = b.Clone()
		}
	}
	if p.ScreenBackgrounds != nil {
		out.ScreenBackgrounds = p.ScreenBackgrounds.Clone()
	}
	if p.TabBar != nil {
		tb := p.TabBar.Clone()
		out.TabBar = &tb
	}
	if p.ScreenThemes != nil {
		out.ScreenThemes = make(map[string]theme.ScreenTheme, len(p.ScreenThemes))
		for k, v := range p.ScreenThemes {
			out.ScreenThemes[k] = v
		}
	}
	return out
}

// document mirrors the on-disk layout. Variables are consumed during
// substitution and never reach the decoded pack.
type document struct {
	Manifest          *theme.Manifest              `json:"manifest"`
	Variables         map[string]any               `json:"variables,omitempty"`
	CardThemes        []theme.CardTheme            `json:"card_themes,omitempty"`
	Backgrounds       []theme.BackgroundConfig     `json:"backgrounds,omitempty"`
	ScreenBackgrounds theme.ScreenBackgrounds      `json:"screen_backgrounds,omitempty"`
	TabBar            *theme.TabBarConfig          `json:"tab_bar,omitempty"`
	ScreenThemes      map[string]theme.ScreenTheme `json:"screen_themes,omitempty"`
}

// Decoded is a pack plus the variable references that stayed unresolved.
type Decoded struct {
	Pack       Pack
	Unresolved []string
}

// LoadFile reads and decodes a single pack file.
func LoadFile(path string, providers ...vars.Provider) (Decoded, Format, error) {
	format, ok := FormatFor(path)
	if !ok {
		return Decoded{}, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Decoded{}, format, err
	}
	decoded, err := Decode(data, format, providers...)
	return decoded, format, err
}

// Decode parses data, expands ${...} references from the pack's variables
// section, the environment and any extra providers, then decodes the result
// strictly into a Pack.
func Decode(data []byte, format Format, providers ...vars.Provider) (Decoded, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return Decoded{}, err
	}
	if raw == nil {
		return Decoded{}, ErrNoManifest
	}

	variables, err := variablesOf(raw)
	if err != nil {
		return Decoded{}, err
	}
	delete(raw, "variables")

	// Variables may reference the environment and extra providers but not
	// each other.
	outer := append(append([]vars.Provider(nil), providers...), vars.EnvProvider{})
	missing := map[string]struct{}{}
	expandedVars, err := vars.NewResolver(outer...).Substitute(variables)
	if err := collectUnresolved(err, missing); err != nil {
		return Decoded{}, err
	}
	if m, ok := expandedVars.(map[string]any); ok {
		variables = m
	}

	chain := append([]vars.Provider{vars.NewTreeProvider("variables", variables)}, outer...)
	expanded, err := vars.NewResolver(chain...).Substitute(raw)
	if err := collectUnresolved(err, missing); err != nil {
		return Decoded{}, err
	}
	var unresolved []string
	if len(missing) > 0 {
		unresolved = util.SortedKeys(missing)
	}

	body, err := json.Marshal(expanded)
	if err != nil {
		return Decoded{}, fmt.Errorf("normalise pack: %w", err)
	}
	var doc document
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Decoded{}, err
	}
	if doc.Manifest == nil {
		return Decoded{}, ErrNoManifest
	}

	p := Pack{
		Manifest:          *doc.Manifest,
		CardThemes:        doc.CardThemes,
		Backgrounds:       doc.Backgrounds,
		ScreenBackgrounds: doc.ScreenBackgrounds,
		TabBar:            doc.TabBar,
		ScreenThemes:      doc.ScreenThemes,
	}
	if err := normalisePack(&p); err != nil {
		return Decoded{}, err
	}
	return Decoded{Pack: p, Unresolved: unresolved}, nil
}

func decodeRaw(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return raw, nil
}

func variablesOf(raw map[string]any) (map[string]any, error) {
	value, ok := raw["variables"]
	if !ok || value == nil {
		return map[string]any{}, nil
	}
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = val
		}
		return out, nil
	}
	return nil, fmt.Errorf("variables: expected a table, got %T", value)
}

// normalisePack validates what the JSON decoder cannot and fills ids for
// anonymous card themes and backgrounds.
func normalisePack(p *Pack) error {
	p.Manifest.ID = strings.TrimSpace(p.Manifest.ID)
	p.Manifest.Name = strings.TrimSpace(p.Manifest.Name)
	if err := p.Manifest.Features.ValidateExtra(); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	for i := range p.CardThemes {
		card := &p.CardThemes[i]
		if strings.TrimSpace(card.ID) == "" {
			card.ID = uuid.NewString()
		}
		for _, pattern := range card.Matcher.Patterns {
			if !pattern.Type.Valid() {
				return fmt.Errorf(
					"card theme %q: unknown pattern type %q",
					card.ID,
					pattern.Type,
				)
			}
		}
	}

	for i := range p.Backgrounds {
		bg := &p.Backgrounds[i]
		if strings.TrimSpace(bg.ID) == "" {
			bg.ID = uuid.NewString()
		}
		switch bg.Type {
		case theme.BackgroundSolid:
		case theme.BackgroundGradient:
			if bg.Gradient == nil || len(bg.Gradient.Colors) < 2 {
				return fmt.Errorf("background %q: gradient needs at least two colors", bg.ID)
			}
		case theme.BackgroundImage:
			if bg.Image == nil || strings.TrimSpace(bg.Image.Source) == "" {
				return fmt.Errorf("background %q: image needs a source", bg.ID)
			}
		case "":
			bg.Type = theme.BackgroundSolid
		default:
			return fmt.Errorf("background %q: unknown type %q", bg.ID, bg.Type)
		}
	}
	return nil
}

func collectUnresolved(err error, into map[string]struct{}) error {
	if err == nil {
		return nil
	}
	var uerr *vars.UnresolvedError
	if !errors.As(err, &uerr) {
		return err
	}
	for _, name := range uerr.Names {
		into[name] = struct{}{}
	}
	return nil
}
