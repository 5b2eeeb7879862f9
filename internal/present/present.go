// Package present exposes the read-only accessors presentation code uses
// to pull resolved theme values out of a registry.
//
// New is for call sites that must have a registry and fails when it is
// missing. Optional tolerates a missing registry and answers with built-in
// defaults.
package present

import (
	"errors"

	"github.com/unkn0wn-root/walletthemes/internal/registry"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

var (
	ErrNoRegistry    = errors.New("theme registry is not available: accessors must be constructed with a registry")
	ErrNoActiveTheme = errors.New("no active theme: register a theme and activate it before reading it")
)

type Accessor struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) (*Accessor, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	return &Accessor{reg: reg}, nil
}

func MustNew(reg *registry.Registry) *Accessor {
	a, err := New(reg)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Accessor) Registry() *registry.Registry {
	return a.reg
}

func (a *Accessor) Theme() (*theme.ResolvedTheme, error) {
	rt := a.reg.Active()
	if rt == nil {
		return nil, ErrNoActiveTheme
	}
	return rt, nil
}

func (a *Accessor) CardTheme(info theme.CredentialMatchInfo) theme.CardTheme {
	return a.reg.Cards().Match(info)
}

func (a *Accessor) Background(screenID string) theme.BackgroundConfig {
	return a.reg.Backgrounds().ForScreen(screenID)
}

func (a *Accessor) TabBar() theme.TabBarConfig {
	return a.reg.TabBar().Config()
}

// ScreenTheme reads per-screen overrides from the active theme. The second
// result is false when the screen has none.
func (a *Accessor) ScreenTheme(screenID string) (theme.ScreenTheme, bool, error) {
	rt, err := a.Theme()
	if err != nil {
		return theme.ScreenTheme{}, false, err
	}
	st, ok := rt.ScreenThemes[screenID]
	return st, ok, nil
}

// OptionalAccessor works with a nil registry.
type OptionalAccessor struct {
	reg *registry.Registry
}

func Optional(reg *registry.Registry) OptionalAccessor {
	return OptionalAccessor{reg: reg}
}

func (o OptionalAccessor) Available() bool {
	return o.reg != nil
}

// Theme returns nil without a registry or active theme.
func (o OptionalAccessor) Theme() *theme.ResolvedTheme {
	if o.reg == nil {
		return nil
	}
	return o.reg.Active()
}

func (o OptionalAccessor) CardTheme(info theme.CredentialMatchInfo) theme.CardTheme {
	if o.reg == nil {
		return theme.DefaultCardTheme()
	}
	return o.reg.Cards().Match(info)
}

func (o OptionalAccessor) Background(screenID string) theme.BackgroundConfig {
	if o.reg == nil {
		return theme.DefaultBackground()
	}
	return o.reg.Backgrounds().ForScreen(screenID)
}

func (o OptionalAccessor) TabBar() theme.TabBarConfig {
	if o.reg == nil {
		return theme.DefaultTabBarConfig()
	}
	return o.reg.TabBar().Config()
}

func (o OptionalAccessor) ScreenTheme(screenID string) (theme.ScreenTheme, bool) {
	rt := o.Theme()
	if rt == nil {
		return theme.ScreenTheme{}, false
	}
	st, ok := rt.ScreenThemes[screenID]
	return st, ok
}
