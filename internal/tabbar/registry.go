// Package tabbar holds the tab bar configuration and its active variant.
package tabbar

import (
	"sort"
	"sync"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// Registry keeps config.Style equal to config.Variants[config.Variant]
// whenever that variant is declared.
type Registry struct {
	mu     sync.RWMutex
	config theme.TabBarConfig
}

func NewRegistry() *Registry {
	return &Registry{config: theme.DefaultTabBarConfig()}
}

// SetConfig replaces the configuration. When the declared variant exists
// in Variants its style overrides cfg.Style.
func (r *Registry) SetConfig(cfg theme.TabBarConfig) {
	next := cfg.Clone()
	if style, ok := next.Variants[next.Variant]; ok {
		next.Style = style
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = next
}

func (r *Registry) Config() theme.TabBarConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.Clone()
}

// SetVariant switches the current variant name. Style follows only when
// the variant is declared; otherwise the previous style stays in place.
func (r *Registry) SetVariant(variant string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config.Variant = variant
	if style, ok := r.config.Variants[variant]; ok {
		r.config.Style = style
	}
}

func (r *Registry) Variant() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.Variant
}

func (r *Registry) VariantStyle(variant string) (theme.TabBarStyle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	style, ok := r.config.Variants[variant]
	return style, ok
}

// Variants lists declared variant names in sorted order, or just
// "default" when the config declares none.
func (r *Registry) Variants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config.Variants == nil {
		return []string{theme.DefaultVariant}
	}
	names := make([]string, 0, len(r.config.Variants))
	for name := range r.config.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ActiveStyle() theme.TabBarStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.Style
}
